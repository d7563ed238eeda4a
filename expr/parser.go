// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns src into an AST. Errors are *ParseError (errors.Is ErrParse);
// exceeding the nesting cap additionally matches ErrTooDeep.
func Parse(src string, opts ...Option) (Node, error) {
	o := NewOptions(opts...)
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	if toks[0].kind == tokEOF {
		return nil, &ParseError{Pos: 0, Msg: "empty expression"}
	}

	p := &parser{src: src, toks: toks, maxDepth: o.maxDepth}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.unexpected(tok)
	}

	return n, nil
}

// MustParse is Parse that panics on error. Intended for tests and constants.
func MustParse(src string, opts ...Option) Node {
	n, err := Parse(src, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

type parser struct {
	src      string
	toks     []token
	pos      int
	depth    int
	maxDepth int
	absDepth int // open plain |...| groups
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) isOp(op string) bool {
	t := p.peek()
	return t.kind == tokOp && t.text == op
}

func (p *parser) isCommand(name string) bool {
	t := p.peek()
	return t.kind == tokCommand && t.text == name
}

func (p *parser) expect(kind tokenKind, what string) error {
	t := p.next()
	if t.kind != kind {
		return &ParseError{Pos: t.pos, Msg: fmt.Sprintf("expected %s, found %s", what, t)}
	}
	return nil
}

func (p *parser) unexpected(t token) error {
	return &ParseError{Pos: t.pos, Msg: fmt.Sprintf("unexpected %s", t)}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return &ParseError{Pos: p.peek().pos, Msg: fmt.Sprintf("nesting exceeds %d", p.maxDepth), Err: ErrTooDeep}
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// parseExpr: term (('+' | '-') term)*
func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.isOp("+") || p.isOp("-") {
		op := p.next().text[0]
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, L: left, R: right}
	}

	return left, nil
}

// parseTerm: unary (('*' | '/') unary | <implicit> power)*
func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.isOp("*") || p.isOp("/"):
			op := p.next().text[0]
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &Binary{Op: op, L: left, R: right}
		case p.startsPrimary():
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = &Binary{Op: '*', L: left, R: right}
		default:
			return left, nil
		}
	}
}

// startsPrimary reports whether the next token can begin an implicit factor.
func (p *parser) startsPrimary() bool {
	t := p.peek()
	switch t.kind {
	case tokNumber, tokIdent, tokLParen, tokLBrace, tokLBracket:
		return true
	case tokCommand:
		return t.text != "right"
	case tokBar:
		return p.absDepth == 0
	default:
		return false
	}
}

// parseUnary: ('-' | '+') unary | power
func (p *parser) parseUnary() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.isOp("-") || p.isOp("+") {
		op := p.next().text[0]
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			return x, nil
		}
		return &Unary{Op: '-', X: x}, nil
	}

	return p.parsePower()
}

// parsePower: primary ['^' (group | unary)]; right-associative.
func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !p.isOp("^") {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return &Binary{Op: '^', L: base, R: exp}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	t := p.peek()
	switch t.kind {
	case tokNumber:
		p.next()
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, &ParseError{Pos: t.pos, Msg: fmt.Sprintf("malformed number %q", t.text)}
		}
		return &Number{Value: v}, nil
	case tokIdent:
		p.next()
		if fn, ok := lookupFunc(t.text); ok {
			return p.parseCall(t, fn)
		}
		return &Ident{Name: t.text}, nil
	case tokLParen:
		return p.parseGroup(tokRParen, ")")
	case tokLBrace:
		return p.parseGroup(tokRBrace, "}")
	case tokLBracket:
		return p.parseGroup(tokRBracket, "]")
	case tokBar:
		p.next()
		p.absDepth++
		x, err := p.parseExpr()
		p.absDepth--
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokBar, `"|"`); err != nil {
			return nil, err
		}
		return &Call{Fn: "abs", Args: []Node{x}}, nil
	case tokCommand:
		switch t.text {
		case "frac":
			return p.parseFrac()
		case "sqrt":
			return p.parseSqrt()
		case "left":
			return p.parseLeft()
		}
	}

	return nil, p.unexpected(t)
}

func (p *parser) parseGroup(closer tokenKind, what string) (Node, error) {
	p.next()
	saved := p.absDepth
	p.absDepth = 0
	x, err := p.parseExpr()
	p.absDepth = saved
	if err != nil {
		return nil, err
	}
	if err := p.expect(closer, fmt.Sprintf("%q", what)); err != nil {
		return nil, err
	}

	return x, nil
}

// parseCall parses fn(args...) or, without parentheses, a single unary argument
// such as \sin x.
func (p *parser) parseCall(name token, fn function) (Node, error) {
	var args []Node
	switch {
	case p.peek().kind == tokLParen:
		p.next()
		var err error
		if args, err = p.parseArgs(); err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
	case p.isCommand("left") && p.toks[p.pos+1].kind == tokLParen:
		p.pos += 2
		var err error
		if args, err = p.parseArgs(); err != nil {
			return nil, err
		}
		if err := p.expectRight(tokRParen, ")"); err != nil {
			return nil, err
		}
	default:
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		args = []Node{arg}
	}
	if len(args) != fn.arity {
		return nil, &ParseError{Pos: name.pos, Msg: fmt.Sprintf("%s takes %d argument(s), got %d", fn.name, fn.arity, len(args))}
	}

	return &Call{Fn: fn.name, Args: args}, nil
}

func (p *parser) parseArgs() ([]Node, error) {
	saved := p.absDepth
	p.absDepth = 0
	defer func() { p.absDepth = saved }()

	var args []Node
	for {
		a, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if p.peek().kind != tokComma {
			return args, nil
		}
		p.next()
	}
}

// parseFrac: \frac{num}{den}, including the short forms \frac12 and \frac{a}b.
func (p *parser) parseFrac() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.next()
	num, err := p.parseFracArg()
	if err != nil {
		return nil, err
	}
	den, err := p.parseFracArg()
	if err != nil {
		return nil, err
	}

	return &Binary{Op: '/', L: num, R: den}, nil
}

// parseFracArg reads a braced group or a single character. When the next token
// is a multi-character number or plain identifier, only its first character is
// consumed and the remainder stays in the stream.
func (p *parser) parseFracArg() (Node, error) {
	t := p.peek()
	switch t.kind {
	case tokLBrace:
		return p.parseGroup(tokRBrace, "}")
	case tokNumber, tokIdent:
		if len(t.text) > 1 && p.src[t.pos] != '\\' && !strings.Contains(t.text, "_") {
			head := token{kind: t.kind, text: t.text[:1], pos: t.pos}
			rest := token{kind: t.kind, text: t.text[1:], pos: t.pos + 1}
			if rest.kind == tokIdent && !isLetter(rest.text[0]) {
				rest.kind = tokNumber
			}
			if head.kind == tokNumber && head.text == "." {
				return nil, &ParseError{Pos: t.pos, Msg: "malformed fraction argument"}
			}
			p.toks[p.pos] = rest
			p.toks = append(p.toks[:p.pos], append([]token{head}, p.toks[p.pos:]...)...)
		}
		return p.parsePrimary()
	case tokCommand:
		if t.text == "frac" || t.text == "sqrt" {
			return p.parsePrimary()
		}
	}

	return nil, &ParseError{Pos: t.pos, Msg: fmt.Sprintf("expected fraction argument, found %s", t)}
}

// parseSqrt: \sqrt{x} or \sqrt[n]{x}.
func (p *parser) parseSqrt() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.next()
	var index Node
	if p.peek().kind == tokLBracket {
		var err error
		if index, err = p.parseGroup(tokRBracket, "]"); err != nil {
			return nil, err
		}
	}
	x, err := p.parseFracArg()
	if err != nil {
		return nil, err
	}
	if index != nil {
		return &Call{Fn: "root", Args: []Node{x, index}}, nil
	}

	return &Call{Fn: "sqrt", Args: []Node{x}}, nil
}

// parseLeft: \left( x \right), \left[ x \right] or \left| x \right|.
func (p *parser) parseLeft() (Node, error) {
	p.next()
	open := p.next()
	var closer tokenKind
	var what string
	switch open.kind {
	case tokLParen:
		closer, what = tokRParen, ")"
	case tokLBracket:
		closer, what = tokRBracket, "]"
	case tokBar:
		closer, what = tokBar, "|"
	default:
		return nil, &ParseError{Pos: open.pos, Msg: fmt.Sprintf(`unsupported \left delimiter %s`, open)}
	}

	saved := p.absDepth
	p.absDepth = 0
	x, err := p.parseExpr()
	p.absDepth = saved
	if err != nil {
		return nil, err
	}
	if err := p.expectRight(closer, what); err != nil {
		return nil, err
	}
	if open.kind == tokBar {
		return &Call{Fn: "abs", Args: []Node{x}}, nil
	}

	return x, nil
}

func (p *parser) expectRight(closer tokenKind, what string) error {
	t := p.peek()
	if !p.isCommand("right") {
		return &ParseError{Pos: t.pos, Msg: fmt.Sprintf(`expected \right%s, found %s`, what, t)}
	}
	p.next()

	return p.expect(closer, fmt.Sprintf("%q", what))
}

// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strings"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokCommand
	tokOp
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokLBracket
	tokRBracket
	tokComma
	tokBar
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.text)
}

// commandTokens maps LaTeX commands onto plain tokens or canonical command names.
var commandTokens = map[string]token{
	"cdot":   {kind: tokOp, text: "*"},
	"times":  {kind: tokOp, text: "*"},
	"div":    {kind: tokOp, text: "/"},
	"lbrack": {kind: tokLBracket, text: "["},
	"rbrack": {kind: tokRBracket, text: "]"},
	"frac":   {kind: tokCommand, text: "frac"},
	"dfrac":  {kind: tokCommand, text: "frac"},
	"tfrac":  {kind: tokCommand, text: "frac"},
	"left":   {kind: tokCommand, text: "left"},
	"right":  {kind: tokCommand, text: "right"},
	"sqrt":   {kind: tokCommand, text: "sqrt"},
	"pi":     {kind: tokIdent, text: "pi"},
	"e":      {kind: tokIdent, text: "e"},
	"sin":    {kind: tokIdent, text: "sin"},
	"cos":    {kind: tokIdent, text: "cos"},
	"tan":    {kind: tokIdent, text: "tan"},
	"arcsin": {kind: tokIdent, text: "asin"},
	"arccos": {kind: tokIdent, text: "acos"},
	"arctan": {kind: tokIdent, text: "atan"},
	"sinh":   {kind: tokIdent, text: "sinh"},
	"cosh":   {kind: tokIdent, text: "cosh"},
	"tanh":   {kind: tokIdent, text: "tanh"},
	"exp":    {kind: tokIdent, text: "exp"},
	"ln":     {kind: tokIdent, text: "ln"},
	"log":    {kind: tokIdent, text: "log"},
	"det":    {kind: tokIdent, text: "det"},
}

var punctTokens = map[byte]tokenKind{
	'+': tokOp, '-': tokOp, '*': tokOp, '/': tokOp, '^': tokOp,
	'(': tokLParen, ')': tokRParen,
	'{': tokLBrace, '}': tokRBrace,
	'[': tokLBracket, ']': tokRBracket,
	',': tokComma, '|': tokBar,
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isAlnum(c byte) bool  { return isDigit(c) || isLetter(c) }

// tokenize splits src into tokens, always ending with tokEOF.
func tokenize(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || c == '.':
			end, err := scanNumber(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokNumber, text: src[i:end], pos: i})
			i = end
		case isLetter(c):
			end, name, err := scanIdent(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokIdent, text: name, pos: i})
			i = end
		case c == '\\':
			tok, end, err := scanCommand(src, i)
			if err != nil {
				return nil, err
			}
			if tok.kind != tokEOF {
				toks = append(toks, tok)
			}
			i = end
		default:
			kind, ok := punctTokens[c]
			if !ok {
				return nil, &ParseError{Pos: i, Msg: fmt.Sprintf("unexpected character %q", c)}
			}
			toks = append(toks, token{kind: kind, text: src[i : i+1], pos: i})
			i++
		}
	}

	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

// scanNumber reads digits [. digits] [e[+-]digits] starting at i.
// The exponent is only consumed when digits follow, so "2e" stays 2·e.
func scanNumber(src string, i int) (int, error) {
	start, digits := i, 0
	for i < len(src) && isDigit(src[i]) {
		i++
		digits++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, &ParseError{Pos: start, Msg: "malformed number"}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			i = j
		}
	}
	if i < len(src) && src[i] == '.' {
		return 0, &ParseError{Pos: i, Msg: "malformed number"}
	}

	return i, nil
}

// scanIdent reads a maximal alphanumeric run plus an optional subscript
// (x_1, x_{12}); the subscript is folded into the name as "x_12".
func scanIdent(src string, i int) (int, string, error) {
	start := i
	for i < len(src) && isAlnum(src[i]) {
		i++
	}
	name := src[start:i]
	if i >= len(src) || src[i] != '_' {
		return i, name, nil
	}

	sub := i
	i++
	if i < len(src) && src[i] == '{' {
		j := i + 1
		for j < len(src) && isAlnum(src[j]) {
			j++
		}
		if j == i+1 || j >= len(src) || src[j] != '}' {
			return 0, "", &ParseError{Pos: sub, Msg: "malformed subscript"}
		}
		return j + 1, name + "_" + src[i+1:j], nil
	}
	j := i
	for j < len(src) && isAlnum(src[j]) {
		j++
	}
	if j == i {
		return 0, "", &ParseError{Pos: sub, Msg: "malformed subscript"}
	}

	return j, name + "_" + src[i:j], nil
}

// scanCommand reads a backslash command. Spacing commands (\, \; \! "\ ")
// yield a tokEOF placeholder that the caller drops.
func scanCommand(src string, i int) (token, int, error) {
	start := i
	i++
	if i < len(src) && strings.IndexByte(",;:! ", src[i]) >= 0 {
		return token{kind: tokEOF}, i + 1, nil
	}
	for i < len(src) && isLetter(src[i]) {
		i++
	}
	name := src[start+1 : i]
	tok, ok := commandTokens[name]
	if !ok {
		return token{}, 0, &ParseError{Pos: start, Msg: fmt.Sprintf("unsupported command \\%s", name)}
	}
	tok.pos = start

	return tok, i, nil
}

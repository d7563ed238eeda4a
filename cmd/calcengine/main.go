// SPDX-License-Identifier: MIT

// Command calcengine runs one engine operation from the command line and
// prints its notation string.
//
//	calcengine -op bisection -f "x^2-2" -a 0 -b 2 -tol 1e-6 -max 100
//	calcengine -op cramer -A "2,1;1,-1" -t "5,1"
//	calcengine -op evaluate -f "A v" -matrix "A=1,2;3,4" -vector "v=1,1"
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/calcengine/engine"
)

func main() {
	var (
		op       = flag.String("op", "evaluate", "Operation name (see -list)")
		list     = flag.Bool("list", false, "List the available operations and exit")
		fn       = flag.String("f", "", "Expression or function of x")
		a        = flag.String("a", "", "First scalar: bracket start, seed x0, scale factor or plot xmin")
		b        = flag.String("b", "", "Second scalar: bracket end, seed x1 or plot xmax")
		tol      = flag.String("tol", "", "Tolerance (blank uses the engine default)")
		maxIter  = flag.Int("max", 0, "Iteration cap (<= 0 uses the engine default)")
		samples  = flag.Int("n", 0, "Plot samples (<= 0 uses the engine default)")
		matA     = flag.String("A", "", "First matrix, rows separated by ';' and cells by ','")
		matB     = flag.String("B", "", "Second matrix")
		vecU     = flag.String("u", "", "First vector, cells separated by ','")
		vecV     = flag.String("v", "", "Second vector")
		vectors  = flag.String("vectors", "", "Vector set, vectors separated by ';'")
		target   = flag.String("t", "", "Target vector (linear combination, Cramer)")
		logLevel = flag.String("log-level", "error", "Log level (debug, info, warn, error)")
	)
	bindings := map[string]engine.Operand{}
	flag.Func("scalar", "Scalar binding name=value (repeatable)", bind(bindings, func(s string) engine.Operand {
		return engine.Operand{Scalar: s}
	}))
	flag.Func("vector", "Vector binding name=c1,c2,... (repeatable)", bind(bindings, func(s string) engine.Operand {
		return engine.Operand{Vector: splitCells(s)}
	}))
	flag.Func("matrix", "Matrix binding name=r1c1,r1c2;r2c1,... (repeatable)", bind(bindings, func(s string) engine.Operand {
		return engine.Operand{Matrix: splitGrid(s)}
	}))
	flag.Parse()

	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		log.Printf("Invalid log level %q, using error", *logLevel)
		level = logging.LevelError
	}
	logging.SetAllLoggers(level)

	if *list {
		for _, o := range engine.Operations() {
			fmt.Println(o)
		}
		return
	}

	req := engine.Request{
		Operation:     engine.Operation(*op),
		Expression:    *fn,
		Bindings:      bindings,
		Target:        splitCells(*target),
		Tolerance:     *tol,
		MaxIterations: *maxIter,
		Samples:       *samples,
	}
	for _, m := range []string{*matA, *matB} {
		if m != "" {
			req.Matrices = append(req.Matrices, splitGrid(m))
		}
	}
	for _, v := range []string{*vecU, *vecV} {
		if v != "" {
			req.Vectors = append(req.Vectors, splitCells(v))
		}
	}
	if *vectors != "" {
		req.Vectors = append(req.Vectors, splitGrid(*vectors)...)
	}
	for _, s := range []string{*a, *b} {
		if s != "" {
			req.Scalars = append(req.Scalars, s)
		}
	}

	resp, err := engine.New().Call(req)
	if resp != nil {
		fmt.Println(resp.Notation)
		summarize(resp)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "calcengine: %s: %v\n", engine.KindOf(err), err)
		os.Exit(1)
	}
}

func bind(into map[string]engine.Operand, build func(string) engine.Operand) func(string) error {
	return func(s string) error {
		name, value, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("binding %q: want name=value", s)
		}
		into[strings.TrimSpace(name)] = build(value)
		return nil
	}
}

func splitCells(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func splitGrid(s string) [][]string {
	rows := strings.Split(s, ";")
	grid := make([][]string, len(rows))
	for i, r := range rows {
		grid[i] = splitCells(r)
	}
	return grid
}

func summarize(r *engine.Response) {
	switch r.Kind {
	case engine.ResultMethod:
		m := r.Method
		if m.HasRoot {
			fmt.Printf("root=%.10g f(root)=%.3g ", m.Root, m.FRoot)
		}
		fmt.Printf("converged=%v iterations=%d/%d\n", m.Converged, m.Iterations, m.MaxIterations)
	case engine.ResultDeterminant:
		fmt.Printf("det=%g singular=%v\n", r.Determinant.Value, r.Determinant.Singular)
	case engine.ResultSystem:
		fmt.Printf("outcome=%s values=%v\n", r.System.Outcome, r.System.Values)
	case engine.ResultReduction:
		fmt.Printf("outcome=%s values=%v free=%v\n", r.Reduction.Outcome, r.Reduction.Values, r.Reduction.Free)
	case engine.ResultDependency:
		fmt.Printf("dependent=%v rank=%d witness=%v\n", r.Dependency.Dependent, r.Dependency.Rank, r.Dependency.Witness)
	case engine.ResultPlot:
		for _, p := range r.Points {
			fmt.Printf("%g\t%g\n", p.X, p.Y)
		}
	}
}

package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jot-format/go-jot/debug"
	"github.com/signadot/jot-format/go-jot/encode"
	"github.com/signadot/jot-format/go-jot/ir"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression argument", cli.ErrUsage)
	}
	src := args[0]
	program, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", src, err)
	}
	for _, arg := range orStdin(args[1:]) {
		node, err := parseArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		env := map[string]any{"doc": ir.ToAny(node)}
		ir.Delete(node)
		res, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", src, arg, err)
		}
		if debug.Eval() {
			debug.Logf("eval %q on %s: %v", src, arg, res)
		}
		out, err := ir.FromAny(res)
		if err != nil {
			// not representable as a document; print the Go value
			fmt.Fprintf(cc.Out, "%v\n", res)
			continue
		}
		err = encode.Encode(out, cc.Out, cfg.encOpts(cc.Out)...)
		ir.Delete(out)
		if err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/jot-format/go-jot/encode"
	"github.com/signadot/jot-format/go-jot/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range orStdin(args) {
		node, err := parseArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		err = encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
		ir.Delete(node)
		if err != nil {
			return err
		}
	}
	return nil
}

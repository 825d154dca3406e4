package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jot-format/go-jot/encode"
	"github.com/signadot/jot-format/go-jot/ir"
)

func fromYAML(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		cfg.YAML.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range orStdin(args) {
		d, err := readInput(arg)
		if err != nil {
			return err
		}
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		node, err := ir.FromAny(v)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
		err = encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
		ir.Delete(node)
		if err != nil {
			return err
		}
	}
	return nil
}

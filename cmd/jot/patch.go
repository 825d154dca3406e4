package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jot-format/go-jot/debug"
	"github.com/signadot/jot-format/go-jot/encode"
	"github.com/signadot/jot-format/go-jot/ir"
	"github.com/signadot/jot-format/go-jot/parse"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	patchDoc, err := parseArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	// round-trip through the compact encoding so the patch input is
	// validated by the same engine as the documents
	pd, err := encode.Marshal(patchDoc)
	ir.Delete(patchDoc)
	if err != nil {
		return err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	for _, arg := range orStdin(args[1:]) {
		if err := patchArg(cfg, cc, ops, arg); err != nil {
			return err
		}
	}
	return nil
}

func patchArg(cfg *PatchConfig, cc *cli.Context, ops jsonpatch.Patch, arg string) error {
	node, err := parseArg(cfg.MainConfig, arg)
	if err != nil {
		return err
	}
	d, err := encode.Marshal(node)
	ir.Delete(node)
	if err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("patching %s: %s", arg, string(d))
	}
	out, err := ops.Apply(d)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", arg, err)
	}
	res, err := parse.Parse(out, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding patch result for %s: %w", arg, err)
	}
	err = encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
	ir.Delete(res)
	return err
}

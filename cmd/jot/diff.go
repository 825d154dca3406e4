package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jot-format/go-jot/debug"
	"github.com/signadot/jot-format/go-jot/encode"
	"github.com/signadot/jot-format/go-jot/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two document arguments", cli.ErrUsage)
	}
	from, err := canonical(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := canonical(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if debug.Diff() {
		logger := debug.Logger()
		logger.Debug().
			Int("chunks", len(diffs)).
			Str("from", args[0]).
			Str("to", args[1]).
			Msg("computed diff")
	}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			printPrefixed(cc, "-", d.Text)
		case diffpatch.DiffInsert:
			printPrefixed(cc, "+", d.Text)
		case diffpatch.DiffEqual:
			printPrefixed(cc, " ", d.Text)
		}
	}
	return nil
}

// canonical renders a document argument in a fixed indented form so the
// text diff tracks structure rather than incidental formatting.
func canonical(cfg *MainConfig, arg string) (string, error) {
	node, err := parseArg(cfg, arg)
	if err != nil {
		return "", err
	}
	d, err := encode.MarshalIndent(node, 2)
	ir.Delete(node)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func printPrefixed(cc *cli.Context, prefix, text string) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for _, ln := range lines {
		fmt.Fprintf(cc.Out, "%s%s\n", prefix, ln)
	}
}

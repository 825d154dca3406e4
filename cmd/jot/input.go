package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/signadot/jot-format/go-jot/debug"
	"github.com/signadot/jot-format/go-jot/ir"
	"github.com/signadot/jot-format/go-jot/parse"
)

// readInput reads a document argument: a file path, or "-" for stdin.
// Files ending in .gz are decompressed transparently.
func readInput(arg string) ([]byte, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	if strings.HasSuffix(arg, ".gz") {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("could not decompress %q: %w", arg, err)
		}
		defer zr.Close()
		r = zr
	}
	return io.ReadAll(r)
}

func parseArg(cfg *MainConfig, arg string) (*ir.Node, error) {
	d, err := readInput(arg)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if debug.Parse() {
		debug.Logf("decoded %s: %v", arg, node)
	}
	return node, nil
}

// orStdin substitutes reading stdin when no file arguments are given.
func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

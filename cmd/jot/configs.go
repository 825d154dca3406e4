package main

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jot-format/go-jot/encode"
	"github.com/signadot/jot-format/go-jot/parse"
)

type MainConfig struct {
	Wire  bool `cli:"name=w aliases=wire desc='compact wire output'"`
	Color bool `cli:"name=color desc='encode with color'"`

	Indent   int
	MaxDepth int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) intOpt(dst *int) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		*dst = n
		return n, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	res := []parse.Option{}
	if cfg.MaxDepth > 0 {
		res = append(res, parse.WithMaxDepth(cfg.MaxDepth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if !cfg.Wire {
		res = append(res, encode.WithIndent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, encode.WithColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.WithColors(encode.NewColors()))
	}
	return res
}

// fileConfig holds optional defaults read from ~/.config/jot/config.toml.
type fileConfig struct {
	Indent   int  `toml:"indent"`
	Color    bool `toml:"color"`
	MaxDepth int  `toml:"max_depth"`
}

func loadFileConfig() *fileConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	path := filepath.Join(home, ".config", "jot", "config.toml")
	out := &fileConfig{}
	if _, err := toml.DecodeFile(path, out); err != nil {
		return nil
	}
	return out
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type YAMLConfig struct {
	*MainConfig

	YAML *cli.Command
}

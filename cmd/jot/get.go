package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jot-format/go-jot/encode"
	"github.com/signadot/jot-format/go-jot/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a document path", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range orStdin(args[1:]) {
		node, err := parseArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := resolvePath(node, path)
		if err != nil {
			ir.Delete(node)
			return fmt.Errorf("error resolving %q in %s: %w", path, arg, err)
		}
		err = encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
		ir.Delete(node)
		if err != nil {
			return err
		}
	}
	return nil
}

// resolvePath walks a dotted key/index path such as "users[2].name" or
// ".items[0]". Keys are matched case sensitively.
func resolvePath(node *ir.Node, path string) (*ir.Node, error) {
	cur := node
	for _, part := range strings.Split(strings.TrimPrefix(path, "."), ".") {
		key := part
		var idxs []int
		for {
			open := strings.LastIndexByte(key, '[')
			if open < 0 || !strings.HasSuffix(key, "]") {
				break
			}
			n, err := strconv.Atoi(key[open+1 : len(key)-1])
			if err != nil {
				return nil, fmt.Errorf("bad index in %q", part)
			}
			idxs = append([]int{n}, idxs...)
			key = key[:open]
		}
		if key != "" {
			cur = ir.GetExact(cur, key)
			if cur == nil {
				return nil, fmt.Errorf("no member %q", key)
			}
		}
		for _, i := range idxs {
			cur = ir.Item(cur, i)
			if cur == nil {
				return nil, fmt.Errorf("index %d out of range", i)
			}
		}
	}
	return cur, nil
}

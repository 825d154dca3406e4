// Package debug provides env-gated diagnostics for the jot tool. Toggles
// are read once at startup from JOT_DEBUG_* variables.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Patch bool
	Diff  bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JOT_DEBUG_PARSE")
	d.Patch = boolEnv("JOT_DEBUG_PATCH")
	d.Diff = boolEnv("JOT_DEBUG_DIFF")
	d.Eval = boolEnv("JOT_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
func Eval() bool {
	return d.Eval
}

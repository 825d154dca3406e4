package encode

import "github.com/signadot/jot-format/go-jot/ir"

// MustString returns the compact encoding of node, panicking on failure.
// Intended for tests and diagnostics.
func MustString(node *ir.Node) string {
	d, err := Marshal(node)
	if err != nil {
		panic(err)
	}
	return string(d)
}

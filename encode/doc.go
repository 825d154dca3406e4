// Package encode encodes ir nodes to JSON text.
//
// # Usage
//
//	obj := ir.NewObject()
//	ir.Set(obj, "name", ir.FromString("alice"))
//	ir.Set(obj, "age", ir.FromInt(30))
//	out, err := encode.Marshal(obj)
//
//	// Pretty-printed output
//	out, err := encode.MarshalIndent(obj, 2)
//
//	// Encode to a writer
//	err := encode.Encode(obj, os.Stdout)
//
// Marshal produces compact output with no whitespace between tokens; this
// is the canonical wire form and every entry point defaults to it.
// Indentation is a separate, opt-in capability via WithIndent.
//
// Output is accumulated in a growable buffer whose capacity doubles on
// demand, routed through the ir allocation hooks, so total copy cost is
// linear in the final output size.
//
// # Related Packages
//
//   - github.com/signadot/jot-format/go-jot/ir - node representation
//   - github.com/signadot/jot-format/go-jot/parse - parse text to ir
package encode

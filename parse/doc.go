// Package parse parses JSON text into ir nodes.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//	name := ir.Get(node, "name")
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.WithMaxDepth(64))
//
// The parser is a bounded-buffer recursive descent over the input bytes. It
// accepts standard JSON structure with two deliberate relaxations carried
// from the engine's lineage: \uXXXX escapes decode to a single placeholder
// byte rather than a code point, and numbers are scanned by a permissive
// strtod-style prefix scan rather than the strict RFC 8259 number grammar.
//
// Errors are returned per call, wrapping the sentinel taxonomy in errs.go
// together with the byte offset of the failure. A failed parse never
// returns a tree and never leaks nodes it had already constructed.
//
// # Related Packages
//
//   - github.com/signadot/jot-format/go-jot/ir - node representation
//   - github.com/signadot/jot-format/go-jot/encode - encode ir to text
package parse

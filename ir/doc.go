// Package ir provides the in-memory representation for JSON documents.
//
// # Overview
//
// The ir package defines the tree of nodes shared by the parser and the
// encoder. All documents, whether parsed from text or created
// programmatically, are represented as *ir.Node trees.
//
// # Node Structure
//
// A Node represents a single JSON value, or a single object member when it
// carries a Key. Siblings are linked in a doubly-linked list in insertion
// order; a container owns its children through Child, the head of that list.
// Insertion order is significant: it is the iteration order for object
// members and the element order for arrays.
//
// The Type field fully determines which payload fields are meaningful:
//
//   - NullType, TrueType, FalseType: no payload
//   - NumberType: Float, plus Int, the truncated integer cache
//   - StringType, RawType: Str
//   - ArrayType, ObjectType: Child
//
// Payload fields outside a node's type must be ignored by consumers.
//
// # Ownership
//
// A node appended into a container is owned exclusively by that container.
// Two explicit markers relax this: Reference means the node's children and
// string are borrowed and must not be released by Delete, and ConstKey means
// the member key is borrowed. Moving a node that is already owned elsewhere
// without detaching it first is a usage error, not a checked error.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	s := ir.FromString("hello")
//	n := ir.FromFloat(42.5)
//	obj := ir.NewObject()
//	ir.Set(obj, "name", s)
//	arr := ir.NewArray()
//	ir.Append(arr, n)
//
// # Lookup
//
// Object member lookup is a linear scan returning the first key match in
// sibling order; duplicate keys are legal. Get compares keys ignoring case,
// GetExact compares exactly. Array access with Item is a linear traversal;
// out-of-range indices yield nil rather than an error.
//
// # Allocation
//
// All node allocation and release routes through the process-wide Hooks pair
// (see InitHooks), so a pooled or counting allocation strategy applies
// consistently across construction, parsing, and deletion. Parsing and
// encoding accept per-call hook overrides for reentrant use.
//
// # Thread Safety
//
// Node trees are not thread-safe. Share a tree across goroutines only if it
// is treated as immutable, or synchronize mutation and deletion externally.
//
// # Related Packages
//
//   - github.com/signadot/jot-format/go-jot/parse - parses text into ir nodes
//   - github.com/signadot/jot-format/go-jot/encode - encodes ir nodes to text
package ir

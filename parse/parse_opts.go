package parse

import "github.com/signadot/jot-format/go-jot/ir"

// DefaultMaxDepth bounds document nesting so adversarial input cannot
// exhaust the call stack. Well-formed documents are unaffected.
const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth int
	hooks    *ir.Hooks
}

type Option func(*parseOpts)

// WithMaxDepth overrides DefaultMaxDepth. Values < 1 leave the default.
func WithMaxDepth(n int) Option {
	return func(o *parseOpts) {
		if n >= 1 {
			o.maxDepth = n
		}
	}
}

// WithHooks routes this call's node allocation and unwinding through h
// instead of the process-wide hooks, making the call independent of global
// state.
func WithHooks(h *ir.Hooks) Option {
	return func(o *parseOpts) { o.hooks = h }
}

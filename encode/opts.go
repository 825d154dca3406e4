package encode

import "github.com/signadot/jot-format/go-jot/ir"

type EncodeOption func(*EncState)

// WithIndent enables pretty-printed output with n spaces per nesting level.
// n <= 0 keeps the compact form.
func WithIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// WithHooks routes this call's buffer growth through h instead of the
// process-wide hooks.
func WithHooks(h *ir.Hooks) EncodeOption {
	return func(es *EncState) { es.hooks = h }
}

// WithColors wraps emitted tokens in terminal color sequences. Colored
// output is for human consumption and does not re-parse.
func WithColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

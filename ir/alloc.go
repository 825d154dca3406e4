package ir

// Hooks is the pluggable allocation pair used by the engine. NewNode and
// FreeNode govern node lifetime; GrowBuffer governs print-buffer growth in
// the encode package. Any nil slot falls back to the default behavior.
//
// NewNode returning nil is treated as allocation failure by builders and by
// the parser.
type Hooks struct {
	NewNode    func() *Node
	FreeNode   func(*Node)
	GrowBuffer func(buf []byte, need int) []byte
}

var defaultHooks = Hooks{
	NewNode:    func() *Node { return &Node{} },
	FreeNode:   func(*Node) {},
	GrowBuffer: growDouble,
}

// growDouble returns a buffer with the contents of buf and capacity at least
// twice need, amortizing total copy cost to linear in final output size.
func growDouble(buf []byte, need int) []byte {
	if need <= cap(buf) {
		return buf
	}
	next := make([]byte, len(buf), 2*need)
	copy(next, buf)
	return next
}

var globalHooks = defaultHooks

// InitHooks replaces the process-wide allocation hooks. Passing nil resets
// the defaults, as does any nil slot in h. InitHooks must be called before
// any concurrent use of the engine and not mutated while other goroutines
// may be allocating.
func InitHooks(h *Hooks) {
	if h == nil {
		globalHooks = defaultHooks
		return
	}
	globalHooks = defaultHooks
	if h.NewNode != nil {
		globalHooks.NewNode = h.NewNode
	}
	if h.FreeNode != nil {
		globalHooks.FreeNode = h.FreeNode
	}
	if h.GrowBuffer != nil {
		globalHooks.GrowBuffer = h.GrowBuffer
	}
}

// GlobalHooks returns the process-wide hooks with nil slots resolved. The
// parse and encode packages use it when no per-call override is given.
func GlobalHooks() *Hooks {
	h := globalHooks
	return &h
}

// Resolve returns h with nil slots filled from the defaults, or the
// process-wide hooks when h is nil.
func (h *Hooks) Resolve() *Hooks {
	if h == nil {
		return GlobalHooks()
	}
	res := *h
	if res.NewNode == nil {
		res.NewNode = defaultHooks.NewNode
	}
	if res.FreeNode == nil {
		res.FreeNode = defaultHooks.FreeNode
	}
	if res.GrowBuffer == nil {
		res.GrowBuffer = defaultHooks.GrowBuffer
	}
	return &res
}

func newNode() *Node {
	return globalHooks.NewNode()
}

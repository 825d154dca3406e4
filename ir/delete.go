package ir

// Delete releases node and all of its following siblings through the
// process-wide hooks. It never fails; a nil node is a no-op.
//
// The sibling chain is walked iteratively and children are released
// recursively, except under nodes marked Reference, whose borrowed children
// stay with their owner. Each node is zeroed before it is handed back to the
// hooks, so pooled nodes come back clean.
func Delete(node *Node) {
	DeleteWith(nil, node)
}

// DeleteWith is Delete routed through h instead of the process-wide hooks.
// The parser uses it to unwind partially built containers with the same
// hooks that allocated them.
func DeleteWith(h *Hooks, node *Node) {
	hooks := h.Resolve()
	for node != nil {
		next := node.Next
		if !node.Reference && node.Child != nil {
			DeleteWith(h, node.Child)
		}
		*node = Node{}
		hooks.FreeNode(node)
		node = next
	}
}

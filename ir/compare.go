package ir

// Equal reports whether a and b are both present and have the same type,
// treating TrueType and FalseType as distinct. It does not compare values,
// keys, or children.
//
// TODO: compare number/string payloads and recurse into children; callers
// relying on the current type-only behavior need auditing first.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Type == b.Type
}

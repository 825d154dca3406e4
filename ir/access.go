package ir

import "strings"

// Append adds item to the end of array's child list and transfers ownership
// of item to array. It fails without side effects when either argument is
// nil. Appending a node that is still owned by another container without
// detaching it first is a usage error.
func Append(array, item *Node) error {
	if array == nil || item == nil {
		return ErrNilNode
	}
	child := array.Child
	if child == nil {
		array.Child = item
		return nil
	}
	for child.Next != nil {
		child = child.Next
	}
	child.Next = item
	item.Prev = child
	return nil
}

// Set adds item to object under key, owning a copy of the key, then appends
// it to the member list.
func Set(object *Node, key string, item *Node) error {
	if item == nil {
		return ErrNilNode
	}
	item.Key = key
	item.ConstKey = false
	return Append(object, item)
}

// SetConst is Set with a borrowed key: the ConstKey marker is set so Delete
// leaves the key alone.
func SetConst(object *Node, key string, item *Node) error {
	if item == nil {
		return ErrNilNode
	}
	item.Key = key
	item.ConstKey = true
	return Append(object, item)
}

// The Add* helpers construct a node, attach it under key, and return it.
// They return nil when construction or attachment fails, releasing the
// orphan node.

func AddNull(object *Node, key string) *Node      { return addChecked(object, key, Null()) }
func AddTrue(object *Node, key string) *Node      { return addChecked(object, key, True()) }
func AddFalse(object *Node, key string) *Node     { return addChecked(object, key, False()) }
func AddBool(object *Node, key string, v bool) *Node {
	return addChecked(object, key, FromBool(v))
}
func AddNumber(object *Node, key string, f float64) *Node {
	return addChecked(object, key, FromFloat(f))
}
func AddString(object *Node, key, v string) *Node {
	return addChecked(object, key, FromString(v))
}
func AddRaw(object *Node, key, v string) *Node {
	return addChecked(object, key, FromRaw(v))
}
func AddObject(object *Node, key string) *Node { return addChecked(object, key, NewObject()) }
func AddArray(object *Node, key string) *Node  { return addChecked(object, key, NewArray()) }

func addChecked(object *Node, key string, item *Node) *Node {
	if item == nil {
		return nil
	}
	if err := Set(object, key, item); err != nil {
		Delete(item)
		return nil
	}
	return item
}

// Len returns the number of children of array, zero for nil or leaf nodes.
func Len(array *Node) int {
	if array == nil {
		return 0
	}
	n := 0
	for c := array.Child; c != nil; c = c.Next {
		n++
	}
	return n
}

// Item returns the i-th child of array by linear traversal, or nil when i is
// negative or out of range. The value model has no error channel of its own.
func Item(array *Node, i int) *Node {
	if array == nil || i < 0 {
		return nil
	}
	c := array.Child
	for c != nil && i > 0 {
		c = c.Next
		i--
	}
	return c
}

// Get returns the first member of object whose key matches key ignoring
// case, or nil.
func Get(object *Node, key string) *Node {
	if object == nil {
		return nil
	}
	for c := object.Child; c != nil; c = c.Next {
		if strings.EqualFold(c.Key, key) {
			return c
		}
	}
	return nil
}

// GetExact is Get with case-sensitive key comparison.
func GetExact(object *Node, key string) *Node {
	if object == nil {
		return nil
	}
	for c := object.Child; c != nil; c = c.Next {
		if c.Key == key {
			return c
		}
	}
	return nil
}

func Has(object *Node, key string) bool {
	return Get(object, key) != nil
}

func IsInvalid(n *Node) bool { return n == nil || n.Type == InvalidType }
func IsNull(n *Node) bool    { return n != nil && n.Type == NullType }
func IsTrue(n *Node) bool    { return n != nil && n.Type == TrueType }
func IsFalse(n *Node) bool   { return n != nil && n.Type == FalseType }
func IsBool(n *Node) bool    { return n != nil && n.Type.IsBool() }
func IsNumber(n *Node) bool  { return n != nil && n.Type == NumberType }
func IsString(n *Node) bool  { return n != nil && n.Type == StringType }
func IsArray(n *Node) bool   { return n != nil && n.Type == ArrayType }
func IsObject(n *Node) bool  { return n != nil && n.Type == ObjectType }
func IsRaw(n *Node) bool     { return n != nil && n.Type == RawType }

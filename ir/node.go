package ir

import "math"

// Node is one JSON value, or one object member when Key is non-empty and
// the parent is an object. See the package documentation for the structure
// and ownership invariants.
type Node struct {
	Type Type

	// Siblings in insertion order; Child is the head of an Array's or
	// Object's child list and is unused for other types.
	Next  *Node
	Prev  *Node
	Child *Node

	// Key is present only on members of an object. It need not be unique;
	// lookup returns the first match in sibling order.
	Key string

	// Str is the payload for StringType and RawType.
	Str string

	// Float is the numeric payload; Int caches its truncation at
	// construction/parse time and only decides integer-vs-general print
	// formatting.
	Float float64
	Int   int64

	// Reference marks children and string as borrowed: Delete will not
	// release them. ConstKey marks Key as borrowed.
	Reference bool
	ConstKey  bool
}

func Null() *Node {
	n := newNode()
	if n != nil {
		n.Type = NullType
	}
	return n
}

func True() *Node {
	n := newNode()
	if n != nil {
		n.Type = TrueType
	}
	return n
}

func False() *Node {
	n := newNode()
	if n != nil {
		n.Type = FalseType
	}
	return n
}

func FromBool(v bool) *Node {
	if v {
		return True()
	}
	return False()
}

func FromFloat(f float64) *Node {
	n := newNode()
	if n == nil {
		return nil
	}
	n.Type = NumberType
	n.Float = f
	n.Int = truncInt(f)
	return n
}

func FromInt(i int64) *Node {
	n := newNode()
	if n == nil {
		return nil
	}
	n.Type = NumberType
	n.Float = float64(i)
	n.Int = i
	return n
}

func FromString(v string) *Node {
	n := newNode()
	if n == nil {
		return nil
	}
	n.Type = StringType
	n.Str = v
	return n
}

// FromRaw creates a node whose string payload is treated as pre-rendered
// content by consumers that distinguish Raw from String. The encoder in this
// module prints Raw through the same escaping path as String.
func FromRaw(v string) *Node {
	n := newNode()
	if n == nil {
		return nil
	}
	n.Type = RawType
	n.Str = v
	return n
}

func NewArray() *Node {
	n := newNode()
	if n != nil {
		n.Type = ArrayType
	}
	return n
}

func NewObject() *Node {
	n := newNode()
	if n != nil {
		n.Type = ObjectType
	}
	return n
}

// SetNumber populates n as a number node, caching the truncated integer
// used by the encoder's formatting decision.
func (n *Node) SetNumber(f float64) {
	n.Type = NumberType
	n.Float = f
	n.Int = truncInt(f)
}

// truncInt guards the int64 conversion: NaN, infinities and out-of-range
// doubles cache zero, which never equals a finite non-zero Float and so
// never selects integer formatting by accident.
func truncInt(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0
	}
	return int64(f)
}

// Clone returns a structural deep copy of n: an equivalent, independently
// owned tree with no Reference or ConstKey borrowing.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dst := newNode()
	if dst == nil {
		return nil
	}
	dst.Type = n.Type
	dst.Key = n.Key
	dst.Str = n.Str
	dst.Float = n.Float
	dst.Int = n.Int
	var tail *Node
	for c := n.Child; c != nil; c = c.Next {
		cc := c.Clone()
		if cc == nil {
			Delete(dst)
			return nil
		}
		if tail == nil {
			dst.Child = cc
		} else {
			tail.Next = cc
			cc.Prev = tail
		}
		tail = cc
	}
	return dst
}

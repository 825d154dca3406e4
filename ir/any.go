package ir

import "fmt"

// ToAny converts a tree to plain Go values: nil, bool, float64, string,
// []any, and map[string]any. Duplicate object keys collapse to the last
// occurrence. Raw payloads come back as strings.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ObjectType:
		res := make(map[string]any, Len(node))
		for c := node.Child; c != nil; c = c.Next {
			res[c.Key] = ToAny(c)
		}
		return res
	case ArrayType:
		res := make([]any, 0, Len(node))
		for c := node.Child; c != nil; c = c.Next {
			res = append(res, ToAny(c))
		}
		return res
	case StringType, RawType:
		return node.Str
	case NumberType:
		if node.Float == float64(node.Int) {
			return node.Int
		}
		return node.Float
	case TrueType:
		return true
	case FalseType:
		return false
	case NullType:
		return nil
	default:
		return nil
	}
}

// FromAny builds a tree from plain Go values as produced by ToAny or by
// generic YAML/JSON decoders. Map iteration order is not deterministic;
// callers that need stable member order should build trees with Set.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return allocOK(Null())
	case bool:
		return allocOK(FromBool(x))
	case string:
		return allocOK(FromString(x))
	case float64:
		return allocOK(FromFloat(x))
	case float32:
		return allocOK(FromFloat(float64(x)))
	case int:
		return allocOK(FromInt(int64(x)))
	case int64:
		return allocOK(FromInt(x))
	case uint64:
		return allocOK(FromFloat(float64(x)))
	case []any:
		arr := NewArray()
		if arr == nil {
			return nil, ErrAlloc
		}
		for _, elt := range x {
			c, err := FromAny(elt)
			if err != nil {
				Delete(arr)
				return nil, err
			}
			if err := Append(arr, c); err != nil {
				Delete(c)
				Delete(arr)
				return nil, err
			}
		}
		return arr, nil
	case map[string]any:
		obj := NewObject()
		if obj == nil {
			return nil, ErrAlloc
		}
		for key, elt := range x {
			c, err := FromAny(elt)
			if err != nil {
				Delete(obj)
				return nil, err
			}
			if err := Set(obj, key, c); err != nil {
				Delete(c)
				Delete(obj)
				return nil, err
			}
		}
		return obj, nil
	case map[any]any:
		obj := NewObject()
		if obj == nil {
			return nil, ErrAlloc
		}
		for key, elt := range x {
			ks, ok := key.(string)
			if !ok {
				ks = fmt.Sprintf("%v", key)
			}
			c, err := FromAny(elt)
			if err != nil {
				Delete(obj)
				return nil, err
			}
			if err := Set(obj, ks, c); err != nil {
				Delete(c)
				Delete(obj)
				return nil, err
			}
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("cannot represent %T", v)
	}
}

func allocOK(n *Node) (*Node, error) {
	if n == nil {
		return nil, ErrAlloc
	}
	return n, nil
}

package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/jot-format/go-jot/ir"
)

type EncState struct {
	indent int
	depth  int
	hooks  *ir.Hooks

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// initialBufferSize is the print buffer's starting capacity; growth beyond
// it doubles through the allocation hooks.
const initialBufferSize = 256

// Marshal encodes node and returns the output buffer, which is owned by the
// caller. The default output is compact: no whitespace between tokens.
func Marshal(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	es.hooks = es.hooks.Resolve()
	pb := &printBuffer{
		buf:  make([]byte, 0, initialBufferSize),
		grow: es.hooks.GrowBuffer,
	}
	if err := encode(node, pb, es); err != nil {
		return nil, err
	}
	return pb.buf, nil
}

// MarshalIndent is Marshal with pretty-printed output, indent spaces per
// nesting level.
func MarshalIndent(node *ir.Node, indent int, opts ...EncodeOption) ([]byte, error) {
	return Marshal(node, append(opts, WithIndent(indent))...)
}

// Encode marshals node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	d, err := Marshal(node, opts...)
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

// printBuffer accumulates output with amortized doubling growth routed
// through the allocation hooks.
type printBuffer struct {
	buf  []byte
	grow func([]byte, int) []byte
}

func (pb *printBuffer) ensure(n int) error {
	need := len(pb.buf) + n
	if need <= cap(pb.buf) {
		return nil
	}
	next := pb.grow(pb.buf, need)
	if next == nil || cap(next) < need {
		return ErrAlloc
	}
	pb.buf = next[:len(pb.buf)]
	return nil
}

func (pb *printBuffer) push(s string) error {
	if err := pb.ensure(len(s)); err != nil {
		return err
	}
	pb.buf = append(pb.buf, s...)
	return nil
}

func (pb *printBuffer) pushByte(c byte) error {
	if err := pb.ensure(1); err != nil {
		return err
	}
	pb.buf = append(pb.buf, c)
	return nil
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func encode(node *ir.Node, pb *printBuffer, es *EncState) error {
	if node == nil {
		return ErrEncoding
	}
	es.colorType = node.Type
	switch node.Type {
	case ir.NullType:
		return pb.push(applyColor(es, ir.NullType, ValueColor, "null"))
	case ir.FalseType:
		return pb.push(applyColor(es, ir.FalseType, ValueColor, "false"))
	case ir.TrueType:
		return pb.push(applyColor(es, ir.TrueType, ValueColor, "true"))
	case ir.NumberType:
		return encodeNumber(node, pb, es)
	case ir.StringType, ir.RawType:
		return encodeString(node.Str, ValueColor, pb, es)
	case ir.ArrayType:
		return encodeArray(node, pb, es)
	case ir.ObjectType:
		return encodeObject(node, pb, es)
	default:
		return ErrEncoding
	}
}

// encodeNumber prints the plain integer form when the double exactly equals
// its truncated-integer cache; NaN and infinities are not representable and
// print as null.
func encodeNumber(node *ir.Node, pb *printBuffer, es *EncState) error {
	var v string
	f := node.Float
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		v = "null"
	case f == float64(node.Int):
		v = strconv.FormatInt(node.Int, 10)
	default:
		v = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return pb.push(applyColor(es, ir.NumberType, ValueColor, v))
}

const hexDigits = "0123456789abcdef"

// encodeString emits the quoted, escaped form of v. Escaping follows the
// wire contract: quote and backslash escaped, short forms for the common
// control characters, \u00xx for the rest below 0x20, and every other byte
// copied through without UTF-8 validation.
func encodeString(v string, attr ColorAttr, pb *printBuffer, es *EncState) error {
	d := make([]byte, 0, len(v)+2)
	d = append(d, '"')
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if c < 0x20 {
				d = append(d, '\\', 'u', '0', '0',
					hexDigits[c>>4], hexDigits[c&0xf])
			} else {
				d = append(d, c)
			}
		}
	}
	d = append(d, '"')
	return pb.push(applyColor(es, es.colorType, attr, string(d)))
}

func encodeArray(node *ir.Node, pb *printBuffer, es *EncState) error {
	if err := pb.push(applyColor(es, ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for c := node.Child; c != nil; c = c.Next {
		if err := writeNL(pb, es); err != nil {
			return err
		}
		if err := encode(c, pb, es); err != nil {
			return err
		}
		if c.Next != nil {
			if err := pb.push(applyColor(es, ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
	}
	es.depth--
	if node.Child != nil {
		if err := writeNL(pb, es); err != nil {
			return err
		}
	}
	return pb.push(applyColor(es, ir.ArrayType, SepColor, "]"))
}

func encodeObject(node *ir.Node, pb *printBuffer, es *EncState) error {
	if err := pb.push(applyColor(es, ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for c := node.Child; c != nil; c = c.Next {
		if err := writeNL(pb, es); err != nil {
			return err
		}
		es.colorType = ir.ObjectType
		if err := encodeString(c.Key, FieldColor, pb, es); err != nil {
			return err
		}
		sep := ":"
		if es.indent > 0 {
			sep = ": "
		}
		if err := pb.push(applyColor(es, ir.ObjectType, SepColor, sep)); err != nil {
			return err
		}
		if err := encode(c, pb, es); err != nil {
			return err
		}
		if c.Next != nil {
			if err := pb.push(applyColor(es, ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
	}
	es.depth--
	if node.Child != nil {
		if err := writeNL(pb, es); err != nil {
			return err
		}
	}
	return pb.push(applyColor(es, ir.ObjectType, SepColor, "}"))
}

// writeNL is a no-op in compact mode; with indentation it breaks the line
// and indents to the current depth.
func writeNL(pb *printBuffer, es *EncState) error {
	if es.indent <= 0 {
		return nil
	}
	if err := pb.pushByte('\n'); err != nil {
		return err
	}
	return pb.push(strings.Repeat(" ", es.indent*es.depth))
}

package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/jot-format/go-jot/ir"
)

// placeholderByte substitutes for a \uXXXX escape; the four hex digits are
// skipped and no code point is decoded.
const placeholderByte = '?'

// Parse parses d into a tree. The input is a bounded buffer: all scanning is
// checked against len(d), no terminator byte is required. A nil or empty
// input fails with ErrEndOfInput. On failure no tree is returned and every
// node allocated for the attempt has been released.
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		d:        d,
		maxDepth: pOpts.maxDepth,
		hooks:    pOpts.hooks.Resolve(),
	}
	if len(d) == 0 {
		return nil, p.fail(ErrEndOfInput)
	}
	root := p.hooks.NewNode()
	if root == nil {
		return nil, p.fail(ErrAlloc)
	}
	if err := p.value(root); err != nil {
		ir.DeleteWith(p.hooks, root)
		return nil, err
	}
	return root, nil
}

func ParseString(s string, opts ...Option) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	d        []byte
	off      int
	depth    int
	maxDepth int
	hooks    *ir.Hooks
}

func (p *parser) fail(sentinel error) error {
	return fmt.Errorf("%w: %w at offset %d", ErrParse, sentinel, p.off)
}

func (p *parser) failf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s at offset %d",
		ErrParse, sentinel, fmt.Sprintf(format, args...), p.off)
}

func (p *parser) canAccess(i int) bool {
	return p.off+i < len(p.d)
}

func (p *parser) canRead(n int) bool {
	return p.off+n <= len(p.d)
}

// skipWS treats any byte with value <= 32 as whitespace. Running out of
// input while skipping is not an error by itself.
func (p *parser) skipWS() {
	for p.canAccess(0) && p.d[p.off] <= 32 {
		p.off++
	}
}

// lit consumes s when the input at the cursor equals it exactly.
func (p *parser) lit(s string) bool {
	if !p.canRead(len(s)) {
		return false
	}
	if string(p.d[p.off:p.off+len(s)]) != s {
		return false
	}
	p.off += len(s)
	return true
}

// value dispatches on the byte at the cursor and populates item.
func (p *parser) value(item *ir.Node) error {
	p.skipWS()
	if !p.canAccess(0) {
		return p.fail(ErrEndOfInput)
	}
	if p.lit("null") {
		item.Type = ir.NullType
		return nil
	}
	if p.lit("false") {
		item.Type = ir.FalseType
		return nil
	}
	if p.lit("true") {
		item.Type = ir.TrueType
		return nil
	}
	switch c := p.d[p.off]; {
	case c == '"':
		return p.string(item)
	case c == '-' || (c >= '0' && c <= '9'):
		return p.number(item)
	case c == '[':
		return p.array(item)
	case c == '{':
		return p.object(item)
	}
	return p.fail(ErrInvalidValue)
}

// string decodes the quoted string at the cursor into item. The span is
// scanned twice: once to find the closing quote and size the output, once
// to copy with escapes resolved.
func (p *parser) string(item *ir.Node) error {
	if p.d[p.off] != '"' {
		return p.failf(ErrExpectedToken, "'\"'")
	}
	start := p.off + 1
	i := start
	size := 0
	for {
		if i >= len(p.d) || p.d[i] == 0 {
			return p.fail(ErrUnterminatedString)
		}
		if p.d[i] == '"' {
			break
		}
		if p.d[i] == '\\' {
			i++
			if i >= len(p.d) {
				return p.fail(ErrUnterminatedString)
			}
		}
		i++
		size++
	}
	end := i

	out := make([]byte, 0, size)
	for j := start; j < end; j++ {
		c := p.d[j]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		j++
		switch p.d[j] {
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			out = append(out, placeholderByte)
			j += 4
		default:
			// '"', '\\', '/' and anything else copy through
			out = append(out, p.d[j])
		}
	}

	item.Type = ir.StringType
	item.Str = string(out)
	p.off = end + 1
	return nil
}

// number delegates to a permissive strtod-style prefix scan; zero consumed
// bytes is a malformed literal.
func (p *parser) number(item *ir.Node) error {
	n := scanFloat(p.d[p.off:])
	if n == 0 {
		return p.fail(ErrMalformedLiteral)
	}
	f, err := strconv.ParseFloat(string(p.d[p.off:p.off+n]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// out-of-range literals keep the clamped ±Inf value, matching a
		// strtod scan; anything else the prefix scan should have rejected
		return p.fail(ErrMalformedLiteral)
	}
	item.SetNumber(f)
	p.off += n
	return nil
}

// scanFloat returns the length of the longest prefix of d acceptable to a
// locale-independent floating-point scan: optional sign, digits with an
// optional fraction, optional exponent. It enforces no stricter grammar;
// leading zeros and a bare trailing '.' are accepted.
func scanFloat(d []byte) int {
	i := 0
	if i < len(d) && (d[i] == '-' || d[i] == '+') {
		i++
	}
	intDigits := asciiDigits(d[i:])
	i += intDigits
	fracDigits := 0
	if i < len(d) && d[i] == '.' {
		fracDigits = asciiDigits(d[i+1:])
		if intDigits+fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits+fracDigits == 0 {
		return 0
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		j := i + 1
		if j < len(d) && (d[j] == '+' || d[j] == '-') {
			j++
		}
		if n := asciiDigits(d[j:]); n > 0 {
			i = j + n
		}
	}
	return i
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && d[i] >= '0' && d[i] <= '9' {
		i++
	}
	return i
}

// array parses the bracketed element list at the cursor. On any failure the
// child chain built so far is released before the error propagates.
func (p *parser) array(item *ir.Node) error {
	if p.depth >= p.maxDepth {
		return p.fail(ErrTooDeep)
	}
	p.depth++
	defer func() { p.depth-- }()

	p.off++ // consume '['
	p.skipWS()
	if p.canAccess(0) && p.d[p.off] == ']' {
		p.off++
		item.Type = ir.ArrayType
		return nil
	}

	var head, tail *ir.Node
	unwind := func(err error) error {
		ir.DeleteWith(p.hooks, head)
		return err
	}
	for {
		p.skipWS()
		elt := p.hooks.NewNode()
		if elt == nil {
			return unwind(p.fail(ErrAlloc))
		}
		if head == nil {
			head, tail = elt, elt
		} else {
			tail.Next = elt
			elt.Prev = tail
			tail = elt
		}
		if err := p.value(elt); err != nil {
			return unwind(err)
		}
		p.skipWS()
		if p.canAccess(0) && p.d[p.off] == ',' {
			p.off++
			continue
		}
		break
	}
	if !p.canAccess(0) || p.d[p.off] != ']' {
		return unwind(p.failf(ErrExpectedToken, "']'"))
	}
	p.off++
	item.Type = ir.ArrayType
	item.Child = head
	return nil
}

// object parses the braced member list at the cursor. Keys are parsed as
// strings, then moved from the value slot to the key slot with the type
// reset before the member's value is parsed.
func (p *parser) object(item *ir.Node) error {
	if p.depth >= p.maxDepth {
		return p.fail(ErrTooDeep)
	}
	p.depth++
	defer func() { p.depth-- }()

	p.off++ // consume '{'
	p.skipWS()
	if p.canAccess(0) && p.d[p.off] == '}' {
		p.off++
		item.Type = ir.ObjectType
		return nil
	}

	var head, tail *ir.Node
	unwind := func(err error) error {
		ir.DeleteWith(p.hooks, head)
		return err
	}
	for {
		p.skipWS()
		member := p.hooks.NewNode()
		if member == nil {
			return unwind(p.fail(ErrAlloc))
		}
		if head == nil {
			head, tail = member, member
		} else {
			tail.Next = member
			member.Prev = tail
			tail = member
		}

		if !p.canAccess(0) {
			return unwind(p.fail(ErrEndOfInput))
		}
		if err := p.string(member); err != nil {
			return unwind(err)
		}
		member.Key = member.Str
		member.Str = ""
		member.Type = ir.InvalidType

		p.skipWS()
		if !p.canAccess(0) || p.d[p.off] != ':' {
			return unwind(p.failf(ErrExpectedToken, "':'"))
		}
		p.off++
		p.skipWS()

		if err := p.value(member); err != nil {
			return unwind(err)
		}
		p.skipWS()
		if p.canAccess(0) && p.d[p.off] == ',' {
			p.off++
			continue
		}
		break
	}
	if !p.canAccess(0) || p.d[p.off] != '}' {
		return unwind(p.failf(ErrExpectedToken, "'}'"))
	}
	p.off++
	item.Type = ir.ObjectType
	item.Child = head
	return nil
}

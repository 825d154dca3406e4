package encode

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/signadot/jot-format/go-jot/ir"
	"github.com/signadot/jot-format/go-jot/parse"
)

type encodeTest struct {
	node *ir.Node
	want string
}

func TestMarshalLeaves(t *testing.T) {
	pts := []encodeTest{
		{ir.Null(), `null`},
		{ir.True(), `true`},
		{ir.False(), `false`},
		{ir.FromInt(3), `3`},
		{ir.FromFloat(3), `3`},
		{ir.FromFloat(3.5), `3.5`},
		{ir.FromFloat(-0.25), `-0.25`},
		{ir.FromFloat(math.NaN()), `null`},
		{ir.FromFloat(math.Inf(1)), `null`},
		{ir.FromFloat(math.Inf(-1)), `null`},
		{ir.FromString("hello"), `"hello"`},
		{ir.FromString(""), `""`},
		{ir.FromString(`a"b`), `"a\"b"`},
		{ir.FromString(`a\b`), `"a\\b"`},
		{ir.FromString("a\tb\nc"), `"a\tb\nc"`},
		{ir.FromString("\b\f\r"), `"\b\f\r"`},
		{ir.FromString("\x01"), "\"\\u0001\""},
		{ir.FromString("\x1f"), "\"\\u001f\""},
	}
	for _, pt := range pts {
		d, err := Marshal(pt.node)
		if err != nil {
			t.Errorf("%s: %v", pt.want, err)
			continue
		}
		if string(d) != pt.want {
			t.Errorf("got %q, want %q", d, pt.want)
		}
		ir.Delete(pt.node)
	}
}

func TestMarshalContainers(t *testing.T) {
	empty := ir.NewArray()
	defer ir.Delete(empty)
	emptyObj := ir.NewObject()
	defer ir.Delete(emptyObj)

	arr := ir.NewArray()
	defer ir.Delete(arr)
	ir.Append(arr, ir.FromInt(1))
	ir.Append(arr, ir.True())
	ir.Append(arr, ir.FromString("x"))

	obj := ir.NewObject()
	defer ir.Delete(obj)
	ir.AddNumber(obj, "a", 1)
	inner := ir.AddArray(obj, "b")
	ir.Append(inner, ir.Null())

	pts := []encodeTest{
		{empty, `[]`},
		{emptyObj, `{}`},
		{arr, `[1,true,"x"]`},
		{obj, `{"a":1,"b":[null]}`},
	}
	for _, pt := range pts {
		d, err := Marshal(pt.node)
		if err != nil {
			t.Errorf("%s: %v", pt.want, err)
			continue
		}
		if string(d) != pt.want {
			t.Errorf("got %q, want %q", d, pt.want)
		}
	}
}

func TestMarshalIndent(t *testing.T) {
	obj := ir.NewObject()
	defer ir.Delete(obj)
	ir.AddNumber(obj, "a", 1)
	arr := ir.AddArray(obj, "b")
	ir.Append(arr, ir.True())
	ir.Append(arr, ir.False())

	d, err := MarshalIndent(obj, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		`{`,
		`  "a": 1,`,
		`  "b": [`,
		`    true,`,
		`    false`,
		`  ]`,
		`}`,
	}, "\n")
	if string(d) != want {
		t.Errorf("got:\n%s\nwant:\n%s", d, want)
	}

	// empty containers stay on one line
	empty := ir.NewObject()
	defer ir.Delete(empty)
	d, err = MarshalIndent(empty, 2)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{}` {
		t.Errorf("empty object: %q", d)
	}
}

func TestMarshalRawEscaped(t *testing.T) {
	// raw payloads go through the string path, quotes and all
	node := ir.FromRaw(`{"pre":1}`)
	defer ir.Delete(node)
	d, err := Marshal(node)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `"{\"pre\":1}"` {
		t.Errorf("got %q", d)
	}
}

func TestMarshalInvalid(t *testing.T) {
	if _, err := Marshal(nil); err == nil {
		t.Error("nil node accepted")
	}
	if _, err := Marshal(&ir.Node{}); err == nil {
		t.Error("invalid node accepted")
	}
}

func TestEncodeWriter(t *testing.T) {
	node := ir.FromInt(7)
	defer ir.Delete(node)
	var buf bytes.Buffer
	if err := Encode(node, &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "7\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestMustString(t *testing.T) {
	node := ir.FromString("x")
	defer ir.Delete(node)
	if s := MustString(node); s != `"x"` {
		t.Errorf("got %q", s)
	}
}

func TestRoundTrip(t *testing.T) {
	ins := []string{
		`null`,
		`true`,
		`3.5`,
		`-17`,
		`"a\"b\\c"`,
		`[]`,
		`{}`,
		`[1,true,null,"x"]`,
		`{"a":1,"b":[true,false,null],"c":"x\"y"}`,
		`{"nested":{"deep":[[1],[2,[3]]]}}`,
	}
	for _, in := range ins {
		node, err := parse.ParseString(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		first, err := Marshal(node)
		if err != nil {
			ir.Delete(node)
			t.Errorf("%q: %v", in, err)
			continue
		}
		ir.Delete(node)

		// a second parse/print cycle is a fixed point
		node, err = parse.Parse(first)
		if err != nil {
			t.Errorf("%q: reparse: %v", in, err)
			continue
		}
		second, err := Marshal(node)
		ir.Delete(node)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if !bytes.Equal(first, second) {
			t.Errorf("%q: not idempotent: %q vs %q", in, first, second)
		}
	}
}

func TestRoundTripIndented(t *testing.T) {
	node, err := parse.ParseString(`{"a":[1,2],"b":"x"}`)
	if err != nil {
		t.Fatal(err)
	}
	defer ir.Delete(node)
	pretty, err := MarshalIndent(node, 4)
	if err != nil {
		t.Fatal(err)
	}
	back, err := parse.Parse(pretty)
	if err != nil {
		t.Fatalf("reparse of indented output: %v", err)
	}
	defer ir.Delete(back)
	compact, err := Marshal(back)
	if err != nil {
		t.Fatal(err)
	}
	if string(compact) != `{"a":[1,2],"b":"x"}` {
		t.Errorf("got %q", compact)
	}
}

func TestMarshalWithGrowHooks(t *testing.T) {
	grows := 0
	h := &ir.Hooks{
		GrowBuffer: func(buf []byte, need int) []byte {
			grows++
			next := make([]byte, len(buf), 2*need)
			copy(next, buf)
			return next
		},
	}
	arr := ir.NewArray()
	defer ir.Delete(arr)
	for i := 0; i < 200; i++ {
		ir.Append(arr, ir.FromInt(int64(i)))
	}
	d, err := Marshal(arr, WithHooks(h))
	if err != nil {
		t.Fatal(err)
	}
	if grows == 0 {
		t.Error("grow hook never called")
	}
	node, err := parse.Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	defer ir.Delete(node)
	if n := ir.Len(node); n != 200 {
		t.Errorf("len %d", n)
	}
}

func TestMarshalFailedGrow(t *testing.T) {
	h := &ir.Hooks{
		GrowBuffer: func([]byte, int) []byte { return nil },
	}
	node := ir.FromString(strings.Repeat("x", 4*initialBufferSize))
	defer ir.Delete(node)
	if _, err := Marshal(node, WithHooks(h)); err == nil {
		t.Error("expected allocation failure")
	}
}

func TestMarshalColor(t *testing.T) {
	obj := ir.NewObject()
	defer ir.Delete(obj)
	ir.AddNumber(obj, "a", 1)

	plain, err := Marshal(obj)
	if err != nil {
		t.Fatal(err)
	}
	colored, err := Marshal(obj, WithColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	// color output carries the same tokens plus escape sequences
	if !bytes.Contains(colored, []byte(`1`)) {
		t.Errorf("value missing from colored output: %q", colored)
	}
	if len(colored) < len(plain) {
		t.Errorf("colored output shorter than plain: %q", colored)
	}
}

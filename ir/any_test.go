package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromAnyToAny(t *testing.T) {
	pts := []any{
		nil,
		true,
		false,
		"hello",
		int64(42),
		3.5,
		[]any{int64(1), "two", nil},
		map[string]any{
			"a": int64(1),
			"b": []any{true, false},
			"c": map[string]any{"d": "e"},
		},
	}
	for _, v := range pts {
		node, err := FromAny(v)
		if err != nil {
			t.Errorf("%#v: %v", v, err)
			continue
		}
		got := ToAny(node)
		if d := cmp.Diff(v, got); d != "" {
			t.Errorf("%#v: (-want +got):\n%s", v, d)
		}
		Delete(node)
	}
}

func TestFromAnyNumericWidths(t *testing.T) {
	pts := []struct {
		in   any
		want float64
	}{
		{int(7), 7},
		{int64(-9), -9},
		{uint64(11), 11},
		{float32(1.5), 1.5},
		{float64(2.25), 2.25},
	}
	for _, pt := range pts {
		node, err := FromAny(pt.in)
		if err != nil {
			t.Errorf("%#v: %v", pt.in, err)
			continue
		}
		if !IsNumber(node) || node.Float != pt.want {
			t.Errorf("%#v: %+v", pt.in, node)
		}
		Delete(node)
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	_, err := FromAny(make(chan int))
	if err == nil {
		t.Fatal("channel accepted")
	}
	_, err = FromAny([]any{1, make(chan int)})
	if err == nil {
		t.Fatal("nested channel accepted")
	}
}

func TestToAnyIntegralNumbers(t *testing.T) {
	node, err := FromAny(map[string]any{"i": 3.0, "f": 3.5})
	if err != nil {
		t.Fatal(err)
	}
	defer Delete(node)
	m := ToAny(node).(map[string]any)
	if _, ok := m["i"].(int64); !ok {
		t.Errorf("integral number not int64: %#v", m["i"])
	}
	if _, ok := m["f"].(float64); !ok {
		t.Errorf("fractional number not float64: %#v", m["f"])
	}
}

func TestToAnyNil(t *testing.T) {
	if v := ToAny(nil); v != nil {
		t.Errorf("got %#v", v)
	}
}

package ir

import (
	"math"
	"testing"
)

func TestBuilders(t *testing.T) {
	pts := []struct {
		node *Node
		typ  Type
	}{
		{Null(), NullType},
		{True(), TrueType},
		{False(), FalseType},
		{FromBool(true), TrueType},
		{FromBool(false), FalseType},
		{FromFloat(1.5), NumberType},
		{FromInt(7), NumberType},
		{FromString("x"), StringType},
		{FromRaw(`{"pre":1}`), RawType},
		{NewArray(), ArrayType},
		{NewObject(), ObjectType},
	}
	for i, pt := range pts {
		if pt.node == nil {
			t.Fatalf("%d: nil node", i)
		}
		if pt.node.Type != pt.typ {
			t.Errorf("%d: got %s, want %s", i, pt.node.Type, pt.typ)
		}
		Delete(pt.node)
	}
}

func TestSetNumber(t *testing.T) {
	pts := []struct {
		f    float64
		i    int64
	}{
		{0, 0},
		{3, 3},
		{3.5, 3},
		{-2.75, -2},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
		{1e300, 0},
	}
	for _, pt := range pts {
		n := &Node{}
		n.SetNumber(pt.f)
		if n.Type != NumberType {
			t.Errorf("%v: type %s", pt.f, n.Type)
		}
		if n.Int != pt.i {
			t.Errorf("%v: got %d, want %d", pt.f, n.Int, pt.i)
		}
	}
}

func TestAppendOrder(t *testing.T) {
	arr := NewArray()
	defer Delete(arr)
	for i := int64(0); i < 5; i++ {
		if err := Append(arr, FromInt(i)); err != nil {
			t.Fatal(err)
		}
	}
	if n := Len(arr); n != 5 {
		t.Fatalf("len %d", n)
	}
	for i := 0; i < 5; i++ {
		item := Item(arr, i)
		if item == nil || item.Int != int64(i) {
			t.Errorf("item %d: %+v", i, item)
		}
	}
	// sibling links are bidirectional
	second := Item(arr, 1)
	if second.Prev != Item(arr, 0) || second.Next != Item(arr, 2) {
		t.Error("broken sibling links")
	}
	if Item(arr, -1) != nil || Item(arr, 5) != nil {
		t.Error("out-of-range index returned a node")
	}
}

func TestAppendNil(t *testing.T) {
	arr := NewArray()
	defer Delete(arr)
	if err := Append(nil, FromInt(1)); err == nil {
		t.Error("nil array accepted")
	}
	if err := Append(arr, nil); err == nil {
		t.Error("nil item accepted")
	}
}

func TestSetAndGet(t *testing.T) {
	obj := NewObject()
	defer Delete(obj)
	if err := Set(obj, "Key", FromInt(1)); err != nil {
		t.Fatal(err)
	}
	if err := Set(obj, "other", FromString("v")); err != nil {
		t.Fatal(err)
	}

	// lookup ignores case, exact lookup does not
	if m := Get(obj, "key"); m == nil || m.Int != 1 {
		t.Errorf("Get(key): %+v", m)
	}
	if m := GetExact(obj, "key"); m != nil {
		t.Errorf("GetExact(key): %+v", m)
	}
	if m := GetExact(obj, "Key"); m == nil || m.Int != 1 {
		t.Errorf("GetExact(Key): %+v", m)
	}
	if !Has(obj, "KEY") {
		t.Error("Has(KEY) false")
	}
	if Has(obj, "missing") {
		t.Error("Has(missing) true")
	}
}

func TestSetConst(t *testing.T) {
	obj := NewObject()
	defer Delete(obj)
	if err := Set(obj, "owned", Null()); err != nil {
		t.Fatal(err)
	}
	if err := SetConst(obj, "borrowed", Null()); err != nil {
		t.Fatal(err)
	}
	if GetExact(obj, "owned").ConstKey {
		t.Error("owned key marked const")
	}
	if !GetExact(obj, "borrowed").ConstKey {
		t.Error("borrowed key not marked const")
	}
}

func TestAddHelpers(t *testing.T) {
	obj := NewObject()
	defer Delete(obj)
	AddNull(obj, "n")
	AddTrue(obj, "t")
	AddFalse(obj, "f")
	AddBool(obj, "b", true)
	AddNumber(obj, "num", 2.5)
	AddString(obj, "s", "v")
	AddRaw(obj, "r", `[1,2]`)
	inner := AddObject(obj, "o")
	AddArray(obj, "a")

	if n := Len(obj); n != 9 {
		t.Fatalf("len %d", n)
	}
	for key, typ := range map[string]Type{
		"n": NullType, "t": TrueType, "f": FalseType, "b": TrueType,
		"num": NumberType, "s": StringType, "r": RawType,
		"o": ObjectType, "a": ArrayType,
	} {
		m := GetExact(obj, key)
		if m == nil || m.Type != typ {
			t.Errorf("%s: %+v", key, m)
		}
	}
	if inner == nil || !IsObject(inner) {
		t.Errorf("AddObject: %+v", inner)
	}
}

func TestPredicates(t *testing.T) {
	if !IsInvalid(nil) || !IsInvalid(&Node{}) {
		t.Error("IsInvalid")
	}
	if IsNull(nil) || !IsNull(Null()) {
		t.Error("IsNull")
	}
	if !IsBool(True()) || !IsBool(False()) || IsBool(Null()) {
		t.Error("IsBool")
	}
	if !IsNumber(FromFloat(0)) || !IsString(FromString("")) {
		t.Error("leaf predicates")
	}
	if !IsArray(NewArray()) || !IsObject(NewObject()) || !IsRaw(FromRaw("1")) {
		t.Error("container predicates")
	}
}

func TestClone(t *testing.T) {
	obj := NewObject()
	defer Delete(obj)
	AddNumber(obj, "a", 1)
	arr := AddArray(obj, "b")
	Append(arr, True())
	Append(arr, FromString("x"))

	dup := obj.Clone()
	if dup == nil {
		t.Fatal("nil clone")
	}
	defer Delete(dup)

	// mutating the clone leaves the original alone
	GetExact(dup, "a").SetNumber(99)
	Item(GetExact(dup, "b"), 1).Str = "changed"
	if GetExact(obj, "a").Float != 1 {
		t.Error("original number mutated through clone")
	}
	if Item(GetExact(obj, "b"), 1).Str != "x" {
		t.Error("original string mutated through clone")
	}
	if dup.Child == obj.Child {
		t.Error("clone shares child chain")
	}
}

func TestCloneNil(t *testing.T) {
	var n *Node
	if n.Clone() != nil {
		t.Error("nil clone not nil")
	}
}

func TestEqualTypesOnly(t *testing.T) {
	if !Equal(FromInt(1), FromInt(2)) {
		t.Error("same-type numbers unequal")
	}
	if Equal(FromInt(1), FromString("1")) {
		t.Error("number equals string")
	}
	if Equal(nil, Null()) || Equal(Null(), nil) || Equal(nil, nil) {
		t.Error("absent operand compared equal")
	}
	if !Equal(True(), True()) || Equal(True(), False()) {
		t.Error("bool comparison")
	}
}

func TestDeleteWithCountingHooks(t *testing.T) {
	alive := 0
	h := &Hooks{
		NewNode: func() *Node {
			alive++
			return &Node{}
		},
		FreeNode: func(*Node) {
			alive--
		},
	}
	InitHooks(h)
	defer InitHooks(nil)

	obj := NewObject()
	AddNumber(obj, "a", 1)
	arr := AddArray(obj, "b")
	Append(arr, True())
	Append(arr, Null())
	if alive != 5 {
		t.Fatalf("alive %d, want 5", alive)
	}
	Delete(obj)
	if alive != 0 {
		t.Fatalf("alive %d after delete", alive)
	}
}

func TestDeleteSkipsReferencedChildren(t *testing.T) {
	alive := 0
	h := &Hooks{
		NewNode: func() *Node {
			alive++
			return &Node{}
		},
		FreeNode: func(*Node) {
			alive--
		},
	}
	InitHooks(h)
	defer InitHooks(nil)

	shared := NewArray()
	Append(shared, FromInt(1))

	ref := newNode()
	ref.Type = ArrayType
	ref.Reference = true
	ref.Child = shared.Child

	before := alive
	Delete(ref)
	if alive != before-1 {
		t.Fatalf("reference delete freed %d nodes, want 1", before-alive)
	}
	Delete(shared)
	if alive != 0 {
		t.Fatalf("alive %d after shared delete", alive)
	}
}

func TestInitHooksPartial(t *testing.T) {
	calls := 0
	InitHooks(&Hooks{
		NewNode: func() *Node {
			calls++
			return &Node{}
		},
	})
	defer InitHooks(nil)

	n := Null()
	if calls != 1 {
		t.Fatalf("custom NewNode not used")
	}
	// FreeNode was not supplied; the default fills in
	Delete(n)
}

func TestGrowBufferDefault(t *testing.T) {
	h := (&Hooks{}).Resolve()
	buf := append(h.GrowBuffer(nil, 4), 'a', 'b', 'c', 'd')
	grown := h.GrowBuffer(buf, 100)
	if cap(grown) < 100 {
		t.Fatalf("cap %d", cap(grown))
	}
	if string(grown[:4]) != "abcd" {
		t.Fatalf("contents lost: %q", grown[:4])
	}
}

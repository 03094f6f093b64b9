package value

import (
	"math"
	"math/big"
	"testing"
)

func TestKindNames(t *testing.T) {
	tests := []struct {
		val  Value
		want string
	}{
		{Null(), "Null"},
		{FromInt(1), "Int"},
		{FromFloat(1.5), "Float"},
		{True(), "Bool"},
		{FromString("x"), "String"},
		{FromIntList(1), "IntList"},
		{FromFloatList(1), "FloatList"},
		{FromBoolList(true), "BoolList"},
		{FromStringList("a"), "StringList"},
		{FromStruct(nil), "Struct"},
		{FromList(), "ListAny"},
		{FromRange(1, 5, true), "Range"},
	}
	for _, tt := range tests {
		if got := tt.val.Kind().String(); got != tt.want {
			t.Errorf("%#v.Kind() = %q, want %q", tt.val, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"Int", "int", "STRINGLIST", "ListAny", "any"} {
		if _, ok := ParseKind(name); !ok {
			t.Errorf("ParseKind(%q) failed", name)
		}
	}
	if k, _ := ParseKind("floatlist"); k != KindFloatList {
		t.Errorf("ParseKind(floatlist) = %v, want FloatList", k)
	}
	if _, ok := ParseKind("Dict"); ok {
		t.Error("ParseKind(Dict) should fail")
	}
}

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	if !v.IsNull() {
		t.Errorf("zero Value kind = %v, want Null", v.Kind())
	}
	if v.String() != "inanis" {
		t.Errorf("zero Value String() = %q, want inanis", v.String())
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		val  Value
		want string
	}{
		{FromInt(-7), "-7"},
		{FromFloat(42.4242), "42.4242"},
		{FromFloat(2.0), "2"},
		{FromFloat(math.NaN()), "NaN"},
		{FromFloat(math.Inf(-1)), "-inf"},
		{True(), "true"},
		{FromString("hi"), "hi"},
		{FromIntList(1, 2, 3), "1\n2\n3"},
		{FromStringList("a", "b"), "a\nb"},
		{FromList(FromInt(1), FromString("x")), "1\n\nx"},
		{FromStruct(map[string]Value{"b": FromInt(2), "a": FromString("x")}), "{ a: x, b: 2 }"},
		{FromStruct(nil), "{}"},
		{FromRange(1, 5, true), "1..5"},
		{FromRange(1, 5, false), "1.<5"},
		{Null(), "inanis"},
	}
	for _, tt := range tests {
		if got := tt.val.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.val, got, tt.want)
		}
	}
}

func TestValueRepr(t *testing.T) {
	tests := []struct {
		val  Value
		want string
	}{
		{FromString("a\"b"), `"a\"b"`},
		{FromFloat(3), "3.0"},
		{FromFloatList(1, 2.5), "[1.0, 2.5]"},
		{FromStringList("x"), `["x"]`},
		{FromList(FromInt(1), FromString("a")), `any[1, "a"]`},
		{FromStruct(map[string]Value{"k": FromBoolList(true)}), `{"k": [true]}`},
	}
	for _, tt := range tests {
		if got := tt.val.Repr(); got != tt.want {
			t.Errorf("Repr() = %q, want %q", got, tt.want)
		}
	}
}

func TestValueEquality(t *testing.T) {
	// Equal structure
	if !FromIntList(1, 2).Equal(FromIntList(1, 2)) {
		t.Error("[1, 2] should equal [1, 2]")
	}
	a := FromStruct(map[string]Value{"x": FromList(FromInt(1), Null())})
	b := FromStruct(map[string]Value{"x": FromList(FromInt(1), Null())})
	if !a.Equal(b) {
		t.Error("nested structs should be equal")
	}

	// Kind sensitive
	pairs := [][2]Value{
		{FromInt(5), FromFloat(5)},
		{FromInt(1), True()},
		{FromIntList(1), FromList(FromInt(1))},
		{FromString(""), Null()},
	}
	for _, p := range pairs {
		if p[0].Equal(p[1]) {
			t.Errorf("%#v should not equal %#v", p[0], p[1])
		}
	}

	if FromIntList(1, 2).Equal(FromIntList(2, 1)) {
		t.Error("list order matters")
	}
	if !FromRange(1, 3, true).Equal(FromRange(1, 3, true)) || FromRange(1, 3, true).Equal(FromRange(1, 3, false)) {
		t.Error("range equality is by bounds and inclusivity")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := FromList(FromIntList(1, 2), FromStruct(map[string]Value{"k": FromInt(1)}))
	cp := orig.Clone()

	inner := cp.data.(listAny)
	if err := inner[0].SetItem(FromInt(0), FromInt(99)); err != nil {
		t.Fatalf("SetItem: %v", err)
	}
	if err := inner[1].SetItem(FromString("k"), FromInt(2)); err != nil {
		t.Fatalf("SetItem: %v", err)
	}

	want := FromList(FromIntList(1, 2), FromStruct(map[string]Value{"k": FromInt(1)}))
	if !orig.Equal(want) {
		t.Errorf("original changed after mutating the clone: %s", orig.Repr())
	}
}

func TestFromBigIntCopies(t *testing.T) {
	n := big.NewInt(10)
	v := FromBigInt(n)
	n.SetInt64(20)
	if got, _ := v.AsInt(); got != 10 {
		t.Errorf("FromBigInt shares its argument: got %d", got)
	}

	huge, _ := new(big.Int).SetString("100000000000000000000", 10)
	v = FromBigInt(huge)
	if _, ok := v.AsInt(); ok {
		t.Error("AsInt should fail for values beyond int64")
	}
	if got, ok := v.AsBigInt(); !ok || got.Cmp(huge) != 0 {
		t.Errorf("AsBigInt() = %v, want %v", got, huge)
	}
}

func TestValueLen(t *testing.T) {
	tests := []struct {
		val  Value
		want int
		ok   bool
	}{
		{FromString("héllo"), 5, true},
		{FromIntList(1, 2, 3), 3, true},
		{FromList(), 0, true},
		{FromStruct(map[string]Value{"a": Null()}), 1, true},
		{FromRange(1, 5, true), 5, true},
		{FromRange(1, 5, false), 4, true},
		{FromRange(5, 1, true), 0, true},
		{FromInt(3), 0, false},
		{Null(), 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.val.Len()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%#v.Len() = (%d, %v), want (%d, %v)", tt.val, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRangeCountAtBounds(t *testing.T) {
	r := Range{Start: math.MinInt64, End: math.MaxInt64, Inclusive: false}
	if got := r.Count(); got != math.MaxUint64 {
		t.Errorf("Count() = %d, want %d", got, uint64(math.MaxUint64))
	}

	full := Range{Start: math.MinInt64, End: math.MaxInt64, Inclusive: true}
	if got := full.Count(); got != math.MaxUint64 {
		t.Errorf("inclusive Count() = %d, want %d", got, uint64(math.MaxUint64))
	}
	if n, _ := FromRange(full.Start, full.End, true).Len(); n != math.MaxInt {
		t.Errorf("Len() = %d, want %d", n, math.MaxInt)
	}
}

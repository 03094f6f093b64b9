package value

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFromYAML(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Value
	}{
		{"int", "42", FromInt(42)},
		{"hex int", "0x10", FromInt(16)},
		{"float", "2.5", FromFloat(2.5)},
		{"bool", "true", True()},
		{"null", "~", Null()},
		{"empty document", "", Null()},
		{"string", "hello", FromString("hello")},
		{"quoted number", `"12"`, FromString("12")},
		{"int list", "[1, 2]", FromIntList(1, 2)},
		{"string list", "- a\n- b\n", FromStringList("a", "b")},
		{"mixed list", "[1, x]", FromList(FromInt(1), FromString("x"))},
		{"empty list", "[]", FromList()},
		{"tagged list", "!FloatList [1, 2]", FromFloatList(1, 2)},
		{"tagged list any", "!ListAny [1, 2]", FromList(FromInt(1), FromInt(2))},
		{"mapping", "a: 1\nb: [true]\n", FromStruct(map[string]Value{"a": FromInt(1), "b": FromBoolList(true)})},
		{"range", "!Range 1..5", FromRange(1, 5, true)},
		{"exclusive range", "!Range -2.<3", FromRange(-2, 3, false)},
		{"tagged scalar", "!String 12", FromString("12")},
		{"big int", "!!int 170141183460469231731687303715884105727", FromFloat(math.Ldexp(1, 127)).MustCast(KindInt)},
		{"alias", "a: &x [1]\nb: *x\n", FromStruct(map[string]Value{"a": FromIntList(1), "b": FromIntList(1)})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromYAML([]byte(tt.src))
			if err != nil {
				t.Fatalf("FromYAML(%q) failed: %v", tt.src, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("FromYAML(%q) = %#v, want %#v", tt.src, got, tt.want)
			}
		})
	}
}

func TestFromYAMLNaN(t *testing.T) {
	got, err := FromYAML([]byte(".nan"))
	if err != nil {
		t.Fatal(err)
	}
	if f, ok := got.AsFloat(); !ok || !math.IsNaN(f) {
		t.Errorf("FromYAML(.nan) = %#v", got)
	}
}

func TestFromYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind ErrorKind
	}{
		{"unknown tag", "!Dict 1", ErrCastParseFailure},
		{"bad range", "!Range 1-5", ErrCastParseFailure},
		{"bad tagged list", "!IntList [a]", ErrCastParseFailure},
		{"non scalar key", "? [1]\n: x\n", ErrKeyTypeMismatch},
		{"list tag on mapping", "!IntList {a: 1}", ErrCastParseFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromYAML([]byte(tt.src))
			if !errors.Is(err, tt.kind) {
				t.Errorf("FromYAML(%q) error = %v, want %v", tt.src, err, tt.kind)
			}
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	values := []Value{
		FromInt(-5),
		FromFloat(1),
		FromFloat(math.Inf(-1)),
		FromString("true"),
		FromString("multi\nline"),
		FromIntList(),
		FromFloatList(1, 2),
		FromBoolList(true),
		FromStringList("1", "2"),
		FromList(FromInt(1), FromInt(2)),
		FromList(FromInt(1), FromString("a"), Null()),
		FromStruct(map[string]Value{"r": FromRange(0, 3, false), "n": Null()}),
		FromRange(-1, 1, true),
		Null(),
	}
	for _, v := range values {
		data, err := ToYAML(v)
		if err != nil {
			t.Fatalf("ToYAML(%#v) failed: %v", v, err)
		}
		back, err := FromYAML(data)
		if err != nil {
			t.Fatalf("FromYAML(%q) failed: %v", data, err)
		}
		if !back.Equal(v) {
			t.Errorf("round trip of %#v through %q gave %#v", v, data, back)
		}
	}
}

func TestToYAMLSortsKeys(t *testing.T) {
	data, err := ToYAML(FromStruct(map[string]Value{"b": FromInt(1), "a": FromInt(2)}))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "a: 2\nb: 1\n" {
		t.Errorf("ToYAML() = %q", got)
	}
}

func TestValueInsideGoStruct(t *testing.T) {
	var doc struct {
		Name  string `yaml:"name"`
		Value Value  `yaml:"value"`
	}
	src := "name: sample\nvalue: [1.5, 2.5]\n"
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Name != "sample" || !doc.Value.Equal(FromFloatList(1.5, 2.5)) {
		t.Errorf("decoded %q, %#v", doc.Name, doc.Value)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "value:") {
		t.Errorf("Marshal() = %q", out)
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		src  string
		want Range
	}{
		{"1..5", Range{1, 5, true}},
		{"1.<5", Range{1, 5, false}},
		{" -3 .. -1 ", Range{-3, -1, true}},
	}
	for _, tt := range tests {
		got, err := ParseRange(tt.src)
		if err != nil {
			t.Errorf("ParseRange(%q) failed: %v", tt.src, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRange(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
	for _, src := range []string{"", "1", "a..b", "1...5"} {
		if _, err := ParseRange(src); err == nil {
			t.Errorf("ParseRange(%q) should fail", src)
		}
	}
}

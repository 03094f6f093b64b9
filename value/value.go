// Package value provides the dynamic value type of the Ago runtime.
//
// Every variable, parameter and return value of a transpiled Ago program is
// represented by a Value. A Value is a closed tagged union over twelve
// kinds: four primitives (Int, Float, Bool, String), four homogeneous typed
// lists (IntList, FloatList, BoolList, StringList), a string-keyed Struct,
// a heterogeneous ListAny, an integer Range and Null.
//
// # Core Concepts
//
// Values are created with constructor functions and inspected with Kind and
// the As* accessors:
//
//	nums := value.FromIntList(10, 20, 30)
//	if nums.Kind() == value.KindIntList {
//	    n, _ := nums.Len()
//	    fmt.Println("length:", n)
//	}
//
// Conversions between kinds go through the casting matrix (see Cast),
// containers are read and mutated with GetItem, SetItem, InsertItem and
// RemoveItem, and operators are methods such as Add, Lt or Contains.
// Every fallible operation returns an *Error whose Kind names the failure.
//
// # Equality
//
// Equality is structural and kind-sensitive. FromInt(5), FromFloat(5) and
// FromBool(true) are three different values.
package value

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant of the union a Value holds.
//
// KindAny is never reported by Value.Kind. It only exists as a cast target
// meaning "keep the value as it is".
type Kind int

const (
	// KindNull is the absent value, rendered as "inanis".
	KindNull Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindIntList
	KindFloatList
	KindBoolList
	KindStringList
	KindStruct
	KindListAny
	KindRange
	// KindAny is the dynamic cast target.
	KindAny
)

var kindNames = [...]string{
	KindNull:       "Null",
	KindInt:        "Int",
	KindFloat:      "Float",
	KindBool:       "Bool",
	KindString:     "String",
	KindIntList:    "IntList",
	KindFloatList:  "FloatList",
	KindBoolList:   "BoolList",
	KindStringList: "StringList",
	KindStruct:     "Struct",
	KindListAny:    "ListAny",
	KindRange:      "Range",
	KindAny:        "Any",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// ParseKind looks up a kind by its name. Matching ignores case.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), true
		}
	}
	return KindNull, false
}

// IsList reports whether k is one of the typed list kinds or ListAny.
func (k Kind) IsList() bool {
	switch k {
	case KindIntList, KindFloatList, KindBoolList, KindStringList, KindListAny:
		return true
	}
	return false
}

// ElemKind returns the element kind of a typed list kind.
func (k Kind) ElemKind() (Kind, bool) {
	switch k {
	case KindIntList:
		return KindInt, true
	case KindFloatList:
		return KindFloat, true
	case KindBoolList:
		return KindBool, true
	case KindStringList:
		return KindString, true
	}
	return KindNull, false
}

// Range is an integer interval. Start and End may be in any order; a
// range whose end lies before its start is simply empty.
type Range struct {
	Start     int64
	End       int64
	Inclusive bool
}

// IsEmpty reports whether the range yields no integers.
func (r Range) IsEmpty() bool {
	if r.Inclusive {
		return r.Start > r.End
	}
	return r.Start >= r.End
}

// Count returns the number of integers in the range, saturating at
// math.MaxUint64.
func (r Range) Count() uint64 {
	if r.IsEmpty() {
		return 0
	}
	n := uint64(r.End) - uint64(r.Start)
	if r.Inclusive && n < math.MaxUint64 {
		n++
	}
	return n
}

func (r Range) String() string {
	op := ".<"
	if r.Inclusive {
		op = ".."
	}
	return strconv.FormatInt(r.Start, 10) + op + strconv.FormatInt(r.End, 10)
}

// Value represents a dynamically typed Ago value.
//
// The zero Value is Null. Sequences and structs are referenced, so a
// Value copied by assignment shares its backing storage with the
// original; use Clone for an independent copy. Int payloads are never
// mutated once stored.
type Value struct {
	data any
}

type nullType struct{}

type (
	intList    []*big.Int
	floatList  []float64
	boolList   []bool
	stringList []string
	structMap  map[string]Value
	listAny    []Value
)

// Null returns the null value.
func Null() Value {
	return Value{data: nullType{}}
}

// True returns the boolean true value.
func True() Value {
	return Value{data: true}
}

// False returns the boolean false value.
func False() Value {
	return Value{data: false}
}

// FromBool creates a Value from a boolean.
func FromBool(v bool) Value {
	return Value{data: v}
}

// FromInt creates an Int from an int64.
func FromInt(v int64) Value {
	return Value{data: big.NewInt(v)}
}

// FromBigInt creates an Int from a big.Int. The argument is copied.
func FromBigInt(v *big.Int) Value {
	if v == nil {
		return FromInt(0)
	}
	return Value{data: new(big.Int).Set(v)}
}

// FromFloat creates a Float.
func FromFloat(v float64) Value {
	return Value{data: v}
}

// FromString creates a String.
func FromString(v string) Value {
	return Value{data: v}
}

// FromIntList creates an IntList.
func FromIntList(v ...int64) Value {
	items := make(intList, len(v))
	for i, n := range v {
		items[i] = big.NewInt(n)
	}
	return Value{data: items}
}

// FromBigIntList creates an IntList from big integers. Each element is
// copied.
func FromBigIntList(v []*big.Int) Value {
	items := make(intList, len(v))
	for i, n := range v {
		if n == nil {
			items[i] = new(big.Int)
			continue
		}
		items[i] = new(big.Int).Set(n)
	}
	return Value{data: items}
}

// FromFloatList creates a FloatList. The slice is not copied.
func FromFloatList(v ...float64) Value {
	return Value{data: floatList(v)}
}

// FromBoolList creates a BoolList. The slice is not copied.
func FromBoolList(v ...bool) Value {
	return Value{data: boolList(v)}
}

// FromStringList creates a StringList. The slice is not copied.
func FromStringList(v ...string) Value {
	return Value{data: stringList(v)}
}

// FromList creates a ListAny holding heterogeneous values. The slice is
// not copied.
func FromList(v ...Value) Value {
	return Value{data: listAny(v)}
}

// FromStruct creates a Struct. The map is not copied; a nil map becomes
// an empty struct.
func FromStruct(v map[string]Value) Value {
	if v == nil {
		v = make(map[string]Value)
	}
	return Value{data: structMap(v)}
}

// FromRange creates a Range.
func FromRange(start, end int64, inclusive bool) Value {
	return Value{data: Range{Start: start, End: end, Inclusive: inclusive}}
}

// Kind returns the kind of value.
func (v Value) Kind() Kind {
	switch v.data.(type) {
	case *big.Int:
		return KindInt
	case float64:
		return KindFloat
	case bool:
		return KindBool
	case string:
		return KindString
	case intList:
		return KindIntList
	case floatList:
		return KindFloatList
	case boolList:
		return KindBoolList
	case stringList:
		return KindStringList
	case structMap:
		return KindStruct
	case listAny:
		return KindListAny
	case Range:
		return KindRange
	default:
		return KindNull
	}
}

// IsNull returns true if the value is null.
func (v Value) IsNull() bool {
	return v.Kind() == KindNull
}

// AsInt returns the integer if the value is an Int that fits in an int64.
func (v Value) AsInt() (int64, bool) {
	if d, ok := v.data.(*big.Int); ok && d.IsInt64() {
		return d.Int64(), true
	}
	return 0, false
}

// AsBigInt returns a copy of the integer if the value is an Int.
func (v Value) AsBigInt() (*big.Int, bool) {
	if d, ok := v.data.(*big.Int); ok {
		return new(big.Int).Set(d), true
	}
	return nil, false
}

// AsFloat returns the float if the value is a Float.
func (v Value) AsFloat() (float64, bool) {
	d, ok := v.data.(float64)
	return d, ok
}

// AsBool returns the boolean if the value is a Bool.
func (v Value) AsBool() (bool, bool) {
	d, ok := v.data.(bool)
	return d, ok
}

// AsString returns the string if the value is a String.
func (v Value) AsString() (string, bool) {
	d, ok := v.data.(string)
	return d, ok
}

// AsIntList returns the elements of an IntList. The returned slice shares
// storage with the value.
func (v Value) AsIntList() ([]*big.Int, bool) {
	d, ok := v.data.(intList)
	return d, ok
}

// AsFloatList returns the elements of a FloatList.
func (v Value) AsFloatList() ([]float64, bool) {
	d, ok := v.data.(floatList)
	return d, ok
}

// AsBoolList returns the elements of a BoolList.
func (v Value) AsBoolList() ([]bool, bool) {
	d, ok := v.data.(boolList)
	return d, ok
}

// AsStringList returns the elements of a StringList.
func (v Value) AsStringList() ([]string, bool) {
	d, ok := v.data.(stringList)
	return d, ok
}

// AsList returns the elements of a ListAny.
func (v Value) AsList() ([]Value, bool) {
	d, ok := v.data.(listAny)
	return d, ok
}

// AsStruct returns the fields of a Struct.
func (v Value) AsStruct() (map[string]Value, bool) {
	d, ok := v.data.(structMap)
	return d, ok
}

// AsRange returns the range if the value is a Range.
func (v Value) AsRange() (Range, bool) {
	d, ok := v.data.(Range)
	return d, ok
}

// Len returns the length of the value if it has one. Strings count
// characters, not bytes.
func (v Value) Len() (int, bool) {
	switch d := v.data.(type) {
	case string:
		return len([]rune(d)), true
	case intList:
		return len(d), true
	case floatList:
		return len(d), true
	case boolList:
		return len(d), true
	case stringList:
		return len(d), true
	case listAny:
		return len(d), true
	case structMap:
		return len(d), true
	case Range:
		n := d.Count()
		if n > math.MaxInt {
			return math.MaxInt, true
		}
		return int(n), true
	default:
		return 0, false
	}
}

// Equal returns true if two values are structurally equal. Values of
// different kinds are never equal.
func (v Value) Equal(other Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch a := v.data.(type) {
	case *big.Int:
		return a.Cmp(other.data.(*big.Int)) == 0
	case float64:
		return a == other.data.(float64)
	case bool:
		return a == other.data.(bool)
	case string:
		return a == other.data.(string)
	case intList:
		b := other.data.(intList)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i].Cmp(b[i]) != 0 {
				return false
			}
		}
		return true
	case floatList:
		return sliceEqual(a, other.data.(floatList))
	case boolList:
		return sliceEqual(a, other.data.(boolList))
	case stringList:
		return sliceEqual(a, other.data.(stringList))
	case listAny:
		b := other.data.(listAny)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case structMap:
		b := other.data.(structMap)
		if len(a) != len(b) {
			return false
		}
		for k, val := range a {
			if o, ok := b[k]; !ok || !val.Equal(o) {
				return false
			}
		}
		return true
	case Range:
		return a == other.data.(Range)
	default:
		return true
	}
}

func sliceEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the value. The copy shares no mutable
// storage with the original.
func (v Value) Clone() Value {
	switch d := v.data.(type) {
	case intList:
		return Value{data: append(intList(nil), d...)}
	case floatList:
		return Value{data: append(floatList(nil), d...)}
	case boolList:
		return Value{data: append(boolList(nil), d...)}
	case stringList:
		return Value{data: append(stringList(nil), d...)}
	case listAny:
		items := make(listAny, len(d))
		for i, item := range d {
			items[i] = item.Clone()
		}
		return Value{data: items}
	case structMap:
		m := make(structMap, len(d))
		for k, item := range d {
			m[k] = item.Clone()
		}
		return Value{data: m}
	case nil:
		return Null()
	default:
		return v
	}
}

// String returns the canonical textual form of the value, the same text
// a cast to String produces.
func (v Value) String() string {
	switch d := v.data.(type) {
	case *big.Int:
		return d.String()
	case float64:
		return formatFloat(d)
	case bool:
		return strconv.FormatBool(d)
	case string:
		return d
	case intList:
		parts := make([]string, len(d))
		for i, n := range d {
			parts[i] = n.String()
		}
		return strings.Join(parts, "\n")
	case floatList:
		parts := make([]string, len(d))
		for i, f := range d {
			parts[i] = formatFloat(f)
		}
		return strings.Join(parts, "\n")
	case boolList:
		parts := make([]string, len(d))
		for i, b := range d {
			parts[i] = strconv.FormatBool(b)
		}
		return strings.Join(parts, "\n")
	case stringList:
		return strings.Join(d, "\n")
	case listAny:
		parts := make([]string, len(d))
		for i, item := range d {
			parts[i] = item.String()
		}
		return strings.Join(parts, "\n\n")
	case structMap:
		if len(d) == 0 {
			return "{}"
		}
		keys := sortedKeys(d)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + d[k].String()
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	case Range:
		return d.String()
	default:
		return nullLiteral
	}
}

// nullLiteral is the textual form of Null ("inanis", Latin for empty).
const nullLiteral = "inanis"

// Repr returns a debug representation of the value. Unlike String it
// quotes strings and keeps list structure visible.
func (v Value) Repr() string {
	switch d := v.data.(type) {
	case string:
		return strconv.Quote(d)
	case intList:
		parts := make([]string, len(d))
		for i, n := range d {
			parts[i] = n.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case floatList:
		parts := make([]string, len(d))
		for i, f := range d {
			parts[i] = reprFloat(f)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case boolList:
		parts := make([]string, len(d))
		for i, b := range d {
			parts[i] = strconv.FormatBool(b)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case stringList:
		parts := make([]string, len(d))
		for i, s := range d {
			parts[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case listAny:
		parts := make([]string, len(d))
		for i, item := range d {
			parts[i] = item.Repr()
		}
		return "any[" + strings.Join(parts, ", ") + "]"
	case structMap:
		keys := sortedKeys(d)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%q: %s", k, d[k].Repr())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case float64:
		return reprFloat(d)
	default:
		return v.String()
	}
}

// GoString implements fmt.GoStringer so %#v shows the debug form.
func (v Value) GoString() string {
	return v.Kind().String() + "(" + v.Repr() + ")"
}

func sortedKeys(m structMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// reprFloat keeps a decimal point on whole numbers so 2.0 and 2 read
// differently in debug output.
func reprFloat(f float64) string {
	s := formatFloat(f)
	if f == math.Trunc(f) && !math.IsInf(f, 0) && !strings.ContainsAny(s, ".e") {
		return s + ".0"
	}
	return s
}

package value

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var (
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// Cast converts the value to the target kind.
//
// Casting to the value's own kind or to KindAny returns a deep copy. The
// remaining conversions follow the casting matrix:
//
//   - Int, Float and Bool convert among each other (Float to Int truncates
//     toward zero, true is 1 and 1.0, nonzero numbers are true).
//   - Every kind renders to String; String parses to Int and Float, is
//     true when non-empty and explodes into a StringList of characters.
//   - Lists cast to Int as their length, to Bool as non-emptiness, to
//     String by joining their elements, to Range as their index range,
//     and element-wise to any other list kind.
//   - ListAny casts to Struct, Struct to Bool, String and StringList
//     (its keys), Range to String, Bool and IntList.
//   - Null casts to false, "inanis", 0 and 0.0.
//
// Anything else fails with ErrUnsupportedCast. A String that does not
// parse as the requested number fails with ErrCastParseFailure; Float
// parsing takes decimal notation only (no 0x prefix or _ separators). A
// Range with more than 1<<24 elements fails to become an IntList with
// ErrIntOutOfRange.
func (v Value) Cast(target Kind) (Value, error) {
	if target == KindAny || target == v.Kind() {
		return v.Clone(), nil
	}
	var (
		res Value
		ok  bool
		err error
	)
	switch d := v.data.(type) {
	case *big.Int:
		res, ok = castInt(d, target)
	case float64:
		res, ok = castFloat(d, target)
	case bool:
		res, ok = castBool(d, target)
	case string:
		res, ok, err = castString(d, target)
	case intList, floatList, boolList, stringList, listAny:
		res, ok, err = castList(v, target)
	case structMap:
		res, ok = castStruct(d, target)
	case Range:
		res, ok, err = castRange(d, target)
	default:
		res, ok = castNull(target)
	}
	if err != nil {
		return Null(), err
	}
	if !ok {
		return Null(), Errorf(ErrUnsupportedCast, "cannot cast %s to %s", v.Kind(), target)
	}
	return res, nil
}

// MustCast is like Cast but panics on failure. It is meant for tests and
// for call sites where the conversion is statically known to succeed.
func (v Value) MustCast(target Kind) Value {
	res, err := v.Cast(target)
	if err != nil {
		panic(err)
	}
	return res
}

func castInt(n *big.Int, target Kind) (Value, bool) {
	switch target {
	case KindFloat:
		return Value{data: bigToFloat(n)}, true
	case KindBool:
		return Value{data: n.Sign() != 0}, true
	case KindString:
		return Value{data: n.String()}, true
	}
	return Value{}, false
}

func castFloat(f float64, target Kind) (Value, bool) {
	switch target {
	case KindInt:
		return Value{data: truncFloat(f)}, true
	case KindBool:
		return Value{data: f != 0}, true
	case KindString:
		return Value{data: formatFloat(f)}, true
	}
	return Value{}, false
}

func castBool(b bool, target Kind) (Value, bool) {
	switch target {
	case KindInt:
		if b {
			return FromInt(1), true
		}
		return FromInt(0), true
	case KindFloat:
		if b {
			return FromFloat(1), true
		}
		return FromFloat(0), true
	case KindString:
		return Value{data: strconv.FormatBool(b)}, true
	}
	return Value{}, false
}

func castString(s string, target Kind) (Value, bool, error) {
	switch target {
	case KindInt:
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return Value{}, true, Errorf(ErrCastParseFailure, "cannot cast string %q to Int", s)
		}
		return Value{data: n}, true, nil
	case KindFloat:
		if !isDecimalFloat(s) {
			return Value{}, true, Errorf(ErrCastParseFailure, "cannot cast string %q to Float", s)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Value{}, true, Errorf(ErrCastParseFailure, "cannot cast string %q to Float", s).WithCause(err)
		}
		return Value{data: f}, true, nil
	case KindBool:
		return Value{data: s != ""}, true, nil
	case KindStringList:
		runes := []rune(s)
		items := make(stringList, len(runes))
		for i, r := range runes {
			items[i] = string(r)
		}
		return Value{data: items}, true, nil
	}
	return Value{}, false, nil
}

// isDecimalFloat reports whether s avoids the Go-only float syntax that
// strconv accepts: base prefixes such as 0x and digit separators.
func isDecimalFloat(s string) bool {
	if strings.Contains(s, "_") {
		return false
	}
	t := strings.TrimLeft(s, "+-")
	return len(t) < 2 || t[0] != '0' || !strings.ContainsRune("xXbBoO", rune(t[1]))
}

func castList(v Value, target Kind) (Value, bool, error) {
	n, _ := v.Len()
	switch target {
	case KindInt:
		return FromInt(int64(n)), true, nil
	case KindBool:
		return Value{data: n > 0}, true, nil
	case KindString:
		return Value{data: v.String()}, true, nil
	case KindRange:
		return FromRange(0, int64(n)-1, true), true, nil
	case KindIntList, KindFloatList, KindBoolList, KindStringList:
		res, err := castElements(v.elements(), target)
		return res, true, err
	case KindListAny:
		return Value{data: listAny(v.elements())}, true, nil
	case KindStruct:
		items, ok := v.data.(listAny)
		if !ok {
			return Value{}, false, nil
		}
		return listToStruct(items), true, nil
	}
	return Value{}, false, nil
}

// castElements casts every item to the element kind of target and
// collects the results. The first failing element aborts the conversion.
func castElements(items []Value, target Kind) (Value, error) {
	elem, _ := target.ElemKind()
	out := make([]Value, len(items))
	for i, item := range items {
		c, err := item.Cast(elem)
		if err != nil {
			return Null(), elementError(i, err)
		}
		out[i] = c
	}
	return collect(target, out), nil
}

func elementError(i int, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return Errorf(e.Kind, "element %d: %s", i, e.Message).WithCause(err)
	}
	return err
}

// listToStruct turns a ListAny into a Struct. A list of strings maps each
// distinct string to the indices where it occurs; a list of pairs maps
// the first item (as text) to the second; anything else is keyed by
// position.
func listToStruct(items listAny) Value {
	m := make(structMap, len(items))
	if len(items) > 0 && allKind(items, KindString) {
		for i, item := range items {
			key := item.data.(string)
			idx, _ := m[key].data.(intList)
			m[key] = Value{data: append(idx, big.NewInt(int64(i)))}
		}
		return Value{data: m}
	}
	if len(items) > 0 && allPairs(items) {
		for _, item := range items {
			pair := item.elements()
			m[pair[0].String()] = pair[1].Clone()
		}
		return Value{data: m}
	}
	for i, item := range items {
		m[strconv.Itoa(i)] = item.Clone()
	}
	return Value{data: m}
}

func allKind(items []Value, k Kind) bool {
	for _, item := range items {
		if item.Kind() != k {
			return false
		}
	}
	return true
}

func allPairs(items []Value) bool {
	for _, item := range items {
		if !item.Kind().IsList() {
			return false
		}
		if n, _ := item.Len(); n != 2 {
			return false
		}
	}
	return true
}

func castStruct(m structMap, target Kind) (Value, bool) {
	switch target {
	case KindBool:
		return Value{data: len(m) > 0}, true
	case KindString:
		return Value{data: Value{data: m}.String()}, true
	case KindStringList:
		return Value{data: stringList(sortedKeys(m))}, true
	}
	return Value{}, false
}

// maxRangeList bounds how many elements a Range may expand to when cast
// to IntList.
const maxRangeList = 1 << 24

func castRange(r Range, target Kind) (Value, bool, error) {
	switch target {
	case KindString:
		return Value{data: r.String()}, true, nil
	case KindBool:
		return Value{data: !r.IsEmpty()}, true, nil
	case KindIntList:
		n := r.Count()
		if n > maxRangeList {
			return Value{}, true, Errorf(ErrIntOutOfRange, "range %s has %d elements, more than the %d an IntList can hold", r, n, maxRangeList)
		}
		items := make(intList, 0, n)
		for i := range rangeSeq(r) {
			items = append(items, big.NewInt(i))
		}
		return Value{data: items}, true, nil
	}
	return Value{}, false, nil
}

func castNull(target Kind) (Value, bool) {
	switch target {
	case KindBool:
		return False(), true
	case KindString:
		return FromString(nullLiteral), true
	case KindInt:
		return FromInt(0), true
	case KindFloat:
		return FromFloat(0), true
	}
	return Value{}, false
}

// elements returns the items of a list value wrapped as Values. For
// ListAny the backing slice is returned as is.
func (v Value) elements() []Value {
	switch d := v.data.(type) {
	case intList:
		out := make([]Value, len(d))
		for i, n := range d {
			out[i] = Value{data: n}
		}
		return out
	case floatList:
		out := make([]Value, len(d))
		for i, f := range d {
			out[i] = Value{data: f}
		}
		return out
	case boolList:
		out := make([]Value, len(d))
		for i, b := range d {
			out[i] = Value{data: b}
		}
		return out
	case stringList:
		out := make([]Value, len(d))
		for i, s := range d {
			out[i] = Value{data: s}
		}
		return out
	case listAny:
		return d
	}
	return nil
}

// collect builds a list of the given kind from items whose kinds already
// match its element kind.
func collect(kind Kind, items []Value) Value {
	switch kind {
	case KindIntList:
		out := make(intList, len(items))
		for i, item := range items {
			out[i] = item.data.(*big.Int)
		}
		return Value{data: out}
	case KindFloatList:
		out := make(floatList, len(items))
		for i, item := range items {
			out[i] = item.data.(float64)
		}
		return Value{data: out}
	case KindBoolList:
		out := make(boolList, len(items))
		for i, item := range items {
			out[i] = item.data.(bool)
		}
		return Value{data: out}
	case KindStringList:
		out := make(stringList, len(items))
		for i, item := range items {
			out[i] = item.data.(string)
		}
		return Value{data: out}
	default:
		return Value{data: listAny(items)}
	}
}

func bigToFloat(n *big.Int) float64 {
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

// truncFloat truncates toward zero and saturates at the 128-bit bounds.
// NaN becomes zero.
func truncFloat(f float64) *big.Int {
	switch {
	case math.IsNaN(f):
		return new(big.Int)
	case math.IsInf(f, 1):
		return new(big.Int).Set(maxInt128)
	case math.IsInf(f, -1):
		return new(big.Int).Set(minInt128)
	}
	n, _ := big.NewFloat(math.Trunc(f)).Int(nil)
	if n.Cmp(maxInt128) > 0 {
		return n.Set(maxInt128)
	}
	if n.Cmp(minInt128) < 0 {
		return n.Set(minInt128)
	}
	return n
}

package value

import (
	"math"
	"math/big"
	"slices"
)

// GetItem reads from a container.
//
// Lists and strings take an Int index or a Range. An index must lie within
// the current length; a Range is clamped to the bounds and yields a
// sub-list of the same kind (a sub-string for strings). Structs take a
// String key. The result never shares storage with the container.
func (v Value) GetItem(key Value) (Value, error) {
	switch d := v.data.(type) {
	case intList, floatList, boolList, stringList, listAny:
		if r, ok := key.AsRange(); ok {
			return v.sliceList(r), nil
		}
		n, _ := v.Len()
		idx, err := indexOf(key, n, false)
		if err != nil {
			return Null(), err
		}
		return v.itemAt(idx), nil
	case string:
		runes := []rune(d)
		if r, ok := key.AsRange(); ok {
			lo, hi := clampRange(r, len(runes))
			return FromString(string(runes[lo:hi])), nil
		}
		idx, err := indexOf(key, len(runes), false)
		if err != nil {
			return Null(), err
		}
		return FromString(string(runes[idx])), nil
	case structMap:
		name, ok := key.AsString()
		if !ok {
			return Null(), Errorf(ErrKeyTypeMismatch, "struct key must be a String, got %s", key.Kind())
		}
		val, ok := d[name]
		if !ok {
			return Null(), Errorf(ErrKeyNotFound, "key not found: %s", name)
		}
		return val.Clone(), nil
	default:
		return Null(), Errorf(ErrUnsupportedContainerOperation, "cannot get item of %s", v.Kind())
	}
}

// SetItem replaces an element, character or field in place.
//
// Typed lists only accept a replacement of their element kind; ListAny
// accepts anything. A String accepts exactly one character. Setting a
// missing struct key adds it.
func (v *Value) SetItem(key, val Value) error {
	switch d := v.data.(type) {
	case intList, floatList, boolList, stringList, listAny:
		n, _ := v.Len()
		idx, err := indexOf(key, n, false)
		if err != nil {
			return err
		}
		if err := v.checkElem(val); err != nil {
			return err
		}
		switch d := d.(type) {
		case intList:
			d[idx] = val.data.(*big.Int)
		case floatList:
			d[idx] = val.data.(float64)
		case boolList:
			d[idx] = val.data.(bool)
		case stringList:
			d[idx] = val.data.(string)
		case listAny:
			d[idx] = val.Clone()
		}
		return nil
	case string:
		if _, ok := key.data.(*big.Int); !ok {
			return Errorf(ErrKeyTypeMismatch, "string index must be an Int, got %s", key.Kind())
		}
		ch, ok := val.AsString()
		if !ok {
			return Errorf(ErrValueKindMismatch, "cannot set string character with value of type %s", val.Kind())
		}
		repl := []rune(ch)
		if len(repl) != 1 {
			return Errorf(ErrInvalidCharacterReplacement, "cannot set string with value %q that is not a single character", ch)
		}
		runes := []rune(d)
		idx, err := indexOf(key, len(runes), false)
		if err != nil {
			return err
		}
		runes[idx] = repl[0]
		v.data = string(runes)
		return nil
	case structMap:
		name, ok := key.AsString()
		if !ok {
			return Errorf(ErrKeyTypeMismatch, "struct key must be a String, got %s", key.Kind())
		}
		d[name] = val.Clone()
		return nil
	default:
		return Errorf(ErrUnsupportedContainerOperation, "cannot set item of %s", v.Kind())
	}
}

// InsertItem inserts into a list at the given index, shifting later
// elements right. An index equal to the length appends. For structs it
// behaves like SetItem.
func (v *Value) InsertItem(key, val Value) error {
	switch d := v.data.(type) {
	case intList, floatList, boolList, stringList, listAny:
		n, _ := v.Len()
		idx, err := indexOf(key, n, true)
		if err != nil {
			return err
		}
		if err := v.checkElem(val); err != nil {
			return err
		}
		switch d := d.(type) {
		case intList:
			v.data = slices.Insert(d, idx, val.data.(*big.Int))
		case floatList:
			v.data = slices.Insert(d, idx, val.data.(float64))
		case boolList:
			v.data = slices.Insert(d, idx, val.data.(bool))
		case stringList:
			v.data = slices.Insert(d, idx, val.data.(string))
		case listAny:
			v.data = slices.Insert(d, idx, val.Clone())
		}
		return nil
	case structMap:
		return v.SetItem(key, val)
	default:
		return Errorf(ErrUnsupportedContainerOperation, "cannot insert into %s", v.Kind())
	}
}

// RemoveItem removes an element or field in place and returns it. List
// elements after the index shift left.
func (v *Value) RemoveItem(key Value) (Value, error) {
	switch d := v.data.(type) {
	case intList, floatList, boolList, stringList, listAny:
		n, _ := v.Len()
		idx, err := indexOf(key, n, false)
		if err != nil {
			return Null(), err
		}
		removed := v.itemAt(idx)
		switch d := d.(type) {
		case intList:
			v.data = slices.Delete(d, idx, idx+1)
		case floatList:
			v.data = slices.Delete(d, idx, idx+1)
		case boolList:
			v.data = slices.Delete(d, idx, idx+1)
		case stringList:
			v.data = slices.Delete(d, idx, idx+1)
		case listAny:
			v.data = slices.Delete(d, idx, idx+1)
		}
		return removed, nil
	case structMap:
		name, ok := key.AsString()
		if !ok {
			return Null(), Errorf(ErrKeyTypeMismatch, "struct key must be a String, got %s", key.Kind())
		}
		val, ok := d[name]
		if !ok {
			return Null(), Errorf(ErrKeyNotFound, "key not found: %s", name)
		}
		delete(d, name)
		return val, nil
	default:
		return Null(), Errorf(ErrUnsupportedContainerOperation, "cannot remove from %s", v.Kind())
	}
}

// checkElem verifies that val may be stored in the list v.
func (v Value) checkElem(val Value) error {
	elem, typed := v.Kind().ElemKind()
	if typed && val.Kind() != elem {
		return Errorf(ErrValueKindMismatch, "cannot store %s in %s", val.Kind(), v.Kind())
	}
	return nil
}

// indexOf validates an Int index against length. With allowEnd the index
// may equal length (append position).
func indexOf(key Value, length int, allowEnd bool) (int, error) {
	n, ok := key.data.(*big.Int)
	if !ok {
		return 0, Errorf(ErrKeyTypeMismatch, "index must be an Int, got %s", key.Kind())
	}
	limit := int64(length)
	if allowEnd {
		limit++
	}
	if n.Sign() < 0 || !n.IsInt64() || n.Int64() >= limit {
		return 0, Errorf(ErrIndexOutOfBounds, "index out of bounds: %s (length %d)", n, length)
	}
	return int(n.Int64()), nil
}

// clampRange converts r into slice bounds within [0, length].
func clampRange(r Range, length int) (int, int) {
	end := r.End
	if r.Inclusive && end < math.MaxInt64 {
		end++
	}
	lo := clamp(r.Start, length)
	hi := clamp(end, length)
	if lo > hi {
		hi = lo
	}
	return lo, hi
}

func clamp(n int64, length int) int {
	if n < 0 {
		return 0
	}
	if n > int64(length) {
		return length
	}
	return int(n)
}

// itemAt returns element i of a list as an independent Value.
func (v Value) itemAt(i int) Value {
	switch d := v.data.(type) {
	case intList:
		return Value{data: d[i]}
	case floatList:
		return Value{data: d[i]}
	case boolList:
		return Value{data: d[i]}
	case stringList:
		return Value{data: d[i]}
	case listAny:
		return d[i].Clone()
	}
	return Null()
}

func (v Value) sliceList(r Range) Value {
	n, _ := v.Len()
	lo, hi := clampRange(r, n)
	switch d := v.data.(type) {
	case intList:
		return Value{data: slices.Clone(d[lo:hi])}
	case floatList:
		return Value{data: slices.Clone(d[lo:hi])}
	case boolList:
		return Value{data: slices.Clone(d[lo:hi])}
	case stringList:
		return Value{data: slices.Clone(d[lo:hi])}
	case listAny:
		return Value{data: listAny(d[lo:hi])}.Clone()
	}
	return Null()
}

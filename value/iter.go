package value

import (
	"iter"
	"math/big"
)

// Iterate returns a lazy sequence over the value's items.
//
// Typed lists yield their elements, ListAny its items, a String one
// single-character String per character and a Range its integers, which
// are produced on demand and never materialized. Any other kind yields an
// empty sequence.
//
// Each call produces a fresh sequence over the value as it is when
// iteration starts.
func (v Value) Iterate() iter.Seq[Value] {
	switch d := v.data.(type) {
	case intList:
		return eachOf(d, func(n *big.Int) Value { return Value{data: n} })
	case floatList:
		return eachOf(d, FromFloat)
	case boolList:
		return eachOf(d, FromBool)
	case stringList:
		return eachOf(d, FromString)
	case listAny:
		return eachOf(d, Value.Clone)
	case string:
		return func(yield func(Value) bool) {
			for _, r := range d {
				if !yield(FromString(string(r))) {
					return
				}
			}
		}
	case Range:
		return func(yield func(Value) bool) {
			for n := range rangeSeq(d) {
				if !yield(FromInt(n)) {
					return
				}
			}
		}
	default:
		return func(func(Value) bool) {}
	}
}

func eachOf[T any](items []T, wrap func(T) Value) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, item := range items {
			if !yield(wrap(item)) {
				return
			}
		}
	}
}

// rangeSeq yields the integers of r without overflowing at the int64
// bounds.
func rangeSeq(r Range) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if r.IsEmpty() {
			return
		}
		last := r.End
		if !r.Inclusive {
			last--
		}
		for n := r.Start; ; n++ {
			if !yield(n) || n == last {
				return
			}
		}
	}
}

// Iterator is a single-pass cursor over a value's items. Once an item has
// been taken it cannot be revisited; call Iterate again for a new pass.
type Iterator struct {
	next func() (Value, bool)
	stop func()
}

// NewIterator creates a pull iterator over v. Callers that do not drain
// the iterator must call Stop.
func NewIterator(v Value) *Iterator {
	next, stop := iter.Pull(v.Iterate())
	return &Iterator{next: next, stop: stop}
}

// Next returns the next item, or (Null, false) when exhausted.
func (it *Iterator) Next() (Value, bool) {
	val, ok := it.next()
	if !ok {
		return Null(), false
	}
	return val, true
}

// Stop releases the iterator. Next reports exhaustion afterwards.
func (it *Iterator) Stop() {
	it.stop()
}

// Collect drains the remaining items into a slice.
func (it *Iterator) Collect() []Value {
	var out []Value
	for {
		val, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, val)
	}
}

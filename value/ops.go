package value

import (
	"math"
	"math/big"
	"slices"
	"strings"
)

// numPair holds two numeric operands after promotion. When either side is
// a Float both are carried as floats.
type numPair struct {
	ix, iy  *big.Int
	fx, fy  float64
	isFloat bool
}

func numbers(a, b Value) (numPair, bool) {
	switch x := a.data.(type) {
	case *big.Int:
		switch y := b.data.(type) {
		case *big.Int:
			return numPair{ix: x, iy: y}, true
		case float64:
			return numPair{fx: bigToFloat(x), fy: y, isFloat: true}, true
		}
	case float64:
		switch y := b.data.(type) {
		case *big.Int:
			return numPair{fx: x, fy: bigToFloat(y), isFloat: true}, true
		case float64:
			return numPair{fx: x, fy: y, isFloat: true}, true
		}
	}
	return numPair{}, false
}

func operandError(verb string, a, b Value) error {
	return Errorf(ErrUnsupportedOperandKinds, "cannot %s %s and %s", verb, a.Kind(), b.Kind())
}

// Add performs numeric addition, string concatenation or concatenation of
// two lists of the same kind.
func (v Value) Add(other Value) (Value, error) {
	if p, ok := numbers(v, other); ok {
		if p.isFloat {
			return FromFloat(p.fx + p.fy), nil
		}
		return Value{data: new(big.Int).Add(p.ix, p.iy)}, nil
	}
	if v.Kind() != other.Kind() {
		return Null(), operandError("add", v, other)
	}
	switch a := v.data.(type) {
	case string:
		return FromString(a + other.data.(string)), nil
	case intList:
		return Value{data: slices.Concat(a, other.data.(intList))}, nil
	case floatList:
		return Value{data: slices.Concat(a, other.data.(floatList))}, nil
	case boolList:
		return Value{data: slices.Concat(a, other.data.(boolList))}, nil
	case stringList:
		return Value{data: slices.Concat(a, other.data.(stringList))}, nil
	case listAny:
		return Value{data: slices.Concat(a, other.data.(listAny))}.Clone(), nil
	}
	return Null(), operandError("add", v, other)
}

// Sub performs subtraction.
func (v Value) Sub(other Value) (Value, error) {
	p, ok := numbers(v, other)
	if !ok {
		return Null(), operandError("subtract", v, other)
	}
	if p.isFloat {
		return FromFloat(p.fx - p.fy), nil
	}
	return Value{data: new(big.Int).Sub(p.ix, p.iy)}, nil
}

// Mul performs multiplication.
func (v Value) Mul(other Value) (Value, error) {
	p, ok := numbers(v, other)
	if !ok {
		return Null(), operandError("multiply", v, other)
	}
	if p.isFloat {
		return FromFloat(p.fx * p.fy), nil
	}
	return Value{data: new(big.Int).Mul(p.ix, p.iy)}, nil
}

// Div performs division. Integer division truncates toward zero and fails
// on a zero divisor; float division follows IEEE-754.
func (v Value) Div(other Value) (Value, error) {
	p, ok := numbers(v, other)
	if !ok {
		return Null(), operandError("divide", v, other)
	}
	if p.isFloat {
		return FromFloat(p.fx / p.fy), nil
	}
	if p.iy.Sign() == 0 {
		return Null(), NewError(ErrDivisionByZero, "integer division by zero")
	}
	return Value{data: new(big.Int).Quo(p.ix, p.iy)}, nil
}

// Rem performs the modulo operation. The result takes the sign of the
// dividend.
func (v Value) Rem(other Value) (Value, error) {
	p, ok := numbers(v, other)
	if !ok {
		return Null(), operandError("modulo", v, other)
	}
	if p.isFloat {
		return FromFloat(math.Mod(p.fx, p.fy)), nil
	}
	if p.iy.Sign() == 0 {
		return Null(), NewError(ErrDivisionByZero, "integer modulo by zero")
	}
	return Value{data: new(big.Int).Rem(p.ix, p.iy)}, nil
}

// Compare orders two numbers or two strings. ordered is false when a NaN
// is involved.
func (v Value) Compare(other Value) (cmp int, ordered bool, err error) {
	if p, ok := numbers(v, other); ok {
		if !p.isFloat {
			return p.ix.Cmp(p.iy), true, nil
		}
		switch {
		case math.IsNaN(p.fx) || math.IsNaN(p.fy):
			return 0, false, nil
		case p.fx < p.fy:
			return -1, true, nil
		case p.fx > p.fy:
			return 1, true, nil
		}
		return 0, true, nil
	}
	if a, ok := v.AsString(); ok {
		if b, ok := other.AsString(); ok {
			return strings.Compare(a, b), true, nil
		}
	}
	return 0, false, operandError("compare", v, other)
}

func (v Value) compareWith(other Value, pred func(int) bool) (Value, error) {
	cmp, ordered, err := v.Compare(other)
	if err != nil {
		return Null(), err
	}
	return FromBool(ordered && pred(cmp)), nil
}

// Gt implements >.
func (v Value) Gt(other Value) (Value, error) {
	return v.compareWith(other, func(c int) bool { return c > 0 })
}

// Ge implements >=.
func (v Value) Ge(other Value) (Value, error) {
	return v.compareWith(other, func(c int) bool { return c >= 0 })
}

// Lt implements <.
func (v Value) Lt(other Value) (Value, error) {
	return v.compareWith(other, func(c int) bool { return c < 0 })
}

// Le implements <=.
func (v Value) Le(other Value) (Value, error) {
	return v.compareWith(other, func(c int) bool { return c <= 0 })
}

// Eq implements ==. It never fails.
func (v Value) Eq(other Value) Value {
	return FromBool(v.Equal(other))
}

// Ne implements !=.
func (v Value) Ne(other Value) Value {
	return FromBool(!v.Equal(other))
}

func bools(a, b Value) (bool, bool, bool) {
	x, ok1 := a.AsBool()
	y, ok2 := b.AsBool()
	return x, y, ok1 && ok2
}

// And implements the logical and over two Bools.
func (v Value) And(other Value) (Value, error) {
	x, y, ok := bools(v, other)
	if !ok {
		return Null(), operandError("apply 'and' to", v, other)
	}
	return FromBool(x && y), nil
}

// Or implements the logical or over two Bools.
func (v Value) Or(other Value) (Value, error) {
	x, y, ok := bools(v, other)
	if !ok {
		return Null(), operandError("apply 'or' to", v, other)
	}
	return FromBool(x || y), nil
}

// Not implements the logical not.
func (v Value) Not() (Value, error) {
	b, ok := v.AsBool()
	if !ok {
		return Null(), Errorf(ErrUnsupportedOperandKinds, "cannot apply 'not' to %s", v.Kind())
	}
	return FromBool(!b), nil
}

func ints(a, b Value) (*big.Int, *big.Int, bool) {
	x, ok1 := a.data.(*big.Int)
	y, ok2 := b.data.(*big.Int)
	return x, y, ok1 && ok2
}

// BitAnd implements & over two Ints.
func (v Value) BitAnd(other Value) (Value, error) {
	x, y, ok := ints(v, other)
	if !ok {
		return Null(), operandError("apply '&' to", v, other)
	}
	return Value{data: new(big.Int).And(x, y)}, nil
}

// BitOr implements | over two Ints.
func (v Value) BitOr(other Value) (Value, error) {
	x, y, ok := ints(v, other)
	if !ok {
		return Null(), operandError("apply '|' to", v, other)
	}
	return Value{data: new(big.Int).Or(x, y)}, nil
}

// BitXor implements ^ over two Ints.
func (v Value) BitXor(other Value) (Value, error) {
	x, y, ok := ints(v, other)
	if !ok {
		return Null(), operandError("apply '^' to", v, other)
	}
	return Value{data: new(big.Int).Xor(x, y)}, nil
}

// Neg performs unary negation.
func (v Value) Neg() (Value, error) {
	switch d := v.data.(type) {
	case *big.Int:
		return Value{data: new(big.Int).Neg(d)}, nil
	case float64:
		return FromFloat(-d), nil
	}
	return Null(), Errorf(ErrUnsupportedOperandKinds, "cannot negate %s", v.Kind())
}

// Pos performs unary plus, the identity on numbers.
func (v Value) Pos() (Value, error) {
	switch v.data.(type) {
	case *big.Int, float64:
		return v, nil
	}
	return Null(), Errorf(ErrUnsupportedOperandKinds, "cannot apply unary plus to %s", v.Kind())
}

// RangeInclusive implements start..end.
func (v Value) RangeInclusive(end Value) (Value, error) {
	return makeRange(v, end, true)
}

// RangeExclusive implements start.<end.
func (v Value) RangeExclusive(end Value) (Value, error) {
	return makeRange(v, end, false)
}

func makeRange(start, end Value, inclusive bool) (Value, error) {
	x, y, ok := ints(start, end)
	if !ok {
		return Null(), operandError("build a range from", start, end)
	}
	if !x.IsInt64() || !y.IsInt64() {
		return Null(), Errorf(ErrIntOutOfRange, "range bounds %s and %s exceed 64 bits", x, y)
	}
	return FromRange(x.Int64(), y.Int64(), inclusive), nil
}

// Contains implements the 'in' operator with v as the haystack.
//
// Strings search for a substring, structs for a key, typed lists for an
// element of their own kind and ListAny for any structurally equal
// element.
func (v Value) Contains(needle Value) (Value, error) {
	switch h := v.data.(type) {
	case string:
		if s, ok := needle.AsString(); ok {
			return FromBool(strings.Contains(h, s)), nil
		}
	case structMap:
		if s, ok := needle.AsString(); ok {
			_, exists := h[s]
			return FromBool(exists), nil
		}
	case intList:
		if n, ok := needle.data.(*big.Int); ok {
			return FromBool(slices.ContainsFunc(h, func(x *big.Int) bool { return x.Cmp(n) == 0 })), nil
		}
	case floatList:
		if f, ok := needle.AsFloat(); ok {
			return FromBool(slices.Contains(h, f)), nil
		}
	case boolList:
		if b, ok := needle.AsBool(); ok {
			return FromBool(slices.Contains(h, b)), nil
		}
	case stringList:
		if s, ok := needle.AsString(); ok {
			return FromBool(slices.Contains(h, s)), nil
		}
	case listAny:
		return FromBool(slices.ContainsFunc(h, needle.Equal)), nil
	default:
		return Null(), Errorf(ErrUnsupportedOperandKinds, "the 'in' operator is not supported for %s", v.Kind())
	}
	return Null(), Errorf(ErrUnsupportedOperandKinds, "cannot search for %s in %s", needle.Kind(), v.Kind())
}

// Coalesce implements the ?: operator: the left value unless it is Null,
// else the right value unless it is Null.
func Coalesce(left, right Value) (Value, error) {
	if !left.IsNull() {
		return left, nil
	}
	if !right.IsNull() {
		return right, nil
	}
	return Null(), NewError(ErrBothOperandsNull, "cannot coalesce two null values")
}

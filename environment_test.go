package ago

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/agolang/ago-go/value"
)

func TestApplyBinaryOperators(t *testing.T) {
	env := NewEnvironment()
	tests := []struct {
		op          string
		left, right value.Value
		want        value.Value
	}{
		{"+", value.FromInt(5), value.FromFloat(2.5), value.FromFloat(7.5)},
		{"+", value.FromString("a"), value.FromString("b"), value.FromString("ab")},
		{"-", value.FromInt(5), value.FromInt(7), value.FromInt(-2)},
		{"*", value.FromInt(3), value.FromInt(4), value.FromInt(12)},
		{"/", value.FromInt(9), value.FromInt(2), value.FromInt(4)},
		{"%", value.FromInt(9), value.FromInt(2), value.FromInt(1)},
		{">", value.FromInt(2), value.FromInt(1), value.True()},
		{">=", value.FromInt(1), value.FromFloat(1), value.True()},
		{"<", value.FromString("a"), value.FromString("b"), value.True()},
		{"<=", value.FromInt(3), value.FromInt(1), value.False()},
		{"==", value.FromInt(5), value.FromFloat(5), value.False()},
		{"!=", value.FromInt(5), value.FromFloat(5), value.True()},
		{"and", value.True(), value.False(), value.False()},
		{"or", value.True(), value.False(), value.True()},
		{"&", value.FromInt(12), value.FromInt(10), value.FromInt(8)},
		{"|", value.FromInt(12), value.FromInt(10), value.FromInt(14)},
		{"^", value.FromInt(12), value.FromInt(10), value.FromInt(6)},
		{"..", value.FromInt(1), value.FromInt(3), value.FromRange(1, 3, true)},
		{".<", value.FromInt(1), value.FromInt(3), value.FromRange(1, 3, false)},
		{"in", value.FromString("two"), value.FromStringList("one", "two"), value.True()},
		{"in", value.FromString("k"), value.FromStruct(nil), value.False()},
		{"?:", value.Null(), value.FromInt(10), value.FromInt(10)},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			got, err := env.Apply(tt.op, tt.left, tt.right)
			if err != nil {
				t.Fatalf("Apply(%q, %s, %s) failed: %v", tt.op, tt.left.Repr(), tt.right.Repr(), err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Apply(%q, %s, %s) = %s, want %s", tt.op, tt.left.Repr(), tt.right.Repr(), got.Repr(), tt.want.Repr())
			}
		})
	}
}

func TestApplyUnaryOperators(t *testing.T) {
	env := NewEnvironment()
	tests := []struct {
		op      string
		operand value.Value
		want    value.Value
	}{
		{"-", value.FromInt(3), value.FromInt(-3)},
		{"+", value.FromFloat(1.5), value.FromFloat(1.5)},
		{"not", value.False(), value.True()},
	}
	for _, tt := range tests {
		got, err := env.Apply(tt.op, tt.operand)
		if err != nil {
			t.Errorf("Apply(%q, %s) failed: %v", tt.op, tt.operand.Repr(), err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Apply(%q, %s) = %s, want %s", tt.op, tt.operand.Repr(), got.Repr(), tt.want.Repr())
		}
	}
}

func TestApplyErrors(t *testing.T) {
	env := NewEnvironment()
	tests := []struct {
		name     string
		op       string
		operands []value.Value
		kind     ErrorKind
	}{
		{"unknown binary", "**", []value.Value{value.FromInt(1), value.FromInt(2)}, ErrUnknownOperator},
		{"not is unary only", "not", []value.Value{value.True(), value.True()}, ErrUnknownOperator},
		{"unknown unary", "~", []value.Value{value.FromInt(1)}, ErrUnknownOperator},
		{"no operands", "+", nil, ErrArgumentCount},
		{"three operands", "+", []value.Value{value.Null(), value.Null(), value.Null()}, ErrArgumentCount},
		{"both null", "?:", []value.Value{value.Null(), value.Null()}, ErrBothOperandsNull},
		{"bad operands", "-", []value.Value{value.FromString("a"), value.FromInt(1)}, ErrUnsupportedOperandKinds},
		{"division by zero", "/", []value.Value{value.FromInt(1), value.FromInt(0)}, ErrDivisionByZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.Apply(tt.op, tt.operands...)
			if !errors.Is(err, tt.kind) {
				t.Errorf("Apply(%q) error = %v, want %v", tt.op, err, tt.kind)
			}
		})
	}
}

func TestEmptyEnvironment(t *testing.T) {
	env := EmptyEnvironment()
	if len(env.Functions()) != 0 {
		t.Errorf("Functions() = %v, want none", env.Functions())
	}
	if _, err := env.Call("dici", value.FromString("x")); !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("Call on empty environment: error = %v", err)
	}
	if _, err := env.Apply("+", value.FromInt(1), value.FromInt(1)); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("Apply on empty environment: error = %v", err)
	}
}

func TestAddCustomFunctionAndOperator(t *testing.T) {
	env := NewEnvironment()
	env.AddFunction("duplicare", func(_ *Environment, args []value.Value) (value.Value, error) {
		return args[0].Add(args[0])
	})
	env.AddBinaryOperator("**", func(a, b value.Value) (value.Value, error) {
		return a.Mul(b)
	})

	got, err := env.Call("duplicare", value.FromString("ab"))
	if err != nil || !got.Equal(value.FromString("abab")) {
		t.Errorf("Call(duplicare) = %v, %v", got, err)
	}
	got, err = env.Apply("**", value.FromInt(3), value.FromInt(3))
	if err != nil || !got.Equal(value.FromInt(9)) {
		t.Errorf("Apply(**) = %v, %v", got, err)
	}

	names := env.Functions()
	if !strings.Contains(strings.Join(names, ","), "duplicare") {
		t.Errorf("Functions() = %v", names)
	}
}

func TestCallLogsFailures(t *testing.T) {
	var logs bytes.Buffer
	env := NewEnvironment()
	env.SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelError})))

	if _, err := env.Call("claverum", value.FromInt(1)); !errors.Is(err, ErrValueKindMismatch) {
		t.Fatalf("Call(claverum, 1) error = %v", err)
	}
	if !strings.Contains(logs.String(), "level=ERROR") || !strings.Contains(logs.String(), "function=claverum") {
		t.Errorf("expected an error record naming the function, got %q", logs.String())
	}

	env.SetLogger(nil)
	if env.Logger() == nil {
		t.Error("SetLogger(nil) should install a discarding logger")
	}
}

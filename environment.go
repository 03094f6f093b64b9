package ago

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/agolang/ago-go/value"
)

// FunctionFunc is the signature for prelude functions.
type FunctionFunc func(env *Environment, args []value.Value) (value.Value, error)

// BinaryOpFunc is the signature for binary operators.
type BinaryOpFunc func(left, right value.Value) (value.Value, error)

// UnaryOpFunc is the signature for unary operators.
type UnaryOpFunc func(operand value.Value) (value.Value, error)

// Environment holds the prelude, the operator table and the process
// resources generated programs talk to.
type Environment struct {
	functions map[string]FunctionFunc
	binaryOps map[string]BinaryOpFunc
	unaryOps  map[string]UnaryOpFunc
	stdin     *bufio.Reader
	stdout    io.Writer
	exit      func(code int)
	logger    *slog.Logger
}

// NewEnvironment creates a new environment with the default prelude and
// operators, wired to the process' standard streams.
func NewEnvironment() *Environment {
	env := EmptyEnvironment()

	registerDefaultFunctions(env)
	registerDefaultOperators(env)

	return env
}

// EmptyEnvironment creates an environment with no functions or operators.
func EmptyEnvironment() *Environment {
	return &Environment{
		functions: make(map[string]FunctionFunc),
		binaryOps: make(map[string]BinaryOpFunc),
		unaryOps:  make(map[string]UnaryOpFunc),
		stdin:     bufio.NewReader(os.Stdin),
		stdout:    os.Stdout,
		exit:      os.Exit,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// AddFunction registers a prelude function.
func (e *Environment) AddFunction(name string, f FunctionFunc) {
	e.functions[name] = f
}

// AddBinaryOperator registers a binary operator.
func (e *Environment) AddBinaryOperator(op string, f BinaryOpFunc) {
	e.binaryOps[op] = f
}

// AddUnaryOperator registers a unary operator.
func (e *Environment) AddUnaryOperator(op string, f UnaryOpFunc) {
	e.unaryOps[op] = f
}

// SetStdin sets the reader ReadLine consumes.
func (e *Environment) SetStdin(r io.Reader) {
	e.stdin = bufio.NewReader(r)
}

// SetStdout sets the writer PrintLine writes to.
func (e *Environment) SetStdout(w io.Writer) {
	e.stdout = w
}

// SetExitFunc replaces os.Exit as the handler for Terminate.
func (e *Environment) SetExitFunc(f func(code int)) {
	e.exit = f
}

// SetLogger sets the logger used for diagnostics. A nil logger discards
// everything.
func (e *Environment) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e.logger = l
}

// Logger returns the environment's logger.
func (e *Environment) Logger() *slog.Logger {
	return e.logger
}

// Functions returns the names of all registered functions, sorted.
func (e *Environment) Functions() []string {
	names := make([]string, 0, len(e.functions))
	for name := range e.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes the prelude function registered under name.
func (e *Environment) Call(name string, args ...value.Value) (value.Value, error) {
	f, ok := e.functions[name]
	if !ok {
		return value.Null(), value.Errorf(value.ErrUnknownFunction, "%s is not defined", name)
	}
	result, err := f(e, args)
	if err != nil {
		e.logger.Error("function failed", "function", name, "error", err)
		return value.Null(), err
	}
	return result, nil
}

// Apply evaluates op over one operand (unary) or two operands (binary).
func (e *Environment) Apply(op string, operands ...value.Value) (value.Value, error) {
	switch len(operands) {
	case 1:
		f, ok := e.unaryOps[op]
		if !ok {
			return value.Null(), value.Errorf(value.ErrUnknownOperator, "unary operator %q is not defined", op)
		}
		return f(operands[0])
	case 2:
		f, ok := e.binaryOps[op]
		if !ok {
			return value.Null(), value.Errorf(value.ErrUnknownOperator, "binary operator %q is not defined", op)
		}
		return f(operands[0], operands[1])
	default:
		return value.Null(), value.Errorf(value.ErrArgumentCount, "operator %q takes 1 or 2 operands, got %d", op, len(operands))
	}
}

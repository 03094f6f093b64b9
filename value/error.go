package value

import (
	"errors"
	"fmt"
)

// ErrorKind describes the type of error.
type ErrorKind int

const (
	ErrUnsupportedCast ErrorKind = iota + 1
	ErrCastParseFailure
	ErrIndexOutOfBounds
	ErrKeyNotFound
	ErrKeyTypeMismatch
	ErrValueKindMismatch
	ErrInvalidCharacterReplacement
	ErrUnsupportedContainerOperation
	ErrUnsupportedOperandKinds
	ErrBothOperandsNull
	ErrDivisionByZero
	ErrIntOutOfRange
	ErrIO
	ErrUnknownFunction
	ErrUnknownOperator
	ErrArgumentCount
	ErrInvalidConfig
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedCast:
		return "unsupported cast"
	case ErrCastParseFailure:
		return "cast parse failure"
	case ErrIndexOutOfBounds:
		return "index out of bounds"
	case ErrKeyNotFound:
		return "key not found"
	case ErrKeyTypeMismatch:
		return "key type mismatch"
	case ErrValueKindMismatch:
		return "value kind mismatch"
	case ErrInvalidCharacterReplacement:
		return "invalid character replacement"
	case ErrUnsupportedContainerOperation:
		return "unsupported container operation"
	case ErrUnsupportedOperandKinds:
		return "unsupported operand kinds"
	case ErrBothOperandsNull:
		return "both operands null"
	case ErrDivisionByZero:
		return "division by zero"
	case ErrIntOutOfRange:
		return "integer out of range"
	case ErrIO:
		return "i/o error"
	case ErrUnknownFunction:
		return "unknown function"
	case ErrUnknownOperator:
		return "unknown operator"
	case ErrArgumentCount:
		return "wrong number of arguments"
	case ErrInvalidConfig:
		return "invalid config"
	default:
		return "error"
	}
}

// Error implements the error interface so a bare kind can be used as an
// errors.Is target: errors.Is(err, value.ErrKeyNotFound).
func (k ErrorKind) Error() string {
	return k.String()
}

// Error is the failure returned by every fallible operation in this package.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is the same kind of error.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case ErrorKind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind
	}
	return false
}

// Format implements fmt.Formatter. With %+v the chain of causes is
// printed below the error.
func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			formatErrorChain(f, e)
			return
		}
		_, _ = fmt.Fprint(f, e.Error())
	case 's':
		_, _ = fmt.Fprint(f, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error())
	}
}

func formatErrorChain(f fmt.State, err *Error) {
	_, _ = fmt.Fprint(f, err.Error())
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		_, _ = fmt.Fprint(f, "\n\ncaused by: ")
		_, _ = fmt.Fprint(f, cause.Error())
	}
}

// NewError creates a new error.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Errorf creates a new error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithCause attaches an underlying error.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// KindOf returns the ErrorKind of err, or 0 if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

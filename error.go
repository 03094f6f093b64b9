package ago

import "github.com/agolang/ago-go/value"

// Error is the failure type returned by every fallible Ago operation.
type Error = value.Error

// ErrorKind describes the type of error.
type ErrorKind = value.ErrorKind

const (
	ErrUnsupportedCast               = value.ErrUnsupportedCast
	ErrCastParseFailure              = value.ErrCastParseFailure
	ErrIndexOutOfBounds              = value.ErrIndexOutOfBounds
	ErrKeyNotFound                   = value.ErrKeyNotFound
	ErrKeyTypeMismatch               = value.ErrKeyTypeMismatch
	ErrValueKindMismatch             = value.ErrValueKindMismatch
	ErrInvalidCharacterReplacement   = value.ErrInvalidCharacterReplacement
	ErrUnsupportedContainerOperation = value.ErrUnsupportedContainerOperation
	ErrUnsupportedOperandKinds       = value.ErrUnsupportedOperandKinds
	ErrBothOperandsNull              = value.ErrBothOperandsNull
	ErrDivisionByZero                = value.ErrDivisionByZero
	ErrIntOutOfRange                 = value.ErrIntOutOfRange
	ErrIO                            = value.ErrIO
	ErrUnknownFunction               = value.ErrUnknownFunction
	ErrUnknownOperator               = value.ErrUnknownOperator
	ErrArgumentCount                 = value.ErrArgumentCount
	ErrInvalidConfig                 = value.ErrInvalidConfig
)

// NewError creates a new error.
func NewError(kind ErrorKind, msg string) *Error {
	return value.NewError(kind, msg)
}

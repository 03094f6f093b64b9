// Package ago provides the runtime for programs transpiled from the Ago
// language.
//
// Every Ago value is a value.Value: a closed set of kinds covering the
// scalars (Int, Float, Bool, String), typed lists, a heterogeneous
// ListAny, a string-keyed Struct, integer Ranges and Null. The value
// package implements casting between kinds, container access and the
// operators; this package adds the Environment that generated programs
// run against.
//
// # Quick Start
//
//	env := ago.NewEnvironment()
//	n, _ := ago.FromString("41").Cast(ago.KindInt)
//	sum, _ := env.Apply("+", n, ago.FromInt(1))
//	env.Call("dici", ago.MustCast(sum, ago.KindString))
//
// # Environment Configuration
//
// The Environment owns the prelude functions, the operator table and the
// process resources they use:
//
//	env := ago.NewEnvironment()
//	env.SetStdout(&buf)
//	env.SetExitFunc(func(code int) { ... })
//
//	cfg, err := ago.LoadConfig("ago.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	env.Configure(cfg)
//
// Prelude functions are registered under their Ago names ("dici",
// "apertes", "species", ...) and under descriptive aliases
// ("print_line", "read_file", "type_name", ...). Custom functions are
// added with AddFunction:
//
//	env.AddFunction("duplicare", func(env *ago.Environment, args []ago.Value) (ago.Value, error) {
//	    return args[0].Add(args[0])
//	})
//
// # Error Handling
//
// Every failure is an *Error carrying an ErrorKind. Kinds can be matched
// with errors.Is:
//
//	if _, err := v.GetItem(key); errors.Is(err, ago.ErrKeyNotFound) {
//	    ...
//	}
//
// Printing an error with %+v includes the chain of underlying causes.
//
// # See Also
//
//   - environment.go: Environment configuration
//   - defaults.go: Built-in functions and operators
//   - value package: Kinds, casts and operators
package ago

// Re-export commonly used types from subpackages
import (
	"github.com/agolang/ago-go/value"
)

// Value is a dynamically typed Ago value.
type Value = value.Value

// Kind describes the variant of a Value.
type Kind = value.Kind

// Range is an integer interval.
type Range = value.Range

// Value kinds
const (
	KindNull       = value.KindNull
	KindInt        = value.KindInt
	KindFloat      = value.KindFloat
	KindBool       = value.KindBool
	KindString     = value.KindString
	KindIntList    = value.KindIntList
	KindFloatList  = value.KindFloatList
	KindBoolList   = value.KindBoolList
	KindStringList = value.KindStringList
	KindStruct     = value.KindStruct
	KindListAny    = value.KindListAny
	KindRange      = value.KindRange
	KindAny        = value.KindAny
)

// Value constructors
var (
	Null           = value.Null
	FromBool       = value.FromBool
	FromInt        = value.FromInt
	FromBigInt     = value.FromBigInt
	FromFloat      = value.FromFloat
	FromString     = value.FromString
	FromIntList    = value.FromIntList
	FromFloatList  = value.FromFloatList
	FromBoolList   = value.FromBoolList
	FromStringList = value.FromStringList
	FromList       = value.FromList
	FromStruct     = value.FromStruct
	FromRange      = value.FromRange
	FromAny        = value.FromAny
	FromYAML       = value.FromYAML
)

// MustCast casts v to target and panics on failure.
func MustCast(v Value, target Kind) Value {
	return v.MustCast(target)
}

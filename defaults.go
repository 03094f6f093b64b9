package ago

import (
	"github.com/agolang/ago-go/value"
)

func registerDefaultFunctions(env *Environment) {
	env.AddFunction("dici", fnPrintLine)
	env.AddFunction("print_line", fnPrintLine) // alias
	env.AddFunction("audies", fnReadLine)
	env.AddFunction("read_line", fnReadLine) // alias
	env.AddFunction("apertes", fnReadFile)
	env.AddFunction("read_file", fnReadFile) // alias
	env.AddFunction("apertu", fnReadFileRecord)
	env.AddFunction("read_file_as_record", fnReadFileRecord) // alias
	env.AddFunction("scribo", fnWriteFile)
	env.AddFunction("write_file", fnWriteFile) // alias
	env.AddFunction("exei", fnTerminate)
	env.AddFunction("terminate", fnTerminate) // alias

	env.AddFunction("species", fnTypeName)
	env.AddFunction("type_name", fnTypeName) // alias
	env.AddFunction("aequalam", fnEqual)
	env.AddFunction("claverum", fnKeys)
}

func registerDefaultOperators(env *Environment) {
	// Arithmetic
	env.AddBinaryOperator("+", value.Value.Add)
	env.AddBinaryOperator("-", value.Value.Sub)
	env.AddBinaryOperator("*", value.Value.Mul)
	env.AddBinaryOperator("/", value.Value.Div)
	env.AddBinaryOperator("%", value.Value.Rem)

	// Comparison
	env.AddBinaryOperator(">", value.Value.Gt)
	env.AddBinaryOperator(">=", value.Value.Ge)
	env.AddBinaryOperator("<", value.Value.Lt)
	env.AddBinaryOperator("<=", value.Value.Le)
	env.AddBinaryOperator("==", infallible(value.Value.Eq))
	env.AddBinaryOperator("!=", infallible(value.Value.Ne))

	// Logical and bitwise
	env.AddBinaryOperator("and", value.Value.And)
	env.AddBinaryOperator("or", value.Value.Or)
	env.AddBinaryOperator("&", value.Value.BitAnd)
	env.AddBinaryOperator("|", value.Value.BitOr)
	env.AddBinaryOperator("^", value.Value.BitXor)

	// Ranges, membership and coalescing
	env.AddBinaryOperator("..", value.Value.RangeInclusive)
	env.AddBinaryOperator(".<", value.Value.RangeExclusive)
	env.AddBinaryOperator("in", opIn)
	env.AddBinaryOperator("?:", value.Coalesce)

	env.AddUnaryOperator("-", value.Value.Neg)
	env.AddUnaryOperator("+", value.Value.Pos)
	env.AddUnaryOperator("not", value.Value.Not)
}

func infallible(f func(a, b value.Value) value.Value) BinaryOpFunc {
	return func(a, b value.Value) (value.Value, error) {
		return f(a, b), nil
	}
}

// opIn evaluates `needle in haystack`.
func opIn(needle, haystack value.Value) (value.Value, error) {
	return haystack.Contains(needle)
}

func checkArgs(name string, args []value.Value, n int) error {
	if len(args) != n {
		return value.Errorf(value.ErrArgumentCount, "%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// --- Functions ---

func fnPrintLine(env *Environment, args []value.Value) (value.Value, error) {
	if err := checkArgs("print_line", args, 1); err != nil {
		return value.Null(), err
	}
	return env.PrintLine(args[0])
}

func fnReadLine(env *Environment, args []value.Value) (value.Value, error) {
	if err := checkArgs("read_line", args, 0); err != nil {
		return value.Null(), err
	}
	return env.ReadLine()
}

func fnReadFile(env *Environment, args []value.Value) (value.Value, error) {
	if err := checkArgs("read_file", args, 1); err != nil {
		return value.Null(), err
	}
	return env.ReadFile(args[0])
}

func fnReadFileRecord(env *Environment, args []value.Value) (value.Value, error) {
	if err := checkArgs("read_file_as_record", args, 1); err != nil {
		return value.Null(), err
	}
	return env.ReadFileRecord(args[0])
}

func fnWriteFile(env *Environment, args []value.Value) (value.Value, error) {
	if err := checkArgs("write_file", args, 2); err != nil {
		return value.Null(), err
	}
	return env.WriteFile(args[0], args[1])
}

func fnTerminate(env *Environment, args []value.Value) (value.Value, error) {
	if err := checkArgs("terminate", args, 1); err != nil {
		return value.Null(), err
	}
	return env.Terminate(args[0])
}

func fnTypeName(_ *Environment, args []value.Value) (value.Value, error) {
	if err := checkArgs("type_name", args, 1); err != nil {
		return value.Null(), err
	}
	return TypeName(args[0]), nil
}

func fnEqual(_ *Environment, args []value.Value) (value.Value, error) {
	if err := checkArgs("aequalam", args, 2); err != nil {
		return value.Null(), err
	}
	return Equal(args[0], args[1]), nil
}

func fnKeys(_ *Environment, args []value.Value) (value.Value, error) {
	if err := checkArgs("claverum", args, 1); err != nil {
		return value.Null(), err
	}
	return Keys(args[0])
}

package ago

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/agolang/ago-go/value"
)

// Field names of the record returned by ReadFileRecord.
const (
	RecordFilename = "filenames"
	RecordContent  = "contentes"
	RecordFilesize = "filesizea"
)

func expectString(fn string, v value.Value) (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", value.Errorf(value.ErrValueKindMismatch, "%s expects a String, got %s", fn, v.Kind())
	}
	return s, nil
}

// PrintLine writes a String followed by a newline to the environment's
// output.
func (e *Environment) PrintLine(v value.Value) (value.Value, error) {
	s, err := expectString("print_line", v)
	if err != nil {
		return value.Null(), err
	}
	if _, err := fmt.Fprintln(e.stdout, s); err != nil {
		return value.Null(), value.NewError(value.ErrIO, "failed to write to stdout").WithCause(err)
	}
	return value.Null(), nil
}

// ReadLine reads one line from the environment's input with the trailing
// line terminator removed. At end of input it returns what was read, which
// may be the empty string.
func (e *Environment) ReadLine() (value.Value, error) {
	line, err := e.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return value.Null(), value.NewError(value.ErrIO, "failed to read from stdin").WithCause(err)
	}
	return value.FromString(strings.TrimRight(line, "\r\n")), nil
}

// ReadFile returns the contents of the file at path.
func (e *Environment) ReadFile(path value.Value) (value.Value, error) {
	name, err := expectString("read_file", path)
	if err != nil {
		return value.Null(), err
	}
	data, err := os.ReadFile(name)
	if err != nil {
		e.logger.Error("read failed", "path", name, "error", err)
		return value.Null(), value.Errorf(value.ErrIO, "failed to open file %q", name).WithCause(err)
	}
	return value.FromString(string(data)), nil
}

// ReadFileRecord reads the file at path and returns a Struct with its
// name, contents and size in bytes.
func (e *Environment) ReadFileRecord(path value.Value) (value.Value, error) {
	name, err := expectString("read_file_as_record", path)
	if err != nil {
		return value.Null(), err
	}
	data, err := os.ReadFile(name)
	if err != nil {
		e.logger.Error("read failed", "path", name, "error", err)
		return value.Null(), value.Errorf(value.ErrIO, "failed to open file %q", name).WithCause(err)
	}
	info, err := os.Stat(name)
	if err != nil {
		e.logger.Error("stat failed", "path", name, "error", err)
		return value.Null(), value.Errorf(value.ErrIO, "unable to read metadata of %q", name).WithCause(err)
	}
	return value.FromStruct(map[string]value.Value{
		RecordFilename: value.FromString(name),
		RecordContent:  value.FromString(string(data)),
		RecordFilesize: value.FromInt(info.Size()),
	}), nil
}

// WriteFile replaces the file at path with content.
func (e *Environment) WriteFile(path, content value.Value) (value.Value, error) {
	name, err := expectString("write_file", path)
	if err != nil {
		return value.Null(), err
	}
	text, err := expectString("write_file", content)
	if err != nil {
		return value.Null(), err
	}
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		e.logger.Error("write failed", "path", name, "error", err)
		return value.Null(), value.Errorf(value.ErrIO, "failed to write to file %q", name).WithCause(err)
	}
	e.logger.Debug("wrote file", "path", name, "bytes", len(text))
	return value.Null(), nil
}

// Terminate ends the process with the given Int exit code. It only
// returns when the exit hook installed with SetExitFunc does.
func (e *Environment) Terminate(code value.Value) (value.Value, error) {
	n, ok := code.AsInt()
	if !ok {
		if code.Kind() == value.KindInt {
			return value.Null(), value.Errorf(value.ErrIntOutOfRange, "exit code %s out of range", code)
		}
		return value.Null(), value.Errorf(value.ErrValueKindMismatch, "terminate expects an Int exit code, got %s", code.Kind())
	}
	e.logger.Debug("terminating", "code", n)
	e.exit(int(int32(n)))
	return value.Null(), nil
}

// TypeName returns the name of the value's kind as a String.
func TypeName(v value.Value) value.Value {
	return value.FromString(v.Kind().String())
}

// Equal reports structural equality of two values as a Bool.
func Equal(a, b value.Value) value.Value {
	return a.Eq(b)
}

// Keys returns the sorted keys of a Struct as a StringList.
func Keys(v value.Value) (value.Value, error) {
	m, ok := v.AsStruct()
	if !ok {
		return value.Null(), value.Errorf(value.ErrValueKindMismatch, "keys expects a Struct, got %s", v.Kind())
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return value.FromStringList(keys...), nil
}

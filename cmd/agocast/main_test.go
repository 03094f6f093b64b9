package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ago "github.com/agolang/ago-go"
	"github.com/agolang/ago-go/value"
)

func runCLI(t *testing.T, input string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(input), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestCastToString(t *testing.T) {
	out, errOut, code := runCLI(t, "[1, 2, 3]", "-to", "String")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, errOut)
	}
	if out != "1\n2\n3\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestOutputFormats(t *testing.T) {
	tests := []struct {
		format string
		input  string
		want   string
	}{
		{"repr", "[a, b]", "[\"a\", \"b\"]\n"},
		{"text", "[a, b]", "a\nb\n"},
		{"yaml", "{b: 1, a: [true]}", "a:\n    - true\nb: 1\n"},
		{"json", "{b: 1, a: [true]}", "{\"a\":[true],\"b\":1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, errOut, code := runCLI(t, tt.input, "-format", tt.format)
			if code != 0 {
				t.Fatalf("exit code %d: %s", code, errOut)
			}
			if out != tt.want {
				t.Errorf("stdout = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestCallAndIterate(t *testing.T) {
	out, _, code := runCLI(t, "{z: 1, y: 2}", "-call", "claverum", "-iter", "-format", "repr")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if out != "\"y\"\n\"z\"\n" {
		t.Errorf("stdout = %q", out)
	}

	out, _, code = runCLI(t, "!Range 1.<4", "-call", "species")
	if code != 0 || out != "Range\n" {
		t.Errorf("species = %q (exit %d)", out, code)
	}
}

func TestReadsInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.yaml")
	if err := os.WriteFile(path, []byte("[[x, 1], [y, 2]]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, errOut, code := runCLI(t, "", "-to", "Struct", "-format", "repr", path)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, errOut)
	}
	if out != "{\"x\": 1, \"y\": 2}\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"parse failure", `"abc"`, []string{"-to", "Int"}, "cast parse failure"},
		{"unknown kind", "1", []string{"-to", "Dict"}, "unknown kind"},
		{"unknown function", "1", []string{"-call", "nope"}, "unknown function"},
		{"unknown format", "1", []string{"-format", "xml"}, "unknown output format"},
		{"missing file", "", []string{filepath.Join(os.TempDir(), "agocast-missing", "in.yaml")}, "caused by"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errOut, code := runCLI(t, tt.input, tt.args...)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.Contains(errOut, tt.want) {
				t.Errorf("stderr = %q, want it to contain %q", errOut, tt.want)
			}
		})
	}
}

func TestUsageErrorsAreNotValueErrors(t *testing.T) {
	err := write(io.Discard, value.Null(), "xml")
	if err == nil {
		t.Fatal("write with an unknown format should fail")
	}
	if kind := value.KindOf(err); kind != 0 {
		t.Errorf("unknown format reported as %v", kind)
	}

	err = execute(ago.NewEnvironment(), &options{target: "Dict", format: "text"}, strings.NewReader("1"), io.Discard)
	if kind := value.KindOf(err); err == nil || kind != 0 {
		t.Errorf("unknown kind error = %v (kind %v)", err, kind)
	}
}

func TestBadFlags(t *testing.T) {
	if _, _, code := runCLI(t, "", "-nope"); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if _, _, code := runCLI(t, "", "a.yaml", "b.yaml"); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

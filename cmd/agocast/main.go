// Command agocast decodes a YAML document into an Ago value, optionally
// casts it or passes it through a prelude function, and prints the result.
//
//	echo '[1, 2, 3]' | agocast -to String
//	agocast -to Struct -format yaml pairs.yaml
//	agocast -call species data.yaml
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	ago "github.com/agolang/ago-go"
	"github.com/agolang/ago-go/value"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	target     string
	call       string
	iterate    bool
	format     string
	configPath string
	inputPath  string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("agocast", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.target, "to", "", "kind to cast the value to (Int, StringList, Struct, ...)")
	fs.StringVar(&opts.call, "call", "", "prelude function to apply before casting (species, claverum, ...)")
	fs.BoolVar(&opts.iterate, "iter", false, "print one item per line")
	fs.StringVar(&opts.format, "format", "auto", "output format: auto, text, repr, yaml or json")
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}
	opts.inputPath = fs.Arg(0)
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg := ago.DefaultConfig()
	if opts.configPath != "" {
		cfg, err = ago.LoadConfig(opts.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "%+v\n", err)
			return 1
		}
	}
	logger := cfg.NewLogger(stderr)

	env := ago.NewEnvironment()
	env.SetLogger(logger)
	env.SetStdin(stdin)
	env.SetStdout(stdout)

	if err := execute(env, opts, stdin, stdout); err != nil {
		logger.Debug("agocast failed", "input", opts.inputPath, "error", err)
		fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}
	return 0
}

func execute(env *ago.Environment, opts *options, stdin io.Reader, stdout io.Writer) error {
	data, err := readInput(opts.inputPath, stdin)
	if err != nil {
		return err
	}
	val, err := value.FromYAML(data)
	if err != nil {
		return err
	}
	env.Logger().Debug("decoded input", "kind", val.Kind().String())

	if opts.call != "" {
		val, err = env.Call(opts.call, val)
		if err != nil {
			return err
		}
	}
	if opts.target != "" {
		kind, ok := value.ParseKind(opts.target)
		if !ok {
			return fmt.Errorf("unknown kind %q", opts.target)
		}
		val, err = val.Cast(kind)
		if err != nil {
			return err
		}
	}

	format := opts.format
	if format == "auto" {
		format = "text"
		if ago.IsTerminal(stdout) {
			format = "repr"
		}
	}

	if !opts.iterate {
		return write(stdout, val, format)
	}
	for item := range val.Iterate() {
		if err := write(stdout, item, format); err != nil {
			return err
		}
	}
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, value.NewError(value.ErrIO, "failed to read input").WithCause(err)
	}
	return data, nil
}

func write(w io.Writer, v value.Value, format string) error {
	var err error
	switch format {
	case "text":
		_, err = fmt.Fprintln(w, v.String())
	case "repr":
		_, err = fmt.Fprintln(w, v.Repr())
	case "yaml":
		var out []byte
		if out, err = value.ToYAML(v); err == nil {
			_, err = w.Write(out)
		}
	case "json":
		enc := json.NewEncoder(w)
		err = enc.Encode(value.ToNative(v))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return value.NewError(value.ErrIO, "failed to write output").WithCause(err)
	}
	return nil
}

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/godec-io/godec"
	"github.com/godec-io/godec/encode"
	yamlsrc "github.com/godec-io/godec/source/yaml"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "fmt":
		fmtCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	case "yaml2json":
		yaml2jsonCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `godec CLI

Usage:
  godec fmt [-indent n] [file]
  godec check [-max-depth n] [-max-bytes n] [-dup-keys ignore|warn|error] [file]
  godec yaml2json [-indent n] [file]

Reads from stdin when no file is given.`)
}

func fmtCmd(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	indent := fs.Int("indent", 2, "indentation width; 0 for compact output")
	_ = fs.Parse(args)

	data := readInput(fs.Arg(0))
	v, err := godec.ParseBytes(data)
	if err != nil {
		fatalf("parse: %v", err)
	}
	fmt.Println(encode.ToString(*indent, v))
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	maxDepth := fs.Int("max-depth", 0, "maximum container nesting; 0 for unlimited")
	maxBytes := fs.Int64("max-bytes", 0, "maximum input bytes; 0 for unlimited")
	dupKeys := fs.String("dup-keys", "ignore", "duplicate key policy: ignore, warn or error")
	_ = fs.Parse(args)

	opt := godec.ParseOpt{
		MaxDepth: *maxDepth,
		MaxBytes: *maxBytes,
	}
	switch *dupKeys {
	case "ignore":
	case "warn":
		opt.OnDuplicateKey = godec.DupWarn
		opt.OnViolation = func(code, path, msg string) {
			fmt.Fprintf(os.Stderr, "godec: %s at %s: %s\n", code, path, msg)
		}
	case "error":
		opt.OnDuplicateKey = godec.DupError
	default:
		fs.Usage()
		os.Exit(2)
	}

	name := fs.Arg(0)
	data := readInput(name)
	if _, err := godec.ParseBytes(data, opt); err != nil {
		if code, ok := godec.IsLimitError(err); ok {
			fatalf("limit %s: %v", code, err)
		}
		fatalf("invalid JSON: %v", err)
	}
	if name == "" {
		name = "<stdin>"
	}
	fmt.Printf("%s: ok\n", name)
}

func yaml2jsonCmd(args []string) {
	fs := flag.NewFlagSet("yaml2json", flag.ExitOnError)
	indent := fs.Int("indent", 0, "indentation width; 0 for compact output")
	_ = fs.Parse(args)

	data := readInput(fs.Arg(0))
	v, err := yamlsrc.Parse(data)
	if err != nil {
		fatalf("parse: %v", err)
	}
	fmt.Println(encode.ToString(*indent, v))
}

func readInput(name string) []byte {
	if name == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("reading stdin: %v", err)
		}
		return data
	}
	data, err := os.ReadFile(name)
	if err != nil {
		fatalf("%v", err)
	}
	return data
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "godec: "+format+"\n", a...)
	os.Exit(1)
}

// Package main implements the SimpleLang compiler entry point.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/you-not-fish/simplelang/internal/codegen"
	"github.com/you-not-fish/simplelang/internal/syntax"
	"github.com/you-not-fish/simplelang/internal/types2"
)

// Compiler flags
var (
	emitTokens   = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST      = flag.Bool("emit-ast", false, "Output AST")
	astFormat    = flag.String("ast-format", "text", "AST output format (text or json)")
	emitTypedAST = flag.Bool("emit-typed-ast", false, "Output typed AST")
	output       = flag.String("o", "", "Output file (default: input with .py extension)")
	run          = flag.Bool("run", false, "Run the generated program with python3")
	doctor       = flag.Bool("doctor", false, "Check toolchain")
	version      = flag.Bool("version", false, "Print version")
	trace        = flag.Bool("trace", false, "Output timing trace")
)

// Version information
const Version = "0.1.0-dev"

// python is the interpreter used by -run and -doctor.
const python = "python3"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "SimpleLang Compiler %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: slc [options] <file.sl>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	args, err := parseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if *version {
		fmt.Printf("slc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	if *doctor {
		os.Exit(runDoctor())
	}

	switch {
	case len(args) == 0:
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: slc [options] <file.sl>")
		os.Exit(1)
	case len(args) > 1:
		fmt.Fprintf(os.Stderr, "error: too many arguments: %s\n", strings.Join(args[1:], " "))
		fmt.Fprintln(os.Stderr, "usage: slc [options] <file.sl>")
		os.Exit(1)
	}

	filename := args[0]

	// Handle -emit-tokens
	if *emitTokens {
		os.Exit(runEmitTokens(filename))
	}

	// Handle -emit-ast
	if *emitAST {
		os.Exit(runEmitAST(filename))
	}

	// Handle -emit-typed-ast
	if *emitTypedAST {
		os.Exit(runEmitTypedAST(filename))
	}

	dst := *output
	if dst == "" {
		dst = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".py"
	}
	os.Exit(runBuild(filename, dst, *run))
}

// parseArgs parses the flags in args and returns the positional
// arguments. Flags may also follow the input file, as in "slc prog.sl -run".
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var files []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return files, nil
		}
		files = append(files, args[0])
		args = args[1:]
	}
}

// runBuild compiles src to dst and, if execute is set, runs the result
// after a banner that separates it from the compiler's own output.
func runBuild(src, dst string, execute bool) int {
	if code := runCompile(src, dst); code != 0 || !execute {
		return code
	}
	fmt.Println("\nRunning generated code:")
	fmt.Println(strings.Repeat("-", 40))
	return runProgram(dst)
}

// tracePhase reports the time spent in a compiler phase when -trace is set.
func tracePhase(phase string, start time.Time) {
	if *trace {
		fmt.Fprintf(os.Stderr, "[trace] %-8s %v\n", phase, time.Since(start))
	}
}

// parseFile parses the input file, reporting any error to stderr.
func parseFile(filename string) (*syntax.File, bool) {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return nil, false
	}
	defer f.Close()

	defer tracePhase("parse", time.Now())
	file, err := syntax.ParseFile(filename, f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, false
	}
	return file, true
}

// checkFile runs semantic analysis, reporting the error to stderr.
func checkFile(file *syntax.File) (*types2.Info, bool) {
	defer tracePhase("check", time.Now())

	info := &types2.Info{}
	conf := &types2.Config{
		Error: func(err *types2.Error) {
			fmt.Fprintln(os.Stderr, err)
		},
	}
	if err := types2.Check(file, conf, info); err != nil {
		return nil, false
	}
	return info, true
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	var errs []string
	errh := func(line, col uint32, msg string) {
		errs = append(errs, fmt.Sprintf("%s:%d:%d: %s", filename, line, col, msg))
	}

	s := syntax.NewScanner(filename, f, errh)

	// Print header
	fmt.Printf("%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for {
		s.Next()
		tok := s.Token()
		fmt.Printf("%-20s %-12s %q\n", s.Pos(), tok, s.Literal())

		if tok.IsEOF() || len(errs) > 0 {
			break
		}
	}

	// Print any errors
	if len(errs) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, e := range errs {
			fmt.Printf("  %s\n", e)
		}
		return 1
	}

	return 0
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename string) int {
	file, ok := parseFile(filename)
	if !ok {
		return 1
	}

	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, file); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	case "text":
		syntax.Fprint(os.Stdout, file)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown AST format %q (want text or json)\n", *astFormat)
		return 1
	}
	return 0
}

// runEmitTypedAST parses, checks, and outputs the AST with the type of
// every expression.
func runEmitTypedAST(filename string) int {
	file, ok := parseFile(filename)
	if !ok {
		return 1
	}
	info, ok := checkFile(file)
	if !ok {
		return 1
	}

	syntax.FprintTyped(os.Stdout, file, func(e syntax.Expr) string {
		if t := info.TypeOf(e); t != nil {
			return t.String()
		}
		return "void"
	})
	return 0
}

// runCompile translates src into a Python program written to dst.
func runCompile(src, dst string) int {
	file, ok := parseFile(src)
	if !ok {
		return 1
	}
	info, ok := checkFile(file)
	if !ok {
		return 1
	}

	start := time.Now()
	out, err := os.Create(dst)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	err = codegen.Generate(out, file, info)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", dst, err)
		return 1
	}
	tracePhase("codegen", start)

	fmt.Printf("Compiled %s -> %s\n", src, dst)
	return 0
}

// runProgram executes a generated program and returns its exit code.
func runProgram(path string) int {
	defer tracePhase("run", time.Now())

	cmd := exec.Command(python, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runDoctor checks the toolchain and returns an exit code.
func runDoctor() int {
	fmt.Println("SimpleLang Toolchain Doctor")
	fmt.Println("===========================")
	fmt.Println()

	allOk := true

	// Check Go version
	goVersion := runtime.Version()
	fmt.Printf("Go:      %s", goVersion)
	if checkGoVersion(goVersion) {
		fmt.Println(" ✓")
	} else {
		fmt.Println(" ✗ (need 1.21+)")
		allOk = false
	}

	// Generated programs use list[int] annotations, which need 3.9+.
	pyVersion, pyOk := checkTool(python, "--version")
	fmt.Printf("python3: %s", pyVersion)
	if pyOk {
		fmt.Println(" ✓")
	} else {
		fmt.Println(" ✗ (not found, needed for -run)")
		allOk = false
	}

	fmt.Println()
	if allOk {
		fmt.Println("All required tools available!")
		return 0
	}

	fmt.Println("Some required tools are missing.")
	return 1
}

// checkGoVersion returns true if the Go version is 1.21 or higher.
func checkGoVersion(v string) bool {
	// Extract version number (e.g., "go1.23.3" -> "1.23")
	if !strings.HasPrefix(v, "go") {
		return false
	}
	v = strings.TrimPrefix(v, "go")
	parts := strings.Split(v, ".")
	if len(parts) < 2 {
		return false
	}

	major := parts[0]
	minor := parts[1]

	if major == "1" {
		var minorNum int
		fmt.Sscanf(minor, "%d", &minorNum)
		return minorNum >= 21
	}

	// Go 2.x or higher is fine
	return major >= "2"
}

// checkTool runs a tool with the given arguments and returns the first line of output.
func checkTool(name string, args ...string) (string, bool) {
	cmd := exec.Command(name, args...)
	out, err := cmd.Output()
	if err != nil {
		return "", false
	}

	line, _, _ := strings.Cut(string(out), "\n")
	line = strings.TrimSpace(line)
	if len(line) > 60 {
		line = line[:57] + "..."
	}
	return line, true
}

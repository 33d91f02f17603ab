package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"fortio.org/log"
	"golang.org/x/term"

	"github.com/ceticamarco/dc/internal/logio"
)

// version is stamped at build time with -ldflags "-X main.version=..."
var version = "devel"

func main() {
	ctx := context.Background()

	var (
		expr     string
		file     string
		showVer  bool
		trace    bool
		dump     bool
		timeout  time.Duration
		maxDepth int
		memLimit uint
	)
	flag.StringVar(&expr, "e", "", "evaluate an expression")
	flag.StringVar(&expr, "expression", "", "evaluate an expression")
	flag.StringVar(&file, "f", "", "evaluate a file")
	flag.StringVar(&file, "file", "", "evaluate a file")
	flag.BoolVar(&showVer, "V", false, "show version")
	flag.BoolVar(&showVer, "version", false, "show version")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "dump final state to stderr")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.IntVar(&maxDepth, "max-depth", 0, "limit macro nesting depth")
	flag.UintVar(&memLimit, "mem-limit", 0, "limit register array indices")
	flag.Parse()

	if showVer {
		fmt.Printf("dc %v\n", version)
		return
	}
	if expr != "" && file != "" {
		log.Fatalf("-e and -f are mutually exclusive")
	}

	var errLog logio.Logger
	errLog.SetOutput(os.Stderr)

	var opts = []VMOption{
		WithOutput(os.Stdout),
		WithErrorLog(&errLog),
		WithMaxDepth(maxDepth),
		WithMemLimit(memLimit),
	}
	if trace {
		log.SetLogLevel(log.Verbose)
		opts = append(opts, WithLogf(log.LogVf))
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var (
		vm  *VM
		err error
	)
	switch {
	case expr != "":
		vm = New(append(opts, WithStdin(os.Stdin))...)
		err = vm.EvalString(ctx, expr)

	case file != "":
		f, ferr := os.Open(file)
		if ferr != nil {
			log.Errf("Cannot open source file %q.", file)
			os.Exit(1)
		}
		vm = New(append(opts,
			WithInput(f),
			WithStdin(os.Stdin),
			WithHaltOnError(true))...)
		err = vm.Run(ctx)

	case term.IsTerminal(int(os.Stdin.Fd())):
		ti, terr := newTerminalInput(int(os.Stdin.Fd()), struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout})
		if terr != nil {
			log.Fatalf("cannot setup terminal: %v", terr)
		}
		errLog.SetOutput(ti)
		vm = New(append(opts, WithOutput(ti), WithLineInput(ti))...)
		err = vm.Run(ctx)

	default:
		vm = New(append(opts, WithInput(os.Stdin))...)
		err = vm.Run(ctx)
	}

	if cerr := vm.Close(); err == nil {
		err = cerr
	}
	errLog.ErrorIf(err)
	if dump {
		vmDumper{vm: vm, out: os.Stderr}.dump()
	}
	os.Exit(errLog.ExitCode())
}

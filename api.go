package main

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/ceticamarco/dc/internal/logio"
	"github.com/ceticamarco/dc/internal/panicerr"
)

// New creates a VM with an empty stack, no registers and default parameters
// (precision 0, input and output radix 10), then applies any options.
func New(opts ...VMOption) *VM {
	var vm VM
	vm.src = &vm.input
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	vm.ops = Dispatch{}.Merge(builtinOps).Merge(vm.boundOps())
	return &vm
}

// Run evaluates every line of program input until it runs out, or until q.
// Errors are reported to the error log and evaluation goes on with the next
// line, unless the VM halts on error, in which case the first error is
// returned prefixed by its input location.
func (vm *VM) Run(ctx context.Context) error {
	defer vm.flush()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := vm.src.ReadLine()
		if errors.Is(err, io.EOF) {
			return vm.flush()
		} else if err != nil {
			return err
		}

		tokens := splitLine(line.Text)
		if len(tokens) == 0 {
			continue
		}
		vm.logf(">", "%v", line)
		err = vm.exec(ctx, tokens)
		if ferr := vm.flush(); err == nil {
			err = ferr
		}
		switch {
		case err == nil:
		case errors.Is(err, errQuit):
			return nil
		case ctx.Err() != nil && errors.Is(err, ctx.Err()):
			return err
		case vm.haltOnError:
			return locationError{line.Location, err}
		default:
			vm.reportError(err)
		}
	}
}

// EvalString evaluates text as a single sequence of whitespace separated
// tokens; comments are not stripped. A q token stops evaluation without
// error, after which Halted reports true.
func (vm *VM) EvalString(ctx context.Context, text string) error {
	err := vm.exec(ctx, strings.Fields(text))
	if ferr := vm.flush(); err == nil {
		err = ferr
	}
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// Halted reports whether evaluation has stopped due to q.
func (vm *VM) Halted() bool { return vm.halted }

// Close flushes output and closes any input sources given to the VM.
func (vm *VM) Close() error { return vm.ioCore.Close() }

// Stack returns a copy of the main stack, bottom first.
func (vm *VM) Stack() []string { return vm.stack.Values() }

// Params returns the current formatting parameters.
func (vm *VM) Params() Params { return vm.params }

func (vm *VM) exec(ctx context.Context, tokens []string) error {
	vm.ctx = ctx
	err := panicerr.Recover("dc", func() error {
		return vm.eval(tokens)
	})
	if errors.Is(err, errQuit) {
		vm.halted = true
	}
	return err
}

func WithInput(readers ...io.Reader) VMOption { return withInput(readers...) }
func WithLineInput(lr LineReader) VMOption    { return withLineInput(lr) }
func WithStdin(r io.Reader) VMOption          { return withStdin(r) }
func WithOutput(w io.Writer) VMOption         { return withOutput(w) }
func WithTee(w io.Writer) VMOption            { return withTee(w) }
func WithErrorLog(log *logio.Logger) VMOption { return withErrorLog(log) }
func WithHaltOnError(halt bool) VMOption      { return withHaltOnError(halt) }
func WithMaxDepth(depth int) VMOption         { return withMaxDepth(depth) }
func WithMemLimit(limit uint) VMOption        { return withMemLimit(limit) }

func WithParams(precision uint, iradix, oradix int) VMOption {
	return withParams(Params{Precision: precision, IRadix: iradix, ORadix: oradix})
}

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

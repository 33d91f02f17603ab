package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/ceticamarco/dc/internal/fileinput"
)

// boundOps returns the operations that need more of the VM than the stack,
// parameters and registers: output, input and re-entrant evaluation.
func (vm *VM) boundOps() Dispatch {
	return Dispatch{
		"p":  op(vm.printTop(0, "\n")),
		"P":  op(vm.printTop(0, "")),
		"pb": op(vm.printTop(2, "\n")),
		"po": op(vm.printTop(8, "\n")),
		"ph": op(vm.printTop(16, "\n")),
		"f":  op(vm.printStack),

		"x": op(vm.execMacro),
		"?": op(vm.readMacro),
		"'": op(vm.loadSource),
	}
}

// printTop prints the top value without popping it, in the given radix, or
// the output radix when radix is 0.
func (vm *VM) printTop(radix int, suffix string) OperationFunc {
	return func(st *Stack, params *Params, _ *Registers) error {
		if st.Empty() {
			return errPrintEmpty
		}
		r := radix
		if r == 0 {
			r = params.ORadix
		}
		return vm.write(formatRadix(st.Peek(), r) + suffix)
	}
}

func (vm *VM) printStack(st *Stack, params *Params, _ *Registers) error {
	var sb strings.Builder
	for i := st.Len() - 1; i >= 0; i-- {
		sb.WriteString(formatRadix(st.At(i), params.ORadix))
		sb.WriteByte('\n')
	}
	return vm.write(sb.String())
}

// execMacro runs the top value as a macro; numbers are left alone.
func (vm *VM) execMacro(st *Stack, _ *Params, _ *Registers) error {
	if st.Empty() {
		return errEmptyStack
	}
	if isNumber(st.Peek()) {
		return nil
	}
	st.Snapshot()
	return vm.eval(splitMacro(st.Pop()))
}

// readMacro reads one line of input and evaluates it.
func (vm *VM) readMacro(_ *Stack, _ *Params, _ *Registers) error {
	line, err := vm.readStdin()
	if err != nil {
		vm.logf("?", "read failed: %v", err)
		return errStdinRead
	}
	vm.logf("?", "%v", line)
	return vm.eval(splitLine(line.Text))
}

// loadSource pops a file path and evaluates the file line by line.
func (vm *VM) loadSource(st *Stack, _ *Params, _ *Registers) error {
	if st.Empty() {
		return errEmptyStack
	}
	path := st.Peek()
	f, err := os.Open(path)
	if err != nil {
		return sourceError{path, err}
	}
	st.Snapshot()
	st.Pop()

	in := fileinput.Input{Queue: []io.Reader{f}}
	defer in.Close()
	for {
		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return sourceError{path, err}
		}
		tokens := splitLine(line.Text)
		if len(tokens) == 0 {
			continue
		}
		vm.logf("'", "%v", line)
		if err := vm.eval(tokens); err != nil {
			if errors.Is(err, errQuit) || (vm.ctx != nil && vm.ctx.Err() != nil) {
				return err
			}
			return locationError{line.Location, err}
		}
	}
}

package main

import (
	"io"

	"github.com/ceticamarco/dc/internal/fileinput"
	"github.com/ceticamarco/dc/internal/flushio"
	"github.com/ceticamarco/dc/internal/logio"
)

// VMOption configures a VM; see the With* functions.
type VMOption interface{ apply(vm *VM) }

// VMOptions bundles several options into one.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		res = res.append(opt)
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

var defaultOptions = VMOptions(
	withOutput(nil),
	withParams(defaultParams()),
)

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

func (opts options) append(opt VMOption) options {
	switch impl := opt.(type) {
	case nil:
		return opts
	case options:
		return append(opts, impl...)
	default:
		return append(opts, opt)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) { vm.logfn = logfn }

type inputOption []io.Reader
type lineInputOption struct{ LineReader }
type stdinOption struct{ LineReader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type errorLogOption struct{ *logio.Logger }
type haltOption bool
type paramsOption Params
type maxDepthOption int
type memLimitOption uint

func withInput(readers ...io.Reader) inputOption    { return inputOption(readers) }
func withLineInput(lr LineReader) lineInputOption   { return lineInputOption{lr} }
func withOutput(w io.Writer) outputOption           { return outputOption{w} }
func withTee(w io.Writer) teeOption                 { return teeOption{w} }
func withErrorLog(log *logio.Logger) errorLogOption { return errorLogOption{log} }
func withHaltOnError(halt bool) haltOption          { return haltOption(halt) }
func withParams(params Params) paramsOption         { return paramsOption(params) }
func withMaxDepth(depth int) maxDepthOption         { return maxDepthOption(depth) }
func withMemLimit(limit uint) memLimitOption        { return memLimitOption(limit) }

func withStdin(r io.Reader) stdinOption {
	if r == nil {
		return stdinOption{}
	}
	return stdinOption{&fileinput.Input{Queue: []io.Reader{r}}}
}

func (readers inputOption) apply(vm *VM) {
	vm.input.Queue = append(vm.input.Queue, readers...)
	vm.src = &vm.input
}

func (lr lineInputOption) apply(vm *VM) {
	vm.src = lr.LineReader
	if cl, ok := lr.LineReader.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (lr stdinOption) apply(vm *VM) {
	vm.stdin = lr.LineReader
	if cl, ok := lr.LineReader.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.Tee(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (o errorLogOption) apply(vm *VM) { vm.errLog = o.Logger }

func (halt haltOption) apply(vm *VM) { vm.haltOnError = bool(halt) }

func (params paramsOption) apply(vm *VM) { vm.params = Params(params) }

func (depth maxDepthOption) apply(vm *VM) { vm.maxDepth = int(depth) }

func (limit memLimitOption) apply(vm *VM) { vm.regs.ArrayLimit = uint(limit) }

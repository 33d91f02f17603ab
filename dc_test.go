package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ceticamarco/dc/internal/fileinput"
	"github.com/ceticamarco/dc/internal/logio"
)

type dcTestCases []dcTestCase

func (dcts dcTestCases) run(t *testing.T) {
	{
		var exclusive []dcTestCase
		for _, dct := range dcts {
			if dct.exclusive {
				exclusive = append(exclusive, dct)
			}
		}
		if len(exclusive) > 0 {
			dcts = exclusive
		}
	}
	for _, dct := range dcts {
		if !t.Run(dct.name, dct.run) {
			return
		}
	}
}

func dcTest(name string) (dct dcTestCase) {
	dct.name = name
	return dct
}

type optFunc func(vm *VM)

func (f optFunc) apply(vm *VM) { f(vm) }

type dcTestCase struct {
	name       string
	opts       []interface{}
	progs      []string
	expect     []func(t *testing.T, vm *VM)
	timeout    time.Duration
	wantErr    error
	wantErrMsg string

	exclusive   bool
	nextInputID int
}

func (dct dcTestCase) apply(wraps ...func(dcTestCase) dcTestCase) dcTestCase {
	for _, wrap := range wraps {
		dct = wrap(dct)
	}
	return dct
}

func (dct dcTestCase) exclusiveTest() dcTestCase {
	dct.exclusive = true
	return dct
}

func (dct dcTestCase) withOptions(opts ...VMOption) dcTestCase {
	for _, opt := range opts {
		dct.opts = append(dct.opts, opt)
	}
	return dct
}

func (dct dcTestCase) withStack(values ...string) dcTestCase {
	dct.opts = append(dct.opts, optFunc(func(vm *VM) {
		vm.stack.Push(values...)
	}))
	return dct
}

func (dct dcTestCase) withRegister(name rune, values ...string) dcTestCase {
	dct.opts = append(dct.opts, optFunc(func(vm *VM) {
		vm.regs.GetOrCreate(name).Push(values...)
	}))
	return dct
}

func (dct dcTestCase) withArray(name rune, index int, value string) dcTestCase {
	dct.opts = append(dct.opts, optFunc(func(vm *VM) {
		if err := vm.regs.GetOrCreate(name).Array.Stor(index, value); err != nil {
			panic(err)
		}
	}))
	return dct
}

func (dct dcTestCase) withParams(params Params) dcTestCase {
	dct.opts = append(dct.opts, withParams(params))
	return dct
}

func (dct dcTestCase) withMaxDepth(depth int) dcTestCase {
	dct.opts = append(dct.opts, withMaxDepth(depth))
	return dct
}

func (dct dcTestCase) withMemLimit(limit uint) dcTestCase {
	dct.opts = append(dct.opts, withMemLimit(limit))
	return dct
}

func (dct dcTestCase) withInput(input string) dcTestCase {
	dct.opts = append(dct.opts, func(dct *dcTestCase, t *testing.T) VMOption {
		name := t.Name() + "/input"
		if id := dct.nextInputID; id > 0 {
			name += "_" + strconv.Itoa(id+1)
		}
		dct.nextInputID++
		return WithInput(fileinput.Named(name, strings.NewReader(input)))
	})
	return dct
}

func (dct dcTestCase) withStdin(input string) dcTestCase {
	dct.opts = append(dct.opts, func(dct *dcTestCase, t *testing.T) VMOption {
		return WithStdin(fileinput.Named("<stdin>", strings.NewReader(input)))
	})
	return dct
}

func (dct dcTestCase) withHaltOnError(halt bool) dcTestCase {
	dct.opts = append(dct.opts, withHaltOnError(halt))
	return dct
}

func (dct dcTestCase) withTimeout(timeout time.Duration) dcTestCase {
	dct.timeout = timeout
	return dct
}

// eval adds programs to evaluate with EvalString, in order; without any, the
// test runs the VM over its input instead.
func (dct dcTestCase) eval(progs ...string) dcTestCase {
	dct.progs = append(dct.progs, progs...)
	return dct
}

func (dct dcTestCase) expectError(err error) dcTestCase {
	dct.wantErr = err
	return dct
}

func (dct dcTestCase) expectErrorMessage(mess string) dcTestCase {
	dct.wantErrMsg = mess
	return dct
}

func (dct dcTestCase) expectStack(values ...string) dcTestCase {
	dct.expect = append(dct.expect, func(t *testing.T, vm *VM) {
		if values == nil {
			values = []string{}
		}
		assert.Equal(t, values, vm.stack.Values(), "expected stack values")
	})
	return dct
}

func (dct dcTestCase) expectLastX(value string) dcTestCase {
	dct.expect = append(dct.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, value, vm.stack.LastX(), "expected last x")
	})
	return dct
}

func (dct dcTestCase) expectLastY(value string) dcTestCase {
	dct.expect = append(dct.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, value, vm.stack.LastY(), "expected last y")
	})
	return dct
}

func (dct dcTestCase) expectLastZ(value string) dcTestCase {
	dct.expect = append(dct.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, value, vm.stack.LastZ(), "expected last z")
	})
	return dct
}

func (dct dcTestCase) expectRegister(name rune, values ...string) dcTestCase {
	dct.expect = append(dct.expect, func(t *testing.T, vm *VM) {
		reg, ok := vm.regs.Get(name)
		if assert.True(t, ok, "expected register %q to exist", name) {
			if values == nil {
				values = []string{}
			}
			assert.Equal(t, values, reg.Values(), "expected register %q stack", name)
		}
	})
	return dct
}

func (dct dcTestCase) expectNoRegister(name rune) dcTestCase {
	dct.expect = append(dct.expect, func(t *testing.T, vm *VM) {
		_, ok := vm.regs.Get(name)
		assert.False(t, ok, "expected no register %q", name)
	})
	return dct
}

func (dct dcTestCase) expectArray(name rune, index int, value string) dcTestCase {
	dct.expect = append(dct.expect, func(t *testing.T, vm *VM) {
		reg, ok := vm.regs.Get(name)
		if assert.True(t, ok, "expected register %q to exist", name) {
			val, err := reg.Array.Load(index)
			assert.NoError(t, err, "unexpected array load error")
			assert.Equal(t, value, val, "expected %c[%v]", name, index)
		}
	})
	return dct
}

func (dct dcTestCase) expectParams(params Params) dcTestCase {
	dct.expect = append(dct.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, params, vm.params, "expected parameters")
	})
	return dct
}

func (dct dcTestCase) expectOutput(output string) dcTestCase {
	var out strings.Builder
	dct.opts = append(dct.opts, func(dct *dcTestCase, t *testing.T) VMOption {
		out.Reset()
		return withOutput(&out)
	})
	dct.expect = append(dct.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return dct
}

func (dct dcTestCase) expectErrorLog(output string) dcTestCase {
	var out strings.Builder
	dct.opts = append(dct.opts, func(dct *dcTestCase, t *testing.T) VMOption {
		out.Reset()
		var log logio.Logger
		log.SetOutput(&out)
		return withErrorLog(&log)
	})
	dct.expect = append(dct.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, output, out.String(), "expected error log")
	})
	return dct
}

func (dct dcTestCase) expectHalted(halted bool) dcTestCase {
	dct.expect = append(dct.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, halted, vm.Halted(), "expected halted")
	})
	return dct
}

func (dct dcTestCase) expectDump(parts ...string) dcTestCase {
	dct.expect = append(dct.expect, func(t *testing.T, vm *VM) {
		var out strings.Builder
		vmDumper{vm: vm, out: &out}.dump()
		for _, part := range parts {
			assert.Contains(t, out.String(), part, "expected dump part")
		}
	})
	return dct
}

func (dct dcTestCase) withTestDump() dcTestCase {
	dct.expect = append(dct.expect, dct.dumpToTest)
	return dct
}

func (dct dcTestCase) run(t *testing.T) {
	defer func(then time.Time) {
		label := "PASS"
		if t.Failed() {
			label = "FAIL"
		}
		t.Logf("%v\t%v\t%v", label, t.Name(), time.Since(then))
	}(time.Now())

	if testFails(func(t *testing.T) {
		dct.runVMTest(context.Background(), t, dct.buildVM(t))
	}) {
		vm := dct.buildVM(t)
		WithLogf(t.Logf).apply(vm)
		dct.runVMTest(context.Background(), t, vm)
	}
}

func (dct dcTestCase) runVMTest(ctx context.Context, t *testing.T, vm *VM) {
	const defaultTimeout = time.Second
	timeout := dct.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if t.Failed() {
			dct.dumpToTest(t, vm)
		}
	}()

	err := dct.runVM(ctx, vm)
	switch {
	case dct.wantErr != nil:
		assert.True(t, errors.Is(err, dct.wantErr), "expected error: %v\ngot: %+v", dct.wantErr, err)
	case dct.wantErrMsg != "":
		assert.EqualError(t, err, dct.wantErrMsg, "expected error message")
	default:
		assert.NoError(t, err, "unexpected VM error")
	}

	if !t.Failed() {
		for _, expect := range dct.expect {
			expect(t, vm)
		}
	}
}

func (dct dcTestCase) runVM(ctx context.Context, vm *VM) (rerr error) {
	defer func() {
		if err := vm.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("vm.Close failed: %w", err)
		}
	}()

	if len(dct.progs) == 0 {
		return vm.Run(ctx)
	}
	for i, prog := range dct.progs {
		vm.logf(">", "eval[%v] %q", i, prog)
		if err := vm.EvalString(ctx, prog); err != nil || vm.Halted() {
			return err
		}
	}
	return nil
}

func (dct dcTestCase) buildVM(t *testing.T) *VM {
	var opt VMOption
	for _, o := range dct.opts {
		switch impl := o.(type) {
		case func(dct *dcTestCase, t *testing.T) VMOption:
			opt = VMOptions(opt, impl(&dct, t))
		case VMOption:
			opt = VMOptions(opt, impl)
		default:
			t.Logf("unsupported dcTestCase opt type %T", o)
			t.FailNow()
		}
	}
	return New(opt)
}

func (dct dcTestCase) dumpToTest(t *testing.T, vm *VM) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	vmDumper{vm: vm, out: &lw}.dump()
}

//// utilities

func testFails(fn func(t *testing.T)) bool {
	var fakeT testing.T
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(&fakeT)
	}()
	<-done
	return fakeT.Failed()
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

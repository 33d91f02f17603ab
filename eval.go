package main

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ceticamarco/dc/internal/mem"
)

// VM holds all state of one dc session: the main stack, the registers and
// the formatting parameters, shared by every nested macro evaluation.
type VM struct {
	ioCore

	stack  Stack
	regs   Registers
	params Params
	ops    Dispatch

	ctx         context.Context
	depth       int
	maxDepth    int
	haltOnError bool
	halted      bool
}

// eval runs tokens left to right, stopping at the first error.
func (vm *VM) eval(tokens []string) error {
	if vm.maxDepth > 0 && vm.depth >= vm.maxDepth {
		return depthError(vm.maxDepth)
	}
	vm.depth++
	defer func() { vm.depth-- }()
	if vm.depth > 1 {
		defer vm.withLogPrefix("\t")()
	}

	for i := 0; i < len(tokens); i++ {
		if vm.ctx != nil {
			if err := vm.ctx.Err(); err != nil {
				return err
			}
		}
		n, err := vm.step(tokens[i:])
		if err != nil {
			return err
		}
		i += n
	}
	return nil
}

// step evaluates the first of tokens, returning how many of the tokens
// after it were consumed as well.
func (vm *VM) step(tokens []string) (int, error) {
	tok := tokens[0]

	if op, ok := vm.ops.Lookup(tok); ok {
		vm.logf("op", "%v depth:%v", tok, vm.stack.Len())
		return 0, op.Exec(&vm.stack, &vm.params, &vm.regs)
	}

	if tok == "[" {
		body, n, err := captureMacro(tokens[1:])
		if err != nil {
			return n, err
		}
		vm.logf("macro", "[ %v ]", body)
		vm.stack.Push(body)
		return n, nil
	}

	if tok == "q" {
		vm.logf("quit", "")
		return 0, errQuit
	}

	if cmp, name, ok := parseConditional(tok); ok {
		vm.logf("cond", "%v%c depth:%v", cmp, name, vm.stack.Len())
		return 0, vm.conditional(cmp, name)
	}

	if cmd, name, ok := parseCommand(tok, "sSlLcz"); ok {
		vm.logf("reg", "%c%c depth:%v", cmd, name, vm.stack.Len())
		return 0, vm.registerCommand(cmd, name)
	}

	if cmd, name, ok := parseCommand(tok, ":;"); ok {
		vm.logf("array", "%c%c depth:%v", cmd, name, vm.stack.Len())
		return 0, vm.arrayCommand(cmd, name)
	}

	if vm.params.IRadix != 10 {
		val, err := parseRadixLiteral(tok, vm.params.IRadix)
		if err != nil {
			return 0, err
		}
		vm.logf("num", "%v (%v in base %v)", val, tok, vm.params.IRadix)
		vm.stack.Push(val)
		return 0, nil
	}

	if isNumber(tok) {
		vm.logf("num", "%v", tok)
		vm.stack.Push(tok)
		return 0, nil
	}

	return 0, errUnrecognized
}

// captureMacro collects the tokens of a macro body, given the tokens after
// its opening bracket; nested brackets are kept as part of the body. It
// returns the body joined by single spaces, and how many tokens were used up
// including the closing bracket.
func captureMacro(tokens []string) (string, int, error) {
	depth := 1
	for i, tok := range tokens {
		switch tok {
		case "[":
			depth++
		case "]":
			if depth--; depth == 0 {
				if i == 0 {
					return "", i + 1, errEmptyMacro
				}
				return strings.Join(tokens[:i], " "), i + 1, nil
			}
		}
	}
	return "", len(tokens), errUnbalanced
}

// splitMacro tokenizes a macro body for evaluation.
func splitMacro(body string) []string { return strings.Fields(body) }

// splitLine tokenizes a line of program text, dropping any # comment.
func splitLine(text string) []string {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	return strings.Fields(text)
}

var comparisons = map[string]func(c int) bool{
	">":  func(c int) bool { return c > 0 },
	"<":  func(c int) bool { return c < 0 },
	"=":  func(c int) bool { return c == 0 },
	"!=": func(c int) bool { return c != 0 },
	">=": func(c int) bool { return c >= 0 },
	"<=": func(c int) bool { return c <= 0 },
}

// parseConditional matches a comparison operator followed by exactly one
// register name.
func parseConditional(tok string) (cmp string, name rune, ok bool) {
	runes := []rune(tok)
	switch len(runes) {
	case 2:
		cmp = string(runes[:1])
	case 3:
		cmp = string(runes[:2])
	default:
		return "", 0, false
	}
	if _, ok = comparisons[cmp]; !ok {
		return "", 0, false
	}
	return cmp, runes[len(runes)-1], true
}

// parseCommand matches one of the command runes followed by exactly one
// register name.
func parseCommand(tok, commands string) (cmd, name rune, ok bool) {
	cmd, n := utf8.DecodeRuneInString(tok)
	if n == 0 || !strings.ContainsRune(commands, cmd) {
		return 0, 0, false
	}
	name, m := utf8.DecodeRuneInString(tok[n:])
	if m == 0 || n+m != len(tok) {
		return 0, 0, false
	}
	return cmd, name, true
}

// conditional pops the two top values and runs the macro on top of the named
// register when "top cmp second" holds. Non-numeric operands make it a no-op.
func (vm *VM) conditional(cmp string, name rune) error {
	if vm.stack.Len() < 2 {
		return errTwoElements
	}
	reg, ok := vm.regs.Get(name)
	if !ok {
		return undefinedRegisterError(name)
	}
	if reg.Empty() {
		return emptyRegisterError(name)
	}

	vm.stack.Snapshot()
	head, second := vm.stack.Pop(), vm.stack.Pop()
	body := reg.Peek()

	x, xok := parseNumber(head)
	y, yok := parseNumber(second)
	if !xok || !yok {
		vm.logf("cond", "skip non-numeric %q %q", head, second)
		return nil
	}
	if !comparisons[cmp](x.Cmp(y)) {
		return nil
	}
	return vm.eval(splitMacro(body))
}

func (vm *VM) registerCommand(cmd, name rune) error {
	switch cmd {
	case 's':
		if vm.stack.Empty() {
			return errEmptyStack
		}
		reg := vm.regs.GetOrCreate(name)
		val := vm.stack.Pop()
		if reg.Empty() {
			reg.Push(val)
		} else {
			reg.Set(val)
		}

	case 'S':
		if vm.stack.Empty() {
			return errEmptyStack
		}
		vm.regs.GetOrCreate(name).Push(vm.stack.Pop())

	case 'L':
		reg, ok := vm.regs.Get(name)
		if !ok {
			return undefinedRegisterError(name)
		}
		if reg.Empty() {
			return emptyRegisterError(name)
		}
		vm.stack.Push(reg.Pop())

	case 'l':
		if reg, ok := vm.regs.Get(name); ok && !reg.Empty() {
			vm.stack.Push(reg.Peek())
		} else {
			vm.stack.Push("0")
		}

	case 'c':
		vm.regs.Erase(name)

	case 'z':
		depth := 0
		if reg, ok := vm.regs.Get(name); ok {
			depth = reg.Len()
		}
		vm.stack.Push(strconv.Itoa(depth))
	}
	return nil
}

// arrayCommand runs the array store (:) and load (;) commands. Operands are
// only popped once the access succeeds; a bad index or access leaves them on
// the stack.
func (vm *VM) arrayCommand(cmd, name rune) error {
	switch cmd {
	case ':':
		if vm.stack.Len() < 2 {
			return errTwoValues
		}
		index, ok := parseInteger(vm.stack.Peek())
		if !ok {
			return errArrayIndex
		}
		_, existed := vm.regs.Get(name)
		reg := vm.regs.GetOrCreate(name)
		if err := reg.Array.Stor(index, vm.stack.Top(1)); err != nil {
			if !existed {
				vm.regs.Erase(name)
			}
			return err
		}
		vm.stack.Pop()
		vm.stack.Pop()

	case ';':
		if vm.stack.Empty() {
			return errOneValue
		}
		index, ok := parseInteger(vm.stack.Peek())
		if !ok {
			return errArrayIndex
		}
		reg, ok := vm.regs.Get(name)
		if !ok {
			return undefinedRegisterError(name)
		}
		if reg.Array.Len() == 0 {
			return emptyArrayError(name)
		}
		val, err := reg.Array.Load(index)
		if isLimitError(err) || (err == nil && val == "") {
			return arrayAccessError{name, index}
		} else if err != nil {
			return err
		}
		vm.stack.Pop()
		vm.stack.Push(val)
	}
	return nil
}

func isLimitError(err error) bool {
	_, is := err.(mem.LimitError)
	return is
}

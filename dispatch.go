package main

import "sort"

// Operation is one unit of vocabulary; it may only act through the stack,
// parameters and registers it is given.
type Operation interface {
	Exec(st *Stack, params *Params, regs *Registers) error
}

// OperationFunc adapts a function to the Operation interface.
type OperationFunc func(st *Stack, params *Params, regs *Registers) error

func (f OperationFunc) Exec(st *Stack, params *Params, regs *Registers) error {
	return f(st, params, regs)
}

// Dispatch maps a token to a constructor for its Operation.
type Dispatch map[string]func() Operation

func (d Dispatch) Lookup(token string) (Operation, bool) {
	if newOp, ok := d[token]; ok {
		return newOp(), true
	}
	return nil, false
}

// Merge adds all of other's entries, replacing any with the same token.
func (d Dispatch) Merge(other Dispatch) Dispatch {
	for token, newOp := range other {
		d[token] = newOp
	}
	return d
}

// Tokens returns every defined token, sorted.
func (d Dispatch) Tokens() []string {
	tokens := make([]string, 0, len(d))
	for token := range d {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

func op(f OperationFunc) func() Operation {
	return func() Operation { return f }
}

// builtinOps holds the operations that need nothing beyond their handles.
var builtinOps = Dispatch{}

func init() {
	builtinOps.Merge(mathOps)
	builtinOps.Merge(bitwiseOps)
	builtinOps.Merge(statsOps)
	builtinOps.Merge(stackOps)
	builtinOps.Merge(paramOps)
}

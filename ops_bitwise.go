package main

import (
	"math/big"
	"strconv"
)

var bitwiseOps = Dispatch{
	"{": bitwise("{", func(lhs, rhs uint64) uint64 { return lhs & rhs }),
	"}": bitwise("}", func(lhs, rhs uint64) uint64 { return lhs | rhs }),
	"L": bitwise("L", func(lhs, rhs uint64) uint64 { return lhs ^ rhs }),
	"m": bitwise("m", func(lhs, rhs uint64) uint64 { return lhs << rhs }),
	"M": bitwise("M", func(lhs, rhs uint64) uint64 { return lhs >> rhs }),
	"l": op(bitwiseNot),
}

// bitwise builds a binary operation over 64-bit unsigned words; shifts take
// their amount from the top of the stack.
func bitwise(tok string, f func(lhs, rhs uint64) uint64) func() Operation {
	return op(func(st *Stack, params *Params, _ *Registers) error {
		if st.Len() < 2 {
			return arityError{op: tok, n: 2}
		}
		rhs, rerr := strconv.ParseUint(st.Top(0), 10, 64)
		lhs, lerr := strconv.ParseUint(st.Top(1), 10, 64)
		if rerr != nil || lerr != nil {
			return typeError{tok, "non-negative integer"}
		}
		consume(st, 2)
		st.Push(formatInteger(new(big.Int).SetUint64(f(lhs, rhs)), params.Precision))
		return nil
	})
}

func bitwiseNot(st *Stack, params *Params, _ *Registers) error {
	if st.Len() < 1 {
		return arityError{op: "l", n: 1}
	}
	n, err := strconv.ParseInt(st.Peek(), 10, 64)
	if err != nil {
		return typeError{"l", "integer"}
	}
	consume(st, 1)
	st.Push(formatInteger(big.NewInt(^n), params.Precision))
	return nil
}

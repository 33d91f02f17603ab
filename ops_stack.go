package main

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

var stackOps = Dispatch{
	"c": op(func(st *Stack, _ *Params, _ *Registers) error {
		st.Clear()
		return nil
	}),

	"R": op(func(st *Stack, _ *Params, _ *Registers) error {
		if st.Empty() {
			return errDropEmpty
		}
		st.Pop()
		return nil
	}),

	"r": op(func(st *Stack, _ *Params, _ *Registers) error {
		if st.Len() < 2 {
			return errSwapTwo
		}
		x, y := st.Pop(), st.Pop()
		st.Push(x, y)
		return nil
	}),

	"d": op(func(st *Stack, _ *Params, _ *Registers) error {
		if st.Empty() {
			return errDupOne
		}
		st.Push(st.Peek())
		return nil
	}),

	"Z": op(func(st *Stack, _ *Params, _ *Registers) error {
		if st.Empty() {
			return errLenEmpty
		}
		st.Set(strconv.Itoa(valueLength(st.Peek())))
		return nil
	}),

	"z": op(func(st *Stack, _ *Params, _ *Registers) error {
		st.Push(strconv.Itoa(st.Len()))
		return nil
	}),

	".x": lastValue((*Stack).LastX),
	".y": lastValue((*Stack).LastY),
	".z": lastValue((*Stack).LastZ),
}

// valueLength counts the digits of a number, its sign, point and exponent
// excluded, or the characters of any other value.
func valueLength(value string) int {
	if !isNumber(value) {
		return utf8.RuneCountInString(value)
	}
	if i := strings.IndexAny(value, "eE"); i >= 0 {
		value = value[:i]
	}
	n := 0
	for _, r := range value {
		if '0' <= r && r <= '9' {
			n++
		}
	}
	return n
}

func lastValue(last func(*Stack) string) func() Operation {
	return op(func(st *Stack, _ *Params, _ *Registers) error {
		val := last(st)
		if val == "" {
			val = "0"
		}
		st.Push(val)
		return nil
	})
}

var paramOps = Dispatch{
	"k": setParam("k", errPrecision, (*Params).SetPrecision),
	"i": setParam("i", errInputRadix, (*Params).SetIRadix),
	"o": setParam("o", errOutputRadix, (*Params).SetORadix),

	"K": getParam(func(p *Params) int { return int(p.Precision) }),
	"I": getParam(func(p *Params) int { return p.IRadix }),
	"O": getParam(func(p *Params) int { return p.ORadix }),
}

func setParam(tok string, invalid error, set func(*Params, int) error) func() Operation {
	return op(func(st *Stack, params *Params, _ *Registers) error {
		if st.Empty() {
			return arityError{op: tok, n: 1}
		}
		n, ok := parseInteger(st.Peek())
		if !ok {
			return invalid
		}
		if err := set(params, n); err != nil {
			return err
		}
		consume(st, 1)
		return nil
	})
}

func getParam(get func(*Params) int) func() Operation {
	return op(func(st *Stack, params *Params, _ *Registers) error {
		st.Push(strconv.Itoa(get(params)))
		return nil
	})
}

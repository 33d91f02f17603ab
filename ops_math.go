package main

import (
	"math"
	"math/big"
	"math/cmplx"
	"math/rand"

	"github.com/shopspring/decimal"
)

const (
	// maxExactExponent bounds the integer powers computed exactly; larger
	// ones fall back to floating point.
	maxExactExponent = 4096

	// maxFactorial bounds the arguments of factorials and permutations.
	maxFactorial = 100000
)

var (
	decimalPi = decimal.RequireFromString("3.14159265358979323846264338327950288419716939937510")
	decimalE  = decimal.RequireFromString("2.71828182845904523536028747135266249775724709369995")

	one = decimal.NewFromInt(1)
)

var mathOps = Dispatch{
	"+": arith("+",
		func(lhs, rhs decimal.Decimal, _ uint) (decimal.Decimal, error) { return lhs.Add(rhs), nil },
		func(lhs, rhs complex128) (complex128, error) { return lhs + rhs, nil }),
	"-": arith("-",
		func(lhs, rhs decimal.Decimal, _ uint) (decimal.Decimal, error) { return lhs.Sub(rhs), nil },
		func(lhs, rhs complex128) (complex128, error) { return lhs - rhs, nil }),
	"*": arith("*",
		func(lhs, rhs decimal.Decimal, _ uint) (decimal.Decimal, error) { return lhs.Mul(rhs), nil },
		func(lhs, rhs complex128) (complex128, error) { return lhs * rhs, nil }),
	"/": arith("/",
		func(lhs, rhs decimal.Decimal, precision uint) (decimal.Decimal, error) {
			if rhs.IsZero() {
				return lhs, errDivideByZero
			}
			return divide(lhs, rhs, precision), nil
		},
		func(lhs, rhs complex128) (complex128, error) {
			if rhs == 0 {
				return lhs, errDivideByZero
			}
			return lhs / rhs, nil
		}),
	"%": arith("%",
		func(lhs, rhs decimal.Decimal, _ uint) (decimal.Decimal, error) {
			if rhs.Truncate(0).IsZero() {
				return lhs, errDivideByZero
			}
			return truncRem(lhs, rhs), nil
		}, nil),

	"~": op(divMod),
	"|": op(modExp),
	"^": op(pow),
	"v": op(sqrt),
	"!": op(factorial),

	"sin":  unary("sin", math.Sin, cmplx.Sin),
	"cos":  unary("cos", math.Cos, cmplx.Cos),
	"tan":  unary("tan", math.Tan, cmplx.Tan),
	"asin": unary("asin", math.Asin, nil),
	"acos": unary("acos", math.Acos, nil),
	"atan": unary("atan", math.Atan, nil),
	"y":    unary("y", math.Log10, cmplx.Log10),

	"pi": constant(decimalPi),
	"e":  constant(decimalE),

	"@": op(random),
	"$": op(truncate),

	"b":  op(toComplex),
	"re": complexPart("re", func(re, _ decimal.Decimal) decimal.Decimal { return re }),
	"im": complexPart("im", func(_, im decimal.Decimal) decimal.Decimal { return im }),
}

// consume snapshots the stack, then pops n values, returning them bottom
// first.
func consume(st *Stack, n int) []string {
	st.Snapshot()
	vals := make([]string, n)
	for i := n - 1; i >= 0; i-- {
		vals[i] = st.Pop()
	}
	return vals
}

// arith builds a binary operation over the top two values, computed exactly
// for numbers, or with cpx when either operand is complex (if cpx is given).
func arith(
	tok string,
	dec func(lhs, rhs decimal.Decimal, precision uint) (decimal.Decimal, error),
	cpx func(lhs, rhs complex128) (complex128, error),
) func() Operation {
	return op(func(st *Stack, params *Params, _ *Registers) error {
		if st.Len() < 2 {
			return arityError{op: tok, n: 2}
		}
		x, y := st.Top(0), st.Top(1)

		lhs, lok := parseNumber(y)
		rhs, rok := parseNumber(x)
		if lok && rok {
			res, err := dec(lhs, rhs, params.Precision)
			if err != nil {
				return err
			}
			consume(st, 2)
			st.Push(formatNumber(res, params.Precision))
			return nil
		}

		if cpx != nil && (isComplex(x) || isComplex(y)) {
			lhs, lok := parseComplex(y)
			rhs, rok := parseComplex(x)
			if lok && rok {
				res, err := cpx(lhs, rhs)
				if err != nil {
					return err
				}
				s, err := formatComplex(tok, res, params.Precision)
				if err != nil {
					return err
				}
				consume(st, 2)
				st.Push(s)
				return nil
			}
		}

		return typeError{tok, "numeric"}
	})
}

// unary builds an operation computing f over a number, or c over a complex
// value (if c is given).
func unary(tok string, f func(float64) float64, c func(complex128) complex128) func() Operation {
	return op(func(st *Stack, params *Params, _ *Registers) error {
		if st.Len() < 1 {
			return arityError{op: tok, n: 1, noun: unaryNoun(tok)}
		}
		x := st.Peek()

		var res string
		var err error
		if d, ok := parseNumber(x); ok {
			res, err = formatFloat(tok, f(d.InexactFloat64()), params.Precision)
		} else if cv, ok := parseComplexLiteral(x); ok && c != nil {
			res, err = formatComplex(tok, c(cv), params.Precision)
		} else {
			return typeError{tok, "numeric"}
		}
		if err != nil {
			return err
		}

		consume(st, 1)
		st.Push(res)
		return nil
	})
}

func unaryNoun(tok string) string {
	if tok == "y" {
		return "value"
	}
	return "operand"
}

func constant(d decimal.Decimal) func() Operation {
	return op(func(st *Stack, params *Params, _ *Registers) error {
		st.Push(formatNumber(d, params.Precision))
		return nil
	})
}

// truncRem is the remainder of the truncated integer parts of lhs and rhs,
// taking the sign of lhs.
func truncRem(lhs, rhs decimal.Decimal) decimal.Decimal {
	a, b := lhs.Truncate(0).BigInt(), rhs.Truncate(0).BigInt()
	return decimal.NewFromBigInt(new(big.Int).Rem(a, b), 0)
}

func divMod(st *Stack, params *Params, _ *Registers) error {
	if st.Len() < 2 {
		return arityError{op: "~", n: 2}
	}
	divisor, dok := parseNumber(st.Top(0))
	dividend, nok := parseNumber(st.Top(1))
	if !dok || !nok {
		return typeError{"~", "numeric"}
	}
	if divisor.Truncate(0).IsZero() {
		return errDivideByZero
	}
	quo, _ := dividend.QuoRem(divisor, 0)
	consume(st, 2)
	st.Push(
		formatNumber(quo, params.Precision),
		formatNumber(truncRem(dividend, divisor), params.Precision),
	)
	return nil
}

// modExp computes base ^ exponent mod modulus, the modulus being on top of
// the stack, then the exponent, then the base.
func modExp(st *Stack, params *Params, _ *Registers) error {
	if st.Len() < 3 {
		return arityError{op: "|", n: 3}
	}
	modulus, mok := parseBigInteger(st.Top(0))
	exponent, eok := parseBigInteger(st.Top(1))
	base, bok := parseBigInteger(st.Top(2))
	if !mok || !eok || !bok {
		return typeError{"|", "integer"}
	}

	var res big.Int
	switch {
	case modulus.CmpAbs(big.NewInt(1)) == 0:
	case modulus.Sign() == 0:
		return errModulusZero
	case exponent.Sign() < 0:
		return errNegativeExp
	default:
		res.Exp(base, exponent, new(big.Int).Abs(modulus))
	}

	consume(st, 3)
	st.Push(formatInteger(&res, params.Precision))
	return nil
}

// pow raises the second value to the power of the top one; negative bases
// with fractional exponents yield complex results.
func pow(st *Stack, params *Params, _ *Registers) error {
	if st.Len() < 2 {
		return arityError{op: "^", n: 2}
	}
	x, y := st.Top(0), st.Top(1)

	var res string
	var err error
	exp, eok := parseNumber(x)
	base, bok := parseNumber(y)
	switch {
	case eok && bok:
		res, err = power(base, exp, params.Precision)
	case isComplex(x) || isComplex(y):
		b, bok := parseComplex(y)
		e, eok := parseComplex(x)
		if !bok || !eok {
			return typeError{"^", "numeric"}
		}
		res, err = formatComplex("^", cmplx.Pow(b, e), params.Precision)
	default:
		return typeError{"^", "numeric"}
	}
	if err != nil {
		return err
	}

	consume(st, 2)
	st.Push(res)
	return nil
}

func power(base, exp decimal.Decimal, precision uint) (string, error) {
	if exp.IsInteger() && exp.Abs().LessThanOrEqual(decimal.NewFromInt(maxExactExponent)) {
		n := exp.IntPart()
		if n < 0 && base.IsZero() {
			return "", errDivideByZero
		}
		return formatNumber(powInt(base, n, precision), precision), nil
	}

	b, e := base.InexactFloat64(), exp.InexactFloat64()
	if b >= 0 || exp.IsInteger() {
		return formatFloat("^", math.Pow(b, e), precision)
	}
	c := cmplx.Pow(complex(b, 0), complex(e, 0))
	if imag(c) == 0 {
		return formatFloat("^", real(c), precision)
	}
	return formatComplex("^", c, precision)
}

// powInt computes base^n exactly by repeated squaring; negative powers are
// divided out at the end, to precision digits.
func powInt(base decimal.Decimal, n int64, precision uint) decimal.Decimal {
	neg := n < 0
	if neg {
		n = -n
	}
	res := one
	for n > 0 {
		if n&1 == 1 {
			res = res.Mul(base)
		}
		if n >>= 1; n > 0 {
			base = base.Mul(base)
		}
	}
	if neg {
		return divide(one, res, precision)
	}
	return res
}

// sqrt takes the square root of the top value; negative and complex values
// yield complex results.
func sqrt(st *Stack, params *Params, _ *Registers) error {
	if st.Len() < 1 {
		return arityError{op: "v", n: 1}
	}
	x := st.Peek()

	var res string
	if d, ok := parseNumber(x); ok && !d.IsNegative() {
		res = formatNumber(sqrtDecimal(d, params.Precision), params.Precision)
	} else if c, ok := parseComplex(x); ok {
		var err error
		if res, err = formatComplex("v", cmplx.Sqrt(c), params.Precision); err != nil {
			return err
		}
	} else {
		return typeError{"v", "numeric"}
	}

	consume(st, 1)
	st.Push(res)
	return nil
}

// sqrtDecimal computes the square root of a non-negative d to well beyond
// the output precision.
func sqrtDecimal(d decimal.Decimal, precision uint) decimal.Decimal {
	digits := int(precision) + divisionGuard
	if digits < 40 {
		digits = 40
	}
	bits := uint(digits)*4 + 64
	f, _, err := big.ParseFloat(d.String(), 10, bits, big.ToNearestEven)
	if err != nil {
		return decimal.NewFromFloat(math.Sqrt(d.InexactFloat64()))
	}
	root := new(big.Float).SetPrec(bits).Sqrt(f)
	res, err := decimal.NewFromString(root.Text('f', digits))
	if err != nil {
		return decimal.NewFromFloat(math.Sqrt(d.InexactFloat64()))
	}
	// drop the last digit, which carries the rounding error
	return res.Truncate(int32(digits - 1))
}

func factorial(st *Stack, params *Params, _ *Registers) error {
	if st.Len() < 1 {
		return arityError{op: "!", n: 1}
	}
	d, ok := parseNumber(st.Peek())
	if !ok {
		return typeError{"!", "numeric"}
	}
	if d.IsNegative() {
		return negativeError("!")
	}
	if d.GreaterThan(decimal.NewFromInt(maxFactorial)) {
		return domainError("!")
	}

	consume(st, 1)
	var res big.Int
	res.MulRange(1, d.IntPart())
	st.Push(formatInteger(&res, params.Precision))
	return nil
}

// random draws a number uniformly between the second value (lower bound) and
// the top one (upper bound).
func random(st *Stack, params *Params, _ *Registers) error {
	if st.Len() < 2 {
		return arityError{op: "@", n: 2}
	}
	hi, hok := parseNumber(st.Top(0))
	lo, lok := parseNumber(st.Top(1))
	if !hok || !lok {
		return typeError{"@", "numeric"}
	}
	l, h := lo.InexactFloat64(), hi.InexactFloat64()
	res, err := formatFloat("@", l+rand.Float64()*(h-l), params.Precision)
	if err != nil {
		return err
	}
	consume(st, 2)
	st.Push(res)
	return nil
}

func truncate(st *Stack, params *Params, _ *Registers) error {
	if st.Len() < 1 {
		return arityError{op: "$", n: 1}
	}
	d, ok := parseNumber(st.Peek())
	if !ok {
		return typeError{"$", "numeric"}
	}
	consume(st, 1)
	st.Push(formatNumber(d.Truncate(0), params.Precision))
	return nil
}

// toComplex builds "(re,im)" from the real part (second value) and the
// imaginary part (top value).
func toComplex(st *Stack, params *Params, _ *Registers) error {
	if st.Len() < 2 {
		return arityError{op: "b", n: 2, noun: "value"}
	}
	im, iok := parseNumber(st.Top(0))
	re, rok := parseNumber(st.Top(1))
	if !iok || !rok {
		return typeError{"b", "numeric"}
	}
	consume(st, 2)
	st.Push("(" + formatNumber(re, params.Precision) + "," + formatNumber(im, params.Precision) + ")")
	return nil
}

func complexPart(tok string, part func(re, im decimal.Decimal) decimal.Decimal) func() Operation {
	return op(func(st *Stack, params *Params, _ *Registers) error {
		if st.Len() < 1 {
			return arityError{op: tok, n: 1, noun: "value"}
		}
		re, im, ok := complexParts(st.Peek())
		if !ok {
			return typeError{tok, "complex"}
		}
		consume(st, 1)
		st.Push(formatNumber(part(re, im), params.Precision))
		return nil
	})
}

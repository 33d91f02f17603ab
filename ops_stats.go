package main

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Statistics run over the private stacks of these registers.
const (
	statsX = 'X'
	statsY = 'Y'
)

var statsOps = Dispatch{
	"gP": op(permutations),
	"gC": op(combinations),

	"gs": sampleStat("gs", func(xs []decimal.Decimal, _ uint) (decimal.Decimal, error) {
		return sum(xs), nil
	}),
	"gS": sampleStat("gS", func(xs []decimal.Decimal, _ uint) (decimal.Decimal, error) {
		return sumSquares(xs), nil
	}),
	"gM": sampleStat("gM", func(xs []decimal.Decimal, precision uint) (decimal.Decimal, error) {
		return mean(xs, precision), nil
	}),
	"gD": sampleStat("gD", stdDev),

	"gL": op(linearRegression),
}

// integerPair checks for, without popping, two integer operands.
func integerPair(st *Stack, tok string) (head, second int64, err error) {
	if st.Len() < 2 {
		return 0, 0, arityError{op: tok, n: 2}
	}
	h, hok := parseBigInteger(st.Top(0))
	s, sok := parseBigInteger(st.Top(1))
	if !hok || !sok || !h.IsInt64() || !s.IsInt64() {
		return 0, 0, typeError{tok, "integer"}
	}
	return h.Int64(), s.Int64(), nil
}

// permutations computes P(n, k), k being on top of the stack.
func permutations(st *Stack, params *Params, _ *Registers) error {
	k, n, err := integerPair(st, "gP")
	if err != nil {
		return err
	}
	if n < 0 || k < 0 || n-k < 0 || n > maxFactorial {
		return positiveError("gP")
	}
	consume(st, 2)
	var res big.Int
	res.MulRange(n-k+1, n)
	st.Push(formatInteger(&res, params.Precision))
	return nil
}

// combinations computes C(n, k), k being on top of the stack.
func combinations(st *Stack, params *Params, _ *Registers) error {
	k, n, err := integerPair(st, "gC")
	if err != nil {
		return err
	}
	if n < 0 || k < 0 || k > n {
		return positiveError("gC")
	}
	consume(st, 2)
	var res big.Int
	res.Binomial(n, k)
	st.Push(formatInteger(&res, params.Precision))
	return nil
}

// registerSample returns the numbers on a register's stack, bottom first.
func registerSample(regs *Registers, name rune, tok string) ([]decimal.Decimal, error) {
	reg, ok := regs.Get(name)
	if !ok {
		return nil, undefinedRegisterError(name)
	}
	if reg.Empty() {
		return nil, emptyRegisterError(name)
	}
	xs := make([]decimal.Decimal, reg.Len())
	for i := range xs {
		if xs[i], ok = parseNumber(reg.At(i)); !ok {
			return nil, typeError{tok, "numeric"}
		}
	}
	return xs, nil
}

func sampleStat(tok string, stat func(xs []decimal.Decimal, precision uint) (decimal.Decimal, error)) func() Operation {
	return op(func(st *Stack, params *Params, regs *Registers) error {
		xs, err := registerSample(regs, statsX, tok)
		if err != nil {
			return err
		}
		res, err := stat(xs, params.Precision)
		if err != nil {
			return err
		}
		st.Push(formatNumber(res, params.Precision))
		return nil
	})
}

func sum(xs []decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, xs...)
}

func sumSquares(xs []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, x := range xs {
		total = total.Add(x.Mul(x))
	}
	return total
}

func mean(xs []decimal.Decimal, precision uint) decimal.Decimal {
	return divide(sum(xs), decimal.NewFromInt(int64(len(xs))), precision)
}

// stdDev is the sample standard deviation.
func stdDev(xs []decimal.Decimal, precision uint) (decimal.Decimal, error) {
	if len(xs) < 2 {
		return decimal.Zero, domainError("gD")
	}
	// n*sum(x^2) - sum(x)^2 over n*(n-1), exact up to the final division
	n := decimal.NewFromInt(int64(len(xs)))
	sumX := sum(xs)
	dev := n.Mul(sumSquares(xs)).Sub(sumX.Mul(sumX))
	variance := divide(dev, n.Mul(n.Sub(one)), precision+divisionGuard)
	return sqrtDecimal(variance, precision), nil
}

// linearRegression fits Y = slope*X + intercept by least squares, pushing
// the slope and then the intercept.
func linearRegression(st *Stack, params *Params, regs *Registers) error {
	xs, err := registerSample(regs, statsX, "gL")
	if err != nil {
		return err
	}
	ys, err := registerSample(regs, statsY, "gL")
	if err != nil {
		return err
	}
	if len(xs) != len(ys) {
		return errSameLength
	}

	n := decimal.NewFromInt(int64(len(xs)))
	sumX, sumY := sum(xs), sum(ys)
	sumXY := decimal.Zero
	for i := range xs {
		sumXY = sumXY.Add(xs[i].Mul(ys[i]))
	}

	denom := n.Mul(sumSquares(xs)).Sub(sumX.Mul(sumX))
	if denom.IsZero() {
		return domainError("gL")
	}
	slope := divide(n.Mul(sumXY).Sub(sumX.Mul(sumY)), denom, params.Precision)
	intercept := divide(sumY.Mul(sumSquares(xs)).Sub(sumX.Mul(sumXY)), denom, params.Precision)

	st.Push(formatNumber(slope, params.Precision), formatNumber(intercept, params.Precision))
	return nil
}

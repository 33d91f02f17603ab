package main

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// isNumber reports whether a value is a (decimal) number; every value that is
// not is treated as a string, and thus as a macro body.
func isNumber(value string) bool {
	_, err := decimal.NewFromString(value)
	return err == nil
}

func parseNumber(value string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(value)
	return d, err == nil
}

// isInteger reports whether a value is a plain base-10 integer, without any
// fractional part or exponent.
func isInteger(value string) bool {
	_, err := strconv.Atoi(value)
	return err == nil
}

func parseInteger(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	return n, err == nil
}

func parseBigInteger(value string) (*big.Int, bool) {
	return new(big.Int).SetString(value, 10)
}

// formatNumber formats d with exactly precision fractional digits, except
// that a zero precision never hides a non-zero fraction: such values get two
// digits instead.
func formatNumber(d decimal.Decimal, precision uint) string {
	if precision == 0 && !d.IsInteger() {
		precision = 2
	}
	return d.StringFixed(int32(precision))
}

// divisionGuard is how many digits past the output precision inexact
// divisions keep.
const divisionGuard = 16

// divide computes lhs / rhs truncated to precision plus divisionGuard
// fractional digits, so that rounding it to precision is exact.
func divide(lhs, rhs decimal.Decimal, precision uint) decimal.Decimal {
	quo, _ := lhs.QuoRem(rhs, int32(precision)+divisionGuard)
	return quo
}

// formatFloat is formatNumber for results computed in floating point, which
// fails on infinities and NaNs.
func formatFloat(op string, f float64, precision uint) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", domainError(op)
	}
	return formatNumber(decimal.NewFromFloat(f), precision), nil
}

// isComplex reports whether a value is a complex number, written "(re,im)".
func isComplex(value string) bool {
	_, ok := parseComplexLiteral(value)
	return ok
}

func parseComplexLiteral(value string) (complex128, bool) {
	re, im, ok := complexParts(value)
	if !ok {
		return 0, false
	}
	return complex(re.InexactFloat64(), im.InexactFloat64()), true
}

// complexParts splits a "(re,im)" value into its parts.
func complexParts(value string) (re, im decimal.Decimal, ok bool) {
	if len(value) < 2 || value[0] != '(' || value[len(value)-1] != ')' {
		return re, im, false
	}
	parts := strings.Split(value[1:len(value)-1], ",")
	if len(parts) != 2 {
		return re, im, false
	}
	if re, ok = parseNumber(parts[0]); !ok {
		return re, im, false
	}
	im, ok = parseNumber(parts[1])
	return re, im, ok
}

// parseComplex parses either a complex value or a real number, the latter
// having no imaginary part.
func parseComplex(value string) (complex128, bool) {
	if c, ok := parseComplexLiteral(value); ok {
		return c, true
	}
	if d, ok := parseNumber(value); ok {
		return complex(d.InexactFloat64(), 0), true
	}
	return 0, false
}

// formatInteger formats an exact integer result.
func formatInteger(n *big.Int, precision uint) string {
	return formatNumber(decimal.NewFromBigInt(n, 0), precision)
}

func formatComplex(op string, c complex128, precision uint) (string, error) {
	re, err := formatFloat(op, real(c), precision)
	if err != nil {
		return "", err
	}
	im, err := formatFloat(op, imag(c), precision)
	if err != nil {
		return "", err
	}
	return "(" + re + "," + im + ")", nil
}

// parseRadixLiteral converts a literal written in base radix into its base-10
// value; only integers are supported, written either in base 10 notation or
// with the digits 0-9 and A-F.
func parseRadixLiteral(token string, radix int) (string, error) {
	if !isInteger(token) && !isRadixDigits(token) {
		return "", errIntegersOnly
	}
	var n big.Int
	if _, ok := n.SetString(token, radix); !ok {
		return "", radixError{token, radix}
	}
	return n.String(), nil
}

func isRadixDigits(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !('0' <= r && r <= '9' || 'A' <= r && r <= 'F') {
			return false
		}
	}
	return true
}

// formatRadix formats integer values in the given output radix; any other
// value is returned unchanged.
func formatRadix(value string, radix int) string {
	if radix == 10 {
		return value
	}
	n, ok := parseBigInteger(value)
	if !ok {
		return value
	}
	return strings.ToUpper(n.Text(radix))
}

package main

import (
	"errors"
	"fmt"

	"github.com/ceticamarco/dc/internal/fileinput"
)

var (
	errQuit = errors.New("quit")

	errUnrecognized  = errors.New("Unrecognized option")
	errUnbalanced    = errors.New("Unbalanced parenthesis")
	errEmptyMacro    = errors.New("Empty macro")
	errIntegersOnly  = errors.New("This input base supports integers only")
	errStdinRead     = errors.New("Error while reading from stdin")
	errEmptyStack    = errors.New("This operation does not work on empty stack")
	errTwoElements   = errors.New("This operation requires two elements")
	errTwoValues     = errors.New("This operation requires two values")
	errOneValue      = errors.New("This operation requires one value")
	errArrayIndex    = errors.New("Array index must be an integer")
	errPrintEmpty    = errors.New("Cannot print empty stack")
	errDivideByZero  = errors.New("Cannot divide by zero")
	errModulusZero   = errors.New("Modulus cannot be zero")
	errNegativeExp   = errors.New("Exponent cannot be negative")
	errSameLength    = errors.New("'X' and 'Y' registers must be of the same length")
	errPrecision     = errors.New("'k' requires non-negative integers")
	errInputRadix    = errors.New("Input base must be between 2 and 16")
	errOutputRadix   = errors.New("Output base must be 2, 8, 10 or 16")
	errStackUnderrun = errors.New("stack underrun")
)

var arityNames = [...]string{"no", "one", "two", "three"}

// arityError reports an operation given fewer values than it needs.
type arityError struct {
	op   string
	n    int
	noun string
}

func (err arityError) Error() string {
	noun := err.noun
	if noun == "" {
		noun = "operand"
	}
	if err.n != 1 {
		noun += "s"
	}
	return fmt.Sprintf("'%v' requires %v %v", err.op, arityNames[err.n], noun)
}

// typeError reports an operand of the wrong kind.
type typeError struct {
	op   string
	kind string
}

func (err typeError) Error() string {
	return fmt.Sprintf("'%v' requires %v values", err.op, err.kind)
}

type domainError string

func (op domainError) Error() string { return fmt.Sprintf("'%v' domain error", string(op)) }

type undefinedRegisterError rune
type emptyRegisterError rune
type emptyArrayError rune

func (name undefinedRegisterError) Error() string {
	return fmt.Sprintf("Register '%c' is undefined", rune(name))
}

func (name emptyRegisterError) Error() string {
	return fmt.Sprintf("The stack of register '%c' is empty", rune(name))
}

func (name emptyArrayError) Error() string {
	return fmt.Sprintf("The array of register '%c' is empty", rune(name))
}

type arrayAccessError struct {
	name  rune
	index int
}

func (err arrayAccessError) Error() string {
	return fmt.Sprintf("Cannot access %c[%v]", err.name, err.index)
}

type radixError struct {
	token string
	radix int
}

func (err radixError) Error() string {
	return fmt.Sprintf("Invalid number '%v' for input base %v", err.token, err.radix)
}

type sourceError struct {
	path string
	err  error
}

func (err sourceError) Error() string { return fmt.Sprintf("Cannot open source file %q", err.path) }
func (err sourceError) Unwrap() error { return err.err }

type depthError int

func (limit depthError) Error() string {
	return fmt.Sprintf("Macro nesting exceeds %v levels", int(limit))
}

// locationError attributes an error to the line of program text it came from.
type locationError struct {
	fileinput.Location
	err error
}

func (err locationError) Error() string { return fmt.Sprintf("%v: %v", err.Location, err.err) }
func (err locationError) Unwrap() error { return err.err }

var (
	errDropEmpty = errors.New("'R' does not work on empty stack")
	errSwapTwo   = errors.New("'r' requires two elements")
	errDupOne    = errors.New("'d' requires one element")
	errLenEmpty  = errors.New("'Z' does not work on empty stack")
)

type positiveError string

func (op positiveError) Error() string {
	return fmt.Sprintf("'%v' requires positive integers", string(op))
}

type negativeError string

func (op negativeError) Error() string {
	return fmt.Sprintf("'%v' is not defined for negative numbers", string(op))
}

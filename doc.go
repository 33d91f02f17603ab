/*
Package main implements dc, a reverse Polish desk calculator and stack language.

A program is a sequence of whitespace separated tokens. Every token either
names an operation, which consumes and produces values on the main stack, or
is a literal value pushed there. Values are untyped strings: anything that
parses as a decimal number is a number, anything else (most often a macro
body captured between [ and ]) is a string.

	$ dc -e '5 3 + p'
	8

Besides the main stack, the machine has registers, addressed by a single
character, each holding its own private stack and a sparse array of values
indexed by integers:

	sr  pop the main stack, overwrite the top of register r
	Sr  pop the main stack, push onto register r
	lr  copy the top of register r onto the main stack ("0" if there is none)
	Lr  move the top of register r onto the main stack
	cr  delete register r
	zr  push the depth of register r's stack
	:r  pop an index, then a value; store the value at r[index]
	;r  pop an index; push r[index]

Macros are the only control flow. [ ... ] pushes its (re-joined) tokens as a
single string value, x executes the value on top of the stack, and the
conditional commands >r <r =r >=r <=r !=r pop two numbers, compare the first
one popped against the second, and execute the top of register r when the
comparison holds:

	$ dc -e '[ p 1 - d 0 <l ] sl 3 ll x'
	3
	2
	1

Three parameters shape how numbers are read and written: the precision
(k, K), the input radix (i, I) and the output radix (o, O). Results are
formatted with exactly precision fractional digits, except that a precision of
zero never hides a fractional part; such values get two digits instead.

	$ dc -e '1 3 / p'
	0.33

Values consumed by most operations are remembered as "last x", "last y" and
"last z", which .x .y and .z push back.

Without -e or -f, lines are read from standard input; q ends the program.
*/
package main

// Package polish implements a floating-point calculator for Polish notation.
//
// Expressions are whitespace-separated tokens with each operator written
// before its operands: "+ 5 1" is 5 + 1, and "* + 5 1 2" is (5 + 1) * 2.
// The operators are + - * / and %, where % is the floating-point remainder.
// Arithmetic follows IEEE 754 double precision, so dividing by zero yields
// an infinity or NaN rather than an error.
//
// Every failure Eval can return is one of the four kinds of PolishError,
// so callers can switch on the error kind to decide their own messaging.
package polish

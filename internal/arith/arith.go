// Package arith provides the binary arithmetic operations offered by the calculator.
package arith

import "errors"

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("cannot divide by zero")

// Add returns the sum of two numbers.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns the difference of two numbers.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product of two numbers.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns the quotient of two numbers.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	return a / b, nil
}

// Package dispatch maps a menu selection to an arithmetic operation and
// renders the outcome as a printable equation.
package dispatch

import (
	"errors"
	"fmt"

	"github.com/sivchari/gocalc/internal/arith"
)

// DivisionByZeroMessage is the result text produced when dividing by zero.
const DivisionByZeroMessage = "Error: Cannot divide by zero"

// ErrInvalidOperation is returned for selectors outside 1-4.
var ErrInvalidOperation = errors.New("invalid operation")

// Dispatch applies the operation chosen by selector to a and b and
// returns the equation "a op b = result". Division by zero is reported
// through the returned text rather than as an error.
func Dispatch(selector int, a, b float64) (string, error) {
	op, ok := arith.Lookup(selector)
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrInvalidOperation, selector)
	}

	result, err := op.Apply(a, b)
	if err != nil {
		if errors.Is(err, arith.ErrDivisionByZero) {
			return DivisionByZeroMessage, nil
		}

		return "", fmt.Errorf("failed to apply %s: %w", op, err)
	}

	return Equation(op, a, b, result), nil
}

// Equation formats a computed operation for display.
func Equation(op arith.Operation, a, b, result float64) string {
	return fmt.Sprintf("%s %s %s = %s", FormatNumber(a), op.Symbol(), FormatNumber(b), FormatNumber(result))
}

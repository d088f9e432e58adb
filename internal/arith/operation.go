package arith

import "fmt"

// Operation identifies one of the four menu operations.
// Its value is the menu selector.
type Operation int

const (
	// OpAdd selects addition.
	OpAdd Operation = iota + 1
	// OpSubtract selects subtraction.
	OpSubtract
	// OpMultiply selects multiplication.
	OpMultiply
	// OpDivide selects division.
	OpDivide
)

// Operations returns every operation in menu order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// Lookup maps a menu selector to its operation.
func Lookup(selector int) (Operation, bool) {
	op := Operation(selector)
	if !op.Valid() {
		return 0, false
	}

	return op, true
}

// Valid reports whether op is one of the four defined operations.
func (op Operation) Valid() bool {
	return op >= OpAdd && op <= OpDivide
}

// Symbol returns the operator used when printing an equation.
func (op Operation) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// Name returns the lower-case name shown in the menu.
func (op Operation) Name() string {
	switch op {
	case OpAdd:
		return "addition"
	case OpSubtract:
		return "subtraction"
	case OpMultiply:
		return "multiplication"
	case OpDivide:
		return "division"
	default:
		return "unknown"
	}
}

// Apply evaluates op on a and b.
func (op Operation) Apply(a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	default:
		return 0, fmt.Errorf("unknown operation %d", int(op))
	}
}

// String implements fmt.Stringer.
func (op Operation) String() string {
	return op.Name()
}

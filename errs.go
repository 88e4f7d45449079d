package polish

import "strconv"

// PolishError is an error from evaluating an expression. The set of kinds is
// closed and the values carry no payload, so callers compare against the
// exported constants directly or with errors.Is.
type PolishError int

const (
	// ErrFailedCalculate indicates an operator token that is none of
	// + - * / %, or an expression that does not reduce to a single value.
	ErrFailedCalculate PolishError = iota + 1
	// ErrNotEnoughOperands indicates an operator reached with fewer than
	// two operands on the stack.
	ErrNotEnoughOperands
	// ErrUseUnavailableCharacter indicates a character outside Characters
	// anywhere in the input.
	ErrUseUnavailableCharacter
	// ErrNotEnteredExpression indicates an empty input string.
	ErrNotEnteredExpression
)

// Error returns the fixed single-line message for the kind. The message for
// ErrNotEnteredExpression keeps its historical spelling.
func (err PolishError) Error() string {
	switch err {
	case ErrFailedCalculate:
		return "failed calculate"
	case ErrNotEnoughOperands:
		return "not enough operands"
	case ErrUseUnavailableCharacter:
		return "use unavailable character"
	case ErrNotEnteredExpression:
		return "not entered exoression"
	default:
		panic("polish: invalid error kind " + err.String())
	}
}

func (err PolishError) String() string {
	switch err {
	case ErrFailedCalculate:
		return "FailedCalculate"
	case ErrNotEnoughOperands:
		return "NotEnoughOperands"
	case ErrUseUnavailableCharacter:
		return "UseUnavailableCharacter"
	case ErrNotEnteredExpression:
		return "NotEnteredExpression"
	default:
		return "PolishError(" + strconv.Itoa(int(err)) + ")"
	}
}

var _ error = PolishError(0)

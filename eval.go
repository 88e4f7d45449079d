package polish

import (
	"math"
	"strings"

	"github.com/go-logr/logr"
)

// evaluator holds the operand stack for a single call to Eval. Every call
// allocates its own, so there is no state shared between calls.
type evaluator struct {
	stack []float64
	log   logr.Logger
}

// EvalOption is an option used when evaluating an expression.
type EvalOption interface {
	evalOption()
}

type logopt struct {
	log logr.Logger
}

func (logopt) evalOption() {}

// WithLogger directs a trace of classified tokens to log at verbosity 1.
// Without it, the trace is discarded.
func WithLogger(log logr.Logger) EvalOption {
	return logopt{log}
}

// Eval evaluates an expression in Polish notation and returns its value.
// Tokens are separated by whitespace, operands are decimal literals, and
// operators are the symbols in Operators. Every error Eval returns is a
// PolishError.
//
// Eval is a pure function and is safe to call concurrently.
func Eval(expression string, opts ...EvalOption) (float64, error) {
	if err := validate(expression); err != nil {
		return 0, err
	}
	ev := evaluator{log: logr.Discard()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case logopt:
			ev.log = opt.log
		default:
			panic("polish: unknown option type")
		}
	}
	// Reading the tokens rightmost-first makes operands appear before the
	// operator that consumes them, so a single pass over a stack suffices
	// to reduce prefix notation.
	fields := strings.Fields(expression)
	for i := len(fields) - 1; i >= 0; i-- {
		tok, err := classify(fields[i])
		if err != nil {
			return 0, err
		}
		ev.log.V(1).Info("token", "kind", tok.kind.String(), "text", tok.text)
		switch tok.kind {
		case tokenOperand:
			ev.push(tok.num)
		case tokenOperator:
			if len(ev.stack) < 2 {
				return 0, ErrNotEnoughOperands
			}
			top := ev.pop()
			second := ev.pop()
			r, err := apply(top, second, tok.text)
			if err != nil {
				return 0, err
			}
			ev.push(r)
		default:
			panic("polish: invalid token kind " + tok.kind.String())
		}
	}
	if len(ev.stack) != 1 {
		return 0, ErrFailedCalculate
	}
	return ev.stack[0], nil
}

// apply combines two operands. The operand popped last from the reversed
// scan, top, is the left argument. Division and remainder follow IEEE 754,
// so a zero divisor yields an infinity or NaN, never an error.
func apply(top, second float64, op string) (float64, error) {
	switch op {
	case "+":
		return top + second, nil
	case "-":
		return top - second, nil
	case "*":
		return top * second, nil
	case "/":
		return top / second, nil
	case "%":
		return math.Mod(top, second), nil
	default:
		return 0, ErrFailedCalculate
	}
}

func (ev *evaluator) push(v float64) {
	ev.stack = append(ev.stack, v)
}

// pop removes the top of the stack and returns it. The caller checks depth.
func (ev *evaluator) pop() float64 {
	r := ev.stack[len(ev.stack)-1]
	ev.stack = ev.stack[:len(ev.stack)-1]
	return r
}

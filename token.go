package polish

import (
	"strconv"
	"strings"
)

// Characters contains the runes which may appear in an expression. The whole
// input is checked against this set before tokenizing, so a decimal point is
// rejected up front even though the numeric parser would accept one inside a
// token.
const Characters = "+-*/%0123456789 "

// Operators contains the symbols which reduce two operands to one value.
const Operators = "+-*/%"

type token struct {
	text string
	kind tokenKind
	num  float64
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenOperand is a numeric literal.
	tokenOperand
	// tokenOperator is a candidate operator symbol. Whether it is one of
	// Operators is decided at reduction time, not here.
	tokenOperator
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenOperand:
		return "Operand"
	case tokenOperator:
		return "Operator"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// available reports whether every rune of s is in Characters. Note that the
// only whitespace in Characters is the plain space.
func available(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(Characters, r) {
			return false
		}
	}
	return true
}

// validate rejects input that must not reach the tokenizer. Emptiness is
// decided on the raw string, before any trimming or splitting.
func validate(expression string) error {
	if expression == "" {
		return ErrNotEnteredExpression
	}
	if !available(expression) {
		return ErrUseUnavailableCharacter
	}
	return nil
}

// classify decides whether a whitespace-delimited token is an operand or an
// operator. Anything that parses as a number is an operand; otherwise a token
// made of available runes is an operator candidate, so "++" classifies fine
// here and fails later during reduction.
func classify(text string) (token, error) {
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return token{text: text, kind: tokenOperand, num: v}, nil
	}
	if !available(text) {
		return token{}, ErrUseUnavailableCharacter
	}
	return token{text: text, kind: tokenOperator}, nil
}

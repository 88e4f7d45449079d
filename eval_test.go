package polish_test

import (
	"math"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yomogi/polish"
)

func TestEval(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"+ 5 2", 7},
		{"- 5 2", 3},
		{"* 5 2", 10},
		{"/ 5 2", 2.5},
		{"% 5 2", 1},
		// a bare operand evaluates to itself
		{"1", 1},
		{"-1", -1},
		// surrounding and repeated spaces are tolerated by splitting
		{"+ 5 2 ", 7},
		{" +  5   2", 7},
		// nested reductions
		{"* + 5 1 2", 12},
		{"* + 1 2 + 3 4", 21},
		{"- + 5 1 % 7 2", 5},
		{"/ - 10 4 + 1 2", 2},
		// operand order honors the reversed traversal
		{"- 2 5", -3},
		{"/ 1 2", 0.5},
		{"% 2 5", 2},
	}
	for _, c := range cases {
		got, err := polish.Eval(c.expr)
		require.NoError(t, err, "Eval(%q)", c.expr)
		assert.Equal(t, c.want, got, "Eval(%q)", c.expr)
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		expr string
		want polish.PolishError
	}{
		{"", polish.ErrNotEnteredExpression},
		{"* [ 5 1 = 7  1", polish.ErrUseUnavailableCharacter},
		{"+ 1.5 2", polish.ErrUseUnavailableCharacter},
		// the - below finds only one operand after the partial reduction
		{"* + 5 1 - 7", polish.ErrNotEnoughOperands},
		{"+ 5", polish.ErrNotEnoughOperands},
		{"%", polish.ErrNotEnoughOperands},
		// ++ passes the character check but is not a known operator
		{"++ 5 2", polish.ErrFailedCalculate},
		{"-- 5 2", polish.ErrFailedCalculate},
		// leftover operands, or no tokens at all
		{"5 2", polish.ErrFailedCalculate},
		{"+ 1 2 3", polish.ErrFailedCalculate},
		{" ", polish.ErrFailedCalculate},
	}
	for _, c := range cases {
		_, err := polish.Eval(c.expr)
		assert.ErrorIs(t, err, c.want, "Eval(%q)", c.expr)
		assert.IsType(t, polish.PolishError(0), err, "Eval(%q)", c.expr)
	}
}

func TestEvalZeroDivision(t *testing.T) {
	r, err := polish.Eval("/ 5 0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(r, 1), `Eval("/ 5 0") = %g, want +Inf`, r)

	r, err = polish.Eval("/ -5 0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(r, -1), `Eval("/ -5 0") = %g, want -Inf`, r)

	r, err = polish.Eval("% 5 0")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r), `Eval("%% 5 0") = %g, want NaN`, r)
}

func TestEvalPure(t *testing.T) {
	for _, expr := range []string{"+ 5 2", "/ 5 0", "% 5 0", "* + 5 1 2"} {
		a, erra := polish.Eval(expr)
		b, errb := polish.Eval(expr)
		require.Equal(t, erra, errb, "Eval(%q) errors differ between calls", expr)
		assert.Equal(t, math.Float64bits(a), math.Float64bits(b), "Eval(%q) results differ between calls", expr)
	}
}

func TestEvalLogger(t *testing.T) {
	var lines int
	log := funcr.New(func(prefix, args string) { lines++ }, funcr.Options{Verbosity: 1})
	r, err := polish.Eval("* + 5 1 2", polish.WithLogger(log))
	require.NoError(t, err)
	assert.Equal(t, float64(12), r)
	// one record per classified token
	assert.Equal(t, 5, lines)

	// the trace has no effect on results
	plain, err := polish.Eval("* + 5 1 2")
	require.NoError(t, err)
	assert.Equal(t, plain, r)
}

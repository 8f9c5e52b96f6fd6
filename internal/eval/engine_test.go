package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathkeeper/calc/internal/apperr"
)

func TestEngine_Evaluate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "precedence", input: "2+3*4", want: 14},
		{name: "parentheses", input: "(2+3)*4", want: 20},
		{name: "left associativity", input: "8-3-2", want: 3},
		{name: "multi-digit with group", input: "12+3*(4-1)", want: 21},
		{name: "single number", input: "42", want: 42},
		{name: "division", input: "7/2", want: 3.5},
		{name: "whitespace tolerated", input: " 1 + 2 * 3 ", want: 7},
		{name: "decimal operands", input: "1.5*4", want: 6},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Evaluate(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEngine_DivisionByZero(t *testing.T) {
	engine := NewEngine()

	got, err := engine.Evaluate("5/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1), "5/0 should be +Inf, got %v", got)

	got, err = engine.Evaluate("(1-1)/(2-2)")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got), "0/0 should be NaN, got %v", got)
}

func TestEngine_MalformedExpressions(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "leading operator", input: "+1"},
		{name: "trailing operator", input: "1+"},
		{name: "adjacent numbers", input: "1 2"},
		{name: "operator only", input: "*"},
		{name: "empty input", input: ""},
		{name: "empty parentheses", input: "()"},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Evaluate(tt.input)
			require.Error(t, err)
			var me *apperr.MalformedExpressionError
			assert.ErrorAs(t, err, &me)
		})
	}
}

func TestEngine_ErrorTaxonomy(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Evaluate("2+x")
	var it *apperr.InvalidTokenError
	assert.ErrorAs(t, err, &it)

	_, err = engine.Evaluate("(1+2")
	var mp *apperr.MismatchedParenthesesError
	assert.ErrorAs(t, err, &mp)
}

func TestEngine_PostfixTracksLastSuccess(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Evaluate("2+3*4")
	require.NoError(t, err)
	assert.Equal(t, "2 3 4 * +", engine.Postfix())

	// A failed evaluation leaves the buffers clean.
	_, err = engine.Evaluate("(1+2")
	require.Error(t, err)
	assert.Equal(t, "", engine.Postfix())
}

func TestEngine_ResetIdempotent(t *testing.T) {
	engine := NewEngine()

	first, err := engine.Evaluate("2+2")
	require.NoError(t, err)

	engine.Reset()
	engine.Reset()
	assert.Equal(t, "", engine.Postfix())

	second, err := engine.Evaluate("2+2")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

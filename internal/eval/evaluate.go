package eval

import (
	"strconv"

	"github.com/mathkeeper/calc/internal/apperr"
	"github.com/mathkeeper/calc/internal/token"
)

// EvaluatePostfix reduces a postfix token sequence to a single value.
// Each operator pops its right operand first, then its left. Division
// follows IEEE-754: dividing by zero yields an infinity, 0/0 yields
// NaN; neither is an error.
func EvaluatePostfix(tokens []token.Token) (float64, error) {
	var operands []float64

	for _, tok := range tokens {
		switch {
		case tok.Type == token.NUMBER:
			v, err := strconv.ParseFloat(tok.Literal, 64)
			if err != nil {
				return 0, apperr.NewMalformedExpressionWrap("bad number literal "+strconv.Quote(tok.Literal), err)
			}
			operands = append(operands, v)

		case tok.IsOperator():
			if len(operands) < 2 {
				return 0, apperr.NewMalformedExpression("operator " + tok.Literal + " is missing an operand")
			}
			b := operands[len(operands)-1]
			a := operands[len(operands)-2]
			operands = operands[:len(operands)-2]

			var result float64
			switch tok.Type {
			case token.PLUS:
				result = a + b
			case token.MINUS:
				result = a - b
			case token.STAR:
				result = a * b
			case token.SLASH:
				result = a / b
			}
			operands = append(operands, result)

		default:
			return 0, apperr.NewMalformedExpression("unexpected token " + tok.Type.String() + " in postfix sequence")
		}
	}

	if len(operands) != 1 {
		return 0, apperr.NewMalformedExpression("expression did not reduce to a single value")
	}
	return operands[0], nil
}

package eval

import (
	"strings"

	"github.com/mathkeeper/calc/internal/apperr"
	"github.com/mathkeeper/calc/internal/token"
)

// precedence ranks the four binary operators: additive 1,
// multiplicative 2. Anything else, parentheses included, has no rank
// and must never enter a numeric comparison.
func precedence(t token.Type) (int, bool) {
	switch t {
	case token.PLUS, token.MINUS:
		return 1, true
	case token.STAR, token.SLASH:
		return 2, true
	default:
		return 0, false
	}
}

// ToPostfix converts an infix token sequence to postfix order using the
// Shunting Yard algorithm. Operators of equal precedence are popped
// before pushing, so the result evaluates left to right.
func ToPostfix(tokens []token.Token) ([]token.Token, error) {
	output := make([]token.Token, 0, len(tokens))
	var ops []token.Token

	for _, tok := range tokens {
		switch {
		case tok.Type == token.NUMBER:
			output = append(output, tok)

		case tok.Type == token.LPAREN:
			ops = append(ops, tok)

		case tok.Type == token.RPAREN:
			matched := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Type == token.LPAREN {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, apperr.NewMismatchedParentheses("unexpected closing parenthesis")
			}

		case tok.IsOperator():
			rank, _ := precedence(tok.Type)
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Type == token.LPAREN {
					break
				}
				topRank, ok := precedence(top.Type)
				if !ok || rank > topRank {
					break
				}
				output = append(output, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)

		default:
			return nil, apperr.NewMalformedExpression("unexpected token " + tok.Type.String())
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Type == token.LPAREN {
			return nil, apperr.NewMismatchedParentheses("unclosed parenthesis")
		}
		output = append(output, top)
	}

	return output, nil
}

// PostfixString renders a token sequence as space-separated literals,
// e.g. "2 3 4 * +".
func PostfixString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.Literal
	}
	return strings.Join(parts, " ")
}

package token

import (
	"unicode"

	"github.com/mathkeeper/calc/internal/apperr"
)

type scanState int

const (
	stateDefault scanState = iota
	stateInNumber
)

// ExprTokenizer scans arithmetic expressions into tokens: decimal
// numbers, the four binary operators and parentheses. Whitespace is
// skipped; any other character is an InvalidTokenError.
type ExprTokenizer struct {
	input []rune
	pos   int
}

func NewExprTokenizer() *ExprTokenizer {
	return &ExprTokenizer{}
}

// Tokenize converts the input string into a slice of Tokens.
// Adjacent digits accumulate into a single multi-digit NUMBER token,
// so "12+3" yields three tokens, not four. Empty input yields an
// empty slice.
func (t *ExprTokenizer) Tokenize(input string) ([]Token, error) {
	t.input = []rune(input)
	t.pos = 0

	var tokens []Token
	state := stateDefault
	numStart := 0
	sawDot := false

	for t.pos < len(t.input) {
		ch := t.input[t.pos]

		switch state {
		case stateInNumber:
			if isDigit(ch) {
				t.pos++
				continue
			}
			if ch == '.' {
				if sawDot {
					return nil, apperr.NewInvalidToken(ch, t.pos)
				}
				sawDot = true
				t.pos++
				continue
			}
			tokens = append(tokens, t.closeNumber(numStart))
			state = stateDefault

		case stateDefault:
			switch {
			case isDigit(ch):
				state = stateInNumber
				numStart = t.pos
				sawDot = false
				t.pos++
			case unicode.IsSpace(ch):
				t.pos++
			default:
				op, err := t.readOperator()
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, op)
			}
		}
	}

	if state == stateInNumber {
		tokens = append(tokens, t.closeNumber(numStart))
	}

	return tokens, nil
}

func (t *ExprTokenizer) closeNumber(start int) Token {
	return Token{Type: NUMBER, Literal: string(t.input[start:t.pos]), Pos: start}
}

func (t *ExprTokenizer) readOperator() (Token, error) {
	ch := t.input[t.pos]
	pos := t.pos

	var typ Type
	switch ch {
	case '+':
		typ = PLUS
	case '-':
		typ = MINUS
	case '*':
		typ = STAR
	case '/':
		typ = SLASH
	case '(':
		typ = LPAREN
	case ')':
		typ = RPAREN
	default:
		return Token{}, apperr.NewInvalidToken(ch, pos)
	}

	t.pos++
	return Token{Type: typ, Literal: string(ch), Pos: pos}, nil
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

package token

type Type int

const (
	NUMBER Type = iota
	PLUS
	MINUS
	STAR
	SLASH
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type, literal value and
// position in the input.
type Token struct {
	Type    Type
	Literal string
	Pos     int
}

// IsOperator reports whether the token is one of the four binary operators.
// Parentheses are matched structurally during conversion, never by
// precedence, so they are not operators here.
func (t Token) IsOperator() bool {
	switch t.Type {
	case PLUS, MINUS, STAR, SLASH:
		return true
	default:
		return false
	}
}

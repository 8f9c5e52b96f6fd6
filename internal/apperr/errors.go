package apperr

import "fmt"

// InvalidTokenError reports a character the tokenizer cannot scan,
// naming the offending rune and its byte offset in the input.
type InvalidTokenError struct {
	Char rune
	Pos  int
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %q at position %d", e.Char, e.Pos)
}

func NewInvalidToken(char rune, pos int) *InvalidTokenError {
	return &InvalidTokenError{Char: char, Pos: pos}
}

// MismatchedParenthesesError reports unbalanced parentheses detected
// during infix-to-postfix conversion.
type MismatchedParenthesesError struct {
	Message string
}

func (e *MismatchedParenthesesError) Error() string {
	return e.Message
}

func NewMismatchedParentheses(msg string) *MismatchedParenthesesError {
	return &MismatchedParenthesesError{Message: msg}
}

// MalformedExpressionError reports a postfix sequence the evaluator
// cannot reduce to a single value: operand stack underflow or leftover
// operands, typically from wrong operator arity.
type MalformedExpressionError struct {
	Message string
	Err     error
}

func (e *MalformedExpressionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *MalformedExpressionError) Unwrap() error {
	return e.Err
}

func NewMalformedExpression(msg string) *MalformedExpressionError {
	return &MalformedExpressionError{Message: msg}
}

func NewMalformedExpressionWrap(msg string, err error) *MalformedExpressionError {
	return &MalformedExpressionError{Message: msg, Err: err}
}

package eval

import (
	"github.com/mathkeeper/calc/internal/token"
)

// Engine composes the tokenizer, the infix-to-postfix converter and the
// postfix evaluator. It keeps the last token and postfix sequences only
// until the next call; every evaluation starts from a clean slate, so a
// failed call never contaminates the next one.
//
// An Engine is not safe for concurrent use. Callers that evaluate in
// parallel must each own their own instance.
type Engine struct {
	tokenizer token.Tokenizer

	tokens  []token.Token
	postfix []token.Token
}

func NewEngine() *Engine {
	return &Engine{tokenizer: token.NewExprTokenizer()}
}

// Evaluate runs input through tokenize, convert and evaluate and
// returns the numeric result.
func (e *Engine) Evaluate(input string) (float64, error) {
	e.Reset()

	tokens, err := e.tokenizer.Tokenize(input)
	if err != nil {
		return 0, err
	}
	e.tokens = tokens

	postfix, err := ToPostfix(tokens)
	if err != nil {
		e.Reset()
		return 0, err
	}
	e.postfix = postfix

	result, err := EvaluatePostfix(postfix)
	if err != nil {
		e.Reset()
		return 0, err
	}
	return result, nil
}

// Postfix returns the RPN form of the last successful evaluation, as a
// space-separated string. Empty until Evaluate has succeeded.
func (e *Engine) Postfix() string {
	return PostfixString(e.postfix)
}

// Reset clears residual token sequences so the engine can be reused for
// a new expression. Calling it repeatedly is harmless.
func (e *Engine) Reset() {
	e.tokens = nil
	e.postfix = nil
}

package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mathkeeper/calc/internal/apperr"
)

func TestNewInvalidToken(t *testing.T) {
	err := apperr.NewInvalidToken('$', 3)

	if err.Error() != `invalid token '$' at position 3` {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestNewMalformedExpressionWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewMalformedExpressionWrap("bad number literal", inner)

	if err.Error() != "bad number literal: parse failed" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestExpressionErrors_SurviveFmtWrapping(t *testing.T) {
	original := apperr.NewMismatchedParentheses("unclosed parenthesis")

	wrapped := fmt.Errorf("failed to convert: %w", original)
	doubleWrapped := fmt.Errorf("evaluate: %w", wrapped)

	var mp *apperr.MismatchedParenthesesError
	if !errors.As(doubleWrapped, &mp) {
		t.Fatal("errors.As should find MismatchedParenthesesError through double wrapping")
	}
	if mp.Message != "unclosed parenthesis" {
		t.Errorf("expected 'unclosed parenthesis', got %q", mp.Message)
	}
	if !apperr.IsExpressionError(doubleWrapped) {
		t.Error("IsExpressionError should see through wrapping")
	}
}

func TestIsExpressionError_FalseForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("history error: %w", plain)

	if apperr.IsExpressionError(wrapped) {
		t.Fatal("plain error chain must not count as expression error")
	}
}

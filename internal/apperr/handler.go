package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// IsExpressionError reports whether err belongs to the evaluation error
// taxonomy. These are caller mistakes, never server faults.
func IsExpressionError(err error) bool {
	var it *InvalidTokenError
	var mp *MismatchedParenthesesError
	var me *MalformedExpressionError
	return errors.As(err, &it) || errors.As(err, &mp) || errors.As(err, &me)
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if IsExpressionError(err) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error(), "title": "expression error"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathkeeper/calc/internal/apperr"
	"github.com/mathkeeper/calc/internal/history"
)

func newTestServer() (*echo.Echo, *history.MemStore) {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	store := history.NewMemStore()
	NewEvalRouter(e, store).Bind()
	return e, store
}

func postEvaluate(t *testing.T, e *echo.Echo, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestEvaluateHandler(t *testing.T) {
	e, _ := newTestServer()

	rec := postEvaluate(t, e, `{"expression":"2+3*4"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2+3*4", resp.Expression)
	assert.Equal(t, "2 3 4 * +", resp.Postfix)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 14.0, *resp.Result)
	assert.Equal(t, "14", resp.ResultText)
}

func TestEvaluateHandler_DivisionByZero(t *testing.T) {
	e, _ := newTestServer()

	rec := postEvaluate(t, e, `{"expression":"5/0"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Result, "non-finite results have no JSON number form")
	assert.Equal(t, "+Inf", resp.ResultText)
}

func TestEvaluateHandler_ExpressionErrorsAre400(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		contains   string
	}{
		{name: "invalid token", expression: "2+x", contains: "invalid token"},
		{name: "mismatched parentheses", expression: "(1+2", contains: "parenthes"},
		{name: "malformed expression", expression: "+1", contains: "operand"},
	}

	e, _ := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postEvaluate(t, e, `{"expression":"`+tt.expression+`"}`)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body["error"], tt.contains)
		})
	}
}

func TestEvaluateHandler_MissingExpression(t *testing.T) {
	e, _ := newTestServer()

	rec := postEvaluate(t, e, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryHandler(t *testing.T) {
	e, _ := newTestServer()

	for _, expr := range []string{"1+1", "2*3", "5/0"} {
		rec := postEvaluate(t, e, `{"expression":"`+expr+`"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?limit=2", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []HistoryEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "5/0", entries[0].Expression)
	assert.Equal(t, "+Inf", entries[0].Result)
	assert.Equal(t, "2*3", entries[1].Expression)
}

func TestHistoryHandler_BadLimit(t *testing.T) {
	e, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?limit=zero", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvaluateHandler_FailedEvaluationNotRecorded(t *testing.T) {
	e, store := newTestServer()

	rec := postEvaluate(t, e, `{"expression":"(1+2"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	recent, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

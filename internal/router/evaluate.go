package router

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mathkeeper/calc/internal/eval"
	"github.com/mathkeeper/calc/internal/history"
)

type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse carries the result as a JSON number and, because
// JSON has no Inf or NaN, a string form that is always present.
type EvaluateResponse struct {
	Expression string   `json:"expression"`
	Postfix    string   `json:"postfix"`
	Result     *float64 `json:"result"`
	ResultText string   `json:"result_text"`
}

type HistoryEntry struct {
	ID         string `json:"id"`
	Expression string `json:"expression"`
	Postfix    string `json:"postfix"`
	Result     string `json:"result"`
	CreatedAt  string `json:"created_at"`
}

type EvalRouter struct {
	e     *echo.Echo
	store history.Store
}

func NewEvalRouter(e *echo.Echo, store history.Store) *EvalRouter {
	return &EvalRouter{
		e:     e,
		store: store,
	}
}

func (r *EvalRouter) Bind() {
	v1 := r.e.Group("/api/v1")
	v1.POST("/evaluate", r.evaluateHandler)
	v1.GET("/history", r.historyHandler)
}

func (r *EvalRouter) evaluateHandler(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Expression == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "expression is required")
	}

	// One engine per request; engines are single-caller by contract.
	engine := eval.NewEngine()
	result, err := engine.Evaluate(req.Expression)
	if err != nil {
		return err
	}

	resp := EvaluateResponse{
		Expression: req.Expression,
		Postfix:    engine.Postfix(),
		ResultText: strconv.FormatFloat(result, 'g', -1, 64),
	}
	if !math.IsInf(result, 0) && !math.IsNaN(result) {
		resp.Result = &result
	}

	if r.store != nil {
		_, err := r.store.Save(c.Request().Context(), history.Record{
			Expression: req.Expression,
			Postfix:    resp.Postfix,
			Result:     result,
		})
		if err != nil {
			slog.Error("Failed to save evaluation record", "error", err)
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func (r *EvalRouter) historyHandler(c echo.Context) error {
	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	records, err := r.store.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	entries := make([]HistoryEntry, len(records))
	for i, rec := range records {
		entries[i] = HistoryEntry{
			ID:         rec.ID.String(),
			Expression: rec.Expression,
			Postfix:    rec.Postfix,
			Result:     strconv.FormatFloat(rec.Result, 'g', -1, 64),
			CreatedAt:  rec.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	return c.JSON(http.StatusOK, entries)
}

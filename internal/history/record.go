package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is one completed evaluation: the raw expression, its postfix
// form and the numeric result. Results may be non-finite (division by
// zero), so stores must round-trip Inf and NaN.
type Record struct {
	ID         uuid.UUID
	Expression string
	Postfix    string
	Result     float64
	CreatedAt  time.Time
}

// Store persists evaluation records.
type Store interface {
	Save(ctx context.Context, rec Record) (uuid.UUID, error)
	Recent(ctx context.Context, limit int) ([]Record, error)
}

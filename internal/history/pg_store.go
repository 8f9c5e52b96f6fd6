package history

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists records in postgres. The result column is text so
// that Inf and NaN survive the round trip; postgres float8 would accept
// them too, but drivers disagree on their wire form.
type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(pool *ConnectionPool) *PGStore {
	return &PGStore{db: pool.conn}
}

// Schema creates the evaluations table if it does not exist.
func (s *PGStore) Schema(ctx context.Context) error {
	ddl := `
        CREATE TABLE IF NOT EXISTS evaluations (
            id UUID PRIMARY KEY,
            expression TEXT NOT NULL,
            postfix TEXT NOT NULL,
            result TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        );
    `
	if _, err := s.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create evaluations table: %w", err)
	}
	return nil
}

func (s *PGStore) Save(ctx context.Context, rec Record) (uuid.UUID, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	cmd := `
        INSERT INTO evaluations (id, expression, postfix, result, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		rec.ID,
		rec.Expression,
		rec.Postfix,
		strconv.FormatFloat(rec.Result, 'g', -1, 64),
		rec.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return id, nil
}

func (s *PGStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
        SELECT id, expression, postfix, result, created_at
        FROM evaluations
        ORDER BY created_at DESC
        LIMIT $1;
    `
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var result string
		if err := rows.Scan(&rec.ID, &rec.Expression, &rec.Postfix, &result, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation row: %w", err)
		}
		rec.Result, err = strconv.ParseFloat(result, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored result %q: %w", result, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read evaluation rows: %w", err)
	}

	return records, nil
}

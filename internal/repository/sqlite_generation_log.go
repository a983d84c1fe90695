package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/splanner/internal/db"
	"github.com/alexanderramin/splanner/internal/domain"
)

// SQLiteGenerationLogRepo implements GenerationLogRepo using a SQLite database.
type SQLiteGenerationLogRepo struct {
	db db.DBTX
}

// NewSQLiteGenerationLogRepo creates a new SQLiteGenerationLogRepo.
func NewSQLiteGenerationLogRepo(conn db.DBTX) *SQLiteGenerationLogRepo {
	return &SQLiteGenerationLogRepo{db: conn}
}

func (r *SQLiteGenerationLogRepo) Record(ctx context.Context, rec *domain.GenerationRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	created := formatTime(rec.CreatedAt)
	query := `INSERT INTO generation_log (id, topic, grade, subject, model, status, error_code, latency_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Topic,
		rec.Grade,
		rec.Subject,
		rec.Model,
		string(rec.Status),
		rec.ErrorCode,
		rec.LatencyMs,
		created,
	)
	if err != nil {
		return fmt.Errorf("inserting generation record: %w", err)
	}
	rec.CreatedAt = parseTime(created)
	return nil
}

// ListRecent returns up to limit records, newest first. A non-positive limit
// returns everything.
func (r *SQLiteGenerationLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.GenerationRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT id, topic, grade, subject, model, status, error_code, latency_ms, created_at
		FROM generation_log ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing generation log: %w", err)
	}
	defer rows.Close()

	var out []*domain.GenerationRecord
	for rows.Next() {
		var (
			rec     domain.GenerationRecord
			status  string
			created string
		)
		if err := rows.Scan(&rec.ID, &rec.Topic, &rec.Grade, &rec.Subject, &rec.Model,
			&status, &rec.ErrorCode, &rec.LatencyMs, &created); err != nil {
			return nil, fmt.Errorf("scanning generation record: %w", err)
		}
		rec.Status = domain.GenerationStatus(status)
		rec.CreatedAt = parseTime(created)
		out = append(out, &rec)
	}
	return out, rows.Err()
}

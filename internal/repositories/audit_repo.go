package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/adcraft/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditRepo struct {
	pool *pgxpool.Pool
}

func NewAuditRepo(pool *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

func (r *AuditRepo) Log(ctx context.Context, entry *models.GenerationAudit) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO generation_audit (session_id, platform, tone, language, model, outcome, error_kind, variations, latency_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, entry.SessionID, entry.Platform, entry.Tone, entry.Language, entry.Model,
		entry.Outcome, entry.ErrorKind, entry.Variations, entry.LatencyMS,
	).Scan(&entry.ID, &entry.CreatedAt)
}

type AuditFilter struct {
	SessionID *uuid.UUID
	Outcome   *string
	Since     *time.Time
	Limit     int
	Offset    int
}

func (r *AuditRepo) List(ctx context.Context, f AuditFilter) ([]models.GenerationAudit, error) {
	query := `
		SELECT id, session_id, platform, tone, language, model, outcome, error_kind,
		       variations, latency_ms, created_at
		FROM generation_audit
	`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.SessionID != nil {
		where = append(where, fmt.Sprintf("session_id = $%d", argIdx))
		args = append(args, *f.SessionID)
		argIdx++
	}
	if f.Outcome != nil {
		where = append(where, fmt.Sprintf("outcome = $%d", argIdx))
		args = append(args, *f.Outcome)
		argIdx++
	}
	if f.Since != nil {
		where = append(where, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *f.Since)
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.GenerationAudit
	for rows.Next() {
		var e models.GenerationAudit
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Platform, &e.Tone, &e.Language, &e.Model,
			&e.Outcome, &e.ErrorKind, &e.Variations, &e.LatencyMS, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type OutcomeCount struct {
	Platform string `json:"platform"`
	Outcome  string `json:"outcome"`
	Count    int64  `json:"count"`
	AvgMS    int64  `json:"avg_latency_ms"`
}

// Summary groups generations since the given time by platform and outcome.
func (r *AuditRepo) Summary(ctx context.Context, since time.Time) ([]OutcomeCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT platform, outcome, COUNT(*), COALESCE(AVG(latency_ms), 0)::BIGINT
		FROM generation_audit WHERE created_at >= $1
		GROUP BY platform, outcome
		ORDER BY platform, outcome
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []OutcomeCount
	for rows.Next() {
		var c OutcomeCount
		if err := rows.Scan(&c.Platform, &c.Outcome, &c.Count, &c.AvgMS); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// PurgeOlderThan deletes entries created before cutoff and returns how many went.
func (r *AuditRepo) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM generation_audit WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

package jobs

import (
	"context"
	"database/sql"

	"skillpath-backend/internal/shared/storage/db"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO job_applications (id, job_id, user_id, cover_letter, status, match_score, applied_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		app.ID,
		app.JobID,
		app.UserID,
		app.CoverLetter,
		app.Status,
		app.MatchScore,
		app.AppliedAt,
		app.UpdatedAt,
	)
	if db.IsUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Application, error) {
	const query = `
SELECT id, job_id, user_id, cover_letter, status, match_score, applied_at, updated_at
FROM job_applications
WHERE user_id = $1
ORDER BY applied_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		var app Application
		if err := rows.Scan(
			&app.ID,
			&app.JobID,
			&app.UserID,
			&app.CoverLetter,
			&app.Status,
			&app.MatchScore,
			&app.AppliedAt,
			&app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

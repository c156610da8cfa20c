package recommendations

import (
	"context"
	"database/sql"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Recommendation, error) {
	const query = `
SELECT id, user_id, recommendation_type, target_id, reason, confidence_score, is_viewed, created_at
FROM recommendations
WHERE user_id = $1
ORDER BY confidence_score DESC, created_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Recommendation
	for rows.Next() {
		var rec Recommendation
		var recType string
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&recType,
			&rec.TargetID,
			&rec.Reason,
			&rec.ConfidenceScore,
			&rec.IsViewed,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Type = Type(recType)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PGRepo) CreateBatch(ctx context.Context, recs []Recommendation) error {
	if len(recs) == 0 {
		return nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const query = `
INSERT INTO recommendations (id, user_id, recommendation_type, target_id, reason, confidence_score, is_viewed, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, rec := range recs {
		if _, err := tx.ExecContext(ctx, query,
			rec.ID,
			rec.UserID,
			string(rec.Type),
			rec.TargetID,
			rec.Reason,
			rec.ConfidenceScore,
			rec.IsViewed,
			rec.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert recommendation %s: %w", rec.ID, err)
		}
	}
	return tx.Commit()
}

func (r *PGRepo) MarkViewed(ctx context.Context, userID, recommendationID string) error {
	const query = `UPDATE recommendations SET is_viewed = true WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, recommendationID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

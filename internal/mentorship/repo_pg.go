package mentorship

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, m Mentorship) error {
	const query = `
INSERT INTO mentorships (id, mentor_id, mentee_id, focus_area, status, sessions_completed, next_session_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	var next any
	if m.NextSessionDate != nil {
		next = *m.NextSessionDate
	}
	_, err := r.DB.ExecContext(ctx, query,
		m.ID,
		m.MentorID,
		m.MenteeID,
		m.FocusArea,
		m.Status,
		m.SessionsCompleted,
		next,
		m.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListForUser(ctx context.Context, userID, status string) ([]Mentorship, error) {
	query := `
SELECT id, mentor_id, mentee_id, focus_area, status, sessions_completed, next_session_date, created_at
FROM mentorships
WHERE (mentor_id = $1 OR mentee_id = $1)`
	args := []any{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Mentorship
	for rows.Next() {
		var m Mentorship
		var next sql.NullTime
		if err := rows.Scan(&m.ID, &m.MentorID, &m.MenteeID, &m.FocusArea, &m.Status, &m.SessionsCompleted, &next, &m.CreatedAt); err != nil {
			return nil, err
		}
		if next.Valid {
			t := next.Time
			m.NextSessionDate = &t
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

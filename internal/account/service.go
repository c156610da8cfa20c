package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"skillpath-backend/internal/shared/telemetry"
)

// Claimer re-owns one store's guest rows and reports moved counts per table.
type Claimer interface {
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (map[string]int, error)
}

type Service struct {
	// DB, when set, moves every table in one transaction and Claimers is ignored.
	DB       *sql.DB
	Claimers []Claimer
}

type ClaimResult struct {
	Migrated map[string]int `json:"migrated"`
	Total    int            `json:"total"`
}

func NewService(db *sql.DB, claimers ...Claimer) *Service {
	return &Service{DB: db, Claimers: claimers}
}

// claimStatements move guest rows unless the user already holds an equivalent
// row under a uniqueness rule.
var claimStatements = []struct {
	table string
	query string
}{
	{"user_skills", `UPDATE user_skills g SET user_id = $1, updated_at = now()
WHERE g.user_id = $2
  AND NOT EXISTS (SELECT 1 FROM user_skills a WHERE a.user_id = $1 AND a.skill_id = g.skill_id)`},
	{"user_courses", `UPDATE user_courses g SET user_id = $1
WHERE g.user_id = $2
  AND NOT EXISTS (SELECT 1 FROM user_courses a WHERE a.user_id = $1 AND a.course_id = g.course_id)`},
	{"user_career_goals", `UPDATE user_career_goals g SET user_id = $1
WHERE g.user_id = $2
  AND NOT (g.status = 'active' AND EXISTS (
    SELECT 1 FROM user_career_goals a
    WHERE a.user_id = $1 AND a.career_path_id = g.career_path_id AND a.status = 'active'))`},
	{"job_applications", `UPDATE job_applications g SET user_id = $1, updated_at = now()
WHERE g.user_id = $2
  AND NOT EXISTS (SELECT 1 FROM job_applications a WHERE a.user_id = $1 AND a.job_id = g.job_id)`},
	{"mentorships", `UPDATE mentorships SET mentee_id = $1 WHERE mentee_id = $2`},
	{"recommendations", `UPDATE recommendations SET user_id = $1 WHERE user_id = $2`},
}

func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}

	var (
		result ClaimResult
		err    error
	)
	if s.DB != nil {
		result, err = claimWithTx(ctx, s.DB, guestUserID, authedUserID)
	} else {
		result, err = s.claimInMemory(ctx, guestUserID, authedUserID)
	}
	if err != nil {
		return ClaimResult{}, err
	}
	telemetry.Info("account.claim_guest", map[string]any{
		"user_id":  authedUserID,
		"guest_id": guestUserID,
		"migrated": result.Total,
	})
	return result, nil
}

func claimWithTx(ctx context.Context, db *sql.DB, guestUserID, authedUserID string) (ClaimResult, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ClaimResult{}, err
	}
	defer tx.Rollback()

	result := ClaimResult{Migrated: make(map[string]int, len(claimStatements))}
	for _, stmt := range claimStatements {
		res, err := tx.ExecContext(ctx, stmt.query, authedUserID, guestUserID)
		if err != nil {
			return ClaimResult{}, fmt.Errorf("claim %s: %w", stmt.table, err)
		}
		n, _ := res.RowsAffected()
		result.Migrated[stmt.table] = int(n)
		result.Total += int(n)
	}

	if err := tx.Commit(); err != nil {
		return ClaimResult{}, err
	}
	return result, nil
}

func (s *Service) claimInMemory(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if len(s.Claimers) == 0 {
		return ClaimResult{}, errors.New("account service not configured")
	}
	result := ClaimResult{Migrated: map[string]int{}}
	for _, c := range s.Claimers {
		moved, err := c.ClaimGuest(ctx, guestUserID, authedUserID)
		if err != nil {
			return ClaimResult{}, err
		}
		for table, n := range moved {
			result.Migrated[table] += n
			result.Total += n
		}
	}
	return result, nil
}

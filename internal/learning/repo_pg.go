package learning

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skillpath-backend/internal/shared/storage/db"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) ListUserSkills(ctx context.Context, userID string) ([]UserSkill, error) {
	const query = `
SELECT id, user_id, skill_id, proficiency_level, created_at, updated_at
FROM user_skills
WHERE user_id = $1
ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UserSkill
	for rows.Next() {
		var s UserSkill
		if err := rows.Scan(&s.ID, &s.UserID, &s.SkillID, &s.ProficiencyLevel, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) CreateUserSkill(ctx context.Context, skill UserSkill) error {
	const query = `
INSERT INTO user_skills (id, user_id, skill_id, proficiency_level, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		skill.ID,
		skill.UserID,
		skill.SkillID,
		skill.ProficiencyLevel,
		skill.CreatedAt,
		skill.UpdatedAt,
	)
	if db.IsUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *PGRepo) UpdateUserSkillLevel(ctx context.Context, userID, userSkillID string, level int, updatedAt time.Time) error {
	const query = `
UPDATE user_skills
SET proficiency_level = $1, updated_at = $2
WHERE id = $3 AND user_id = $4`
	res, err := r.DB.ExecContext(ctx, query, level, updatedAt, userSkillID, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PGRepo) DeleteUserSkill(ctx context.Context, userID, userSkillID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM user_skills WHERE id = $1 AND user_id = $2`, userSkillID, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

const userCourseColumns = `id, user_id, course_id, status, progress_percentage, started_at, completed_at, created_at`

func (r *PGRepo) ListUserCourses(ctx context.Context, userID string) ([]UserCourse, error) {
	query := `SELECT ` + userCourseColumns + ` FROM user_courses WHERE user_id = $1 ORDER BY created_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UserCourse
	for rows.Next() {
		course, err := scanUserCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, course)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetUserCourse(ctx context.Context, userID, userCourseID string) (UserCourse, error) {
	query := `SELECT ` + userCourseColumns + ` FROM user_courses WHERE id = $1 AND user_id = $2 LIMIT 1`
	course, err := scanUserCourse(r.DB.QueryRowContext(ctx, query, userCourseID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserCourse{}, ErrNotFound
		}
		return UserCourse{}, err
	}
	return course, nil
}

func (r *PGRepo) CreateUserCourse(ctx context.Context, course UserCourse) error {
	const query = `
INSERT INTO user_courses (id, user_id, course_id, status, progress_percentage, started_at, completed_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		course.ID,
		course.UserID,
		course.CourseID,
		course.Status,
		course.ProgressPercentage,
		nullableTime(course.StartedAt),
		nullableTime(course.CompletedAt),
		course.CreatedAt,
	)
	if db.IsUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *PGRepo) UpdateUserCourse(ctx context.Context, course UserCourse) error {
	const query = `
UPDATE user_courses
SET status = $1, progress_percentage = $2, completed_at = $3
WHERE id = $4 AND user_id = $5`
	res, err := r.DB.ExecContext(ctx, query,
		course.Status,
		course.ProgressPercentage,
		nullableTime(course.CompletedAt),
		course.ID,
		course.UserID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PGRepo) ListCareerGoals(ctx context.Context, userID, status string) ([]CareerGoal, error) {
	query := `
SELECT id, user_id, career_path_id, target_date, status, created_at
FROM user_career_goals
WHERE user_id = $1`
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

	var out []CareerGoal
	for rows.Next() {
		var g CareerGoal
		var target sql.NullTime
		if err := rows.Scan(&g.ID, &g.UserID, &g.CareerPathID, &target, &g.Status, &g.CreatedAt); err != nil {
			return nil, err
		}
		if target.Valid {
			t := target.Time
			g.TargetDate = &t
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PGRepo) CreateCareerGoal(ctx context.Context, goal CareerGoal) error {
	const query = `
INSERT INTO user_career_goals (id, user_id, career_path_id, target_date, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		goal.ID,
		goal.UserID,
		goal.CareerPathID,
		nullableTime(goal.TargetDate),
		goal.Status,
		goal.CreatedAt,
	)
	if db.IsUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserCourse(row rowScanner) (UserCourse, error) {
	var c UserCourse
	var started, completed sql.NullTime
	if err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.CourseID,
		&c.Status,
		&c.ProgressPercentage,
		&started,
		&completed,
		&c.CreatedAt,
	); err != nil {
		return UserCourse{}, err
	}
	if started.Valid {
		t := started.Time
		c.StartedAt = &t
	}
	if completed.Valid {
		t := completed.Time
		c.CompletedAt = &t
	}
	return c, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

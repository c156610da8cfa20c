package profiles

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

const profileColumns = `id, full_name, bio, avatar_url, job_title, years_experience, career_goals, created_at, updated_at`

func (r *PGRepo) Upsert(ctx context.Context, profile Profile) (Profile, error) {
	const query = `
INSERT INTO profiles (id, full_name, bio, avatar_url, job_title, years_experience, career_goals, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
ON CONFLICT (id) DO UPDATE SET
  full_name = EXCLUDED.full_name,
  bio = EXCLUDED.bio,
  avatar_url = EXCLUDED.avatar_url,
  job_title = EXCLUDED.job_title,
  years_experience = EXCLUDED.years_experience,
  career_goals = EXCLUDED.career_goals,
  updated_at = now()
RETURNING ` + profileColumns
	row := r.DB.QueryRowContext(ctx, query,
		profile.ID,
		nullableString(profile.FullName),
		nullableString(profile.Bio),
		nullableString(profile.AvatarURL),
		nullableString(profile.JobTitle),
		profile.YearsExperience,
		nullableString(profile.CareerGoals),
	)
	return scanProfile(row)
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1 LIMIT 1`
	profile, err := scanProfile(r.DB.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	return profile, err
}

func scanProfile(row *sql.Row) (Profile, error) {
	var p Profile
	var fullName, bio, avatarURL, jobTitle, careerGoals sql.NullString
	if err := row.Scan(
		&p.ID,
		&fullName,
		&bio,
		&avatarURL,
		&jobTitle,
		&p.YearsExperience,
		&careerGoals,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return Profile{}, err
	}
	p.FullName = fullName.String
	p.Bio = bio.String
	p.AvatarURL = avatarURL.String
	p.JobTitle = jobTitle.String
	p.CareerGoals = careerGoals.String
	return p, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

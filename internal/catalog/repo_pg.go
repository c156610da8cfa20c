package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

const courseColumns = `id, title, description, difficulty_level, duration_hours, thumbnail_url, provider, category, created_at`

func (r *PGRepo) ListCourses(ctx context.Context, opts ListOptions) ([]Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses`
	if opts.Order == OrderNewest {
		query += ` ORDER BY created_at DESC, id`
	} else {
		query += ` ORDER BY created_at, id`
	}
	var args []any
	if opts.Limit > 0 {
		query += ` LIMIT $1`
		args = append(args, opts.Limit)
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, course)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetCourse(ctx context.Context, courseID string) (Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1 LIMIT 1`
	course, err := scanCourse(r.DB.QueryRowContext(ctx, query, courseID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Course{}, ErrNotFound
		}
		return Course{}, err
	}
	return course, nil
}

const careerPathColumns = `id, title, description, level, estimated_duration_months, average_salary_range, created_at`

func (r *PGRepo) ListCareerPaths(ctx context.Context, opts ListOptions) ([]CareerPath, error) {
	query := `SELECT ` + careerPathColumns + ` FROM career_paths`
	switch opts.Order {
	case OrderLevel:
		query += ` ORDER BY level, created_at, id`
	case OrderNewest:
		query += ` ORDER BY created_at DESC, id`
	default:
		query += ` ORDER BY created_at, id`
	}
	var args []any
	if opts.Limit > 0 {
		query += ` LIMIT $1`
		args = append(args, opts.Limit)
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CareerPath
	for rows.Next() {
		path, err := scanCareerPath(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, path)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetCareerPath(ctx context.Context, careerPathID string) (CareerPath, error) {
	query := `SELECT ` + careerPathColumns + ` FROM career_paths WHERE id = $1 LIMIT 1`
	path, err := scanCareerPath(r.DB.QueryRowContext(ctx, query, careerPathID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CareerPath{}, ErrNotFound
		}
		return CareerPath{}, err
	}
	return path, nil
}

func (r *PGRepo) ListCareerPathSkills(ctx context.Context, careerPathID string) ([]CareerPathSkill, error) {
	const query = `
SELECT cps.career_path_id, cps.importance_level, s.id, s.name, s.category, s.description, s.created_at
FROM career_path_skills cps
JOIN skills s ON s.id = cps.skill_id
WHERE cps.career_path_id = $1
ORDER BY cps.importance_level DESC, s.name`
	rows, err := r.DB.QueryContext(ctx, query, careerPathID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CareerPathSkill
	for rows.Next() {
		var item CareerPathSkill
		var category, description sql.NullString
		if err := rows.Scan(
			&item.CareerPathID,
			&item.ImportanceLevel,
			&item.Skill.ID,
			&item.Skill.Name,
			&category,
			&description,
			&item.Skill.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.Skill.Category = category.String
		item.Skill.Description = description.String
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *PGRepo) ListSkills(ctx context.Context) ([]Skill, error) {
	const query = `SELECT id, name, category, description, created_at FROM skills ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Skill
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, skill)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetSkill(ctx context.Context, skillID string) (Skill, error) {
	const query = `SELECT id, name, category, description, created_at FROM skills WHERE id = $1 LIMIT 1`
	skill, err := scanSkill(r.DB.QueryRowContext(ctx, query, skillID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Skill{}, ErrNotFound
		}
		return Skill{}, err
	}
	return skill, nil
}

const jobColumns = `id, recruiter_id, company_name, industry, title, description, location, job_type,
  experience_level, salary_min, salary_max, remote_allowed, application_deadline, status,
  applications_count, created_at`

func (r *PGRepo) ListOpenJobPostings(ctx context.Context) ([]JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE status = $1 ORDER BY created_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query, JobStatusOpen)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobPosting
	for rows.Next() {
		job, err := scanJobPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetJobPosting(ctx context.Context, jobID string) (JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE id = $1 LIMIT 1`
	job, err := scanJobPosting(r.DB.QueryRowContext(ctx, query, jobID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobPosting{}, ErrNotFound
		}
		return JobPosting{}, err
	}
	return job, nil
}

func (r *PGRepo) IncrementApplicationsCount(ctx context.Context, jobID string) error {
	const query = `UPDATE job_postings SET applications_count = applications_count + 1 WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, jobID)
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

const mentorColumns = `id, user_id, full_name, job_title, COALESCE(array_to_json(expertise_areas)::text, '[]'),
  teaching_experience_years, hourly_rate::float8, rating::float8, total_students, bio, created_at`

func (r *PGRepo) ListMentors(ctx context.Context, minRating float64, max int) ([]Mentor, error) {
	query := `SELECT ` + mentorColumns + ` FROM educator_profiles WHERE rating >= $1 ORDER BY rating DESC, id`
	args := []any{minRating}
	if max > 0 {
		query += ` LIMIT $2`
		args = append(args, max)
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Mentor
	for rows.Next() {
		mentor, err := scanMentor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, mentor)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetMentor(ctx context.Context, mentorID string) (Mentor, error) {
	query := `SELECT ` + mentorColumns + ` FROM educator_profiles WHERE id = $1 LIMIT 1`
	mentor, err := scanMentor(r.DB.QueryRowContext(ctx, query, mentorID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Mentor{}, ErrNotFound
		}
		return Mentor{}, err
	}
	return mentor, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (Course, error) {
	var course Course
	var description, difficulty, thumbnail, provider, category sql.NullString
	var duration sql.NullInt64
	if err := row.Scan(
		&course.ID,
		&course.Title,
		&description,
		&difficulty,
		&duration,
		&thumbnail,
		&provider,
		&category,
		&course.CreatedAt,
	); err != nil {
		return Course{}, err
	}
	course.Description = description.String
	course.DifficultyLevel = difficulty.String
	course.DurationHours = int(duration.Int64)
	course.ThumbnailURL = thumbnail.String
	course.Provider = provider.String
	course.Category = category.String
	return course, nil
}

func scanCareerPath(row rowScanner) (CareerPath, error) {
	var path CareerPath
	var description, level, salary sql.NullString
	var months sql.NullInt64
	if err := row.Scan(
		&path.ID,
		&path.Title,
		&description,
		&level,
		&months,
		&salary,
		&path.CreatedAt,
	); err != nil {
		return CareerPath{}, err
	}
	path.Description = description.String
	path.Level = level.String
	path.EstimatedDurationMonths = int(months.Int64)
	path.AverageSalaryRange = salary.String
	return path, nil
}

func scanSkill(row rowScanner) (Skill, error) {
	var skill Skill
	var category, description sql.NullString
	if err := row.Scan(&skill.ID, &skill.Name, &category, &description, &skill.CreatedAt); err != nil {
		return Skill{}, err
	}
	skill.Category = category.String
	skill.Description = description.String
	return skill, nil
}

func scanJobPosting(row rowScanner) (JobPosting, error) {
	var job JobPosting
	var recruiter, company, industry, description, location, jobType, experience sql.NullString
	var salaryMin, salaryMax sql.NullInt64
	var deadline sql.NullTime
	if err := row.Scan(
		&job.ID,
		&recruiter,
		&company,
		&industry,
		&job.Title,
		&description,
		&location,
		&jobType,
		&experience,
		&salaryMin,
		&salaryMax,
		&job.RemoteAllowed,
		&deadline,
		&job.Status,
		&job.ApplicationsCount,
		&job.CreatedAt,
	); err != nil {
		return JobPosting{}, err
	}
	job.RecruiterID = recruiter.String
	job.CompanyName = company.String
	job.Industry = industry.String
	job.Description = description.String
	job.Location = location.String
	job.JobType = jobType.String
	job.ExperienceLevel = experience.String
	if salaryMin.Valid {
		v := int(salaryMin.Int64)
		job.SalaryMin = &v
	}
	if salaryMax.Valid {
		v := int(salaryMax.Int64)
		job.SalaryMax = &v
	}
	if deadline.Valid {
		t := deadline.Time
		job.ApplicationDeadline = &t
	}
	return job, nil
}

func scanMentor(row rowScanner) (Mentor, error) {
	var mentor Mentor
	var userID, jobTitle, bio sql.NullString
	var areas string
	var years, students sql.NullInt64
	var rate, rating sql.NullFloat64
	if err := row.Scan(
		&mentor.ID,
		&userID,
		&mentor.FullName,
		&jobTitle,
		&areas,
		&years,
		&rate,
		&rating,
		&students,
		&bio,
		&mentor.CreatedAt,
	); err != nil {
		return Mentor{}, err
	}
	if err := json.Unmarshal([]byte(areas), &mentor.ExpertiseAreas); err != nil {
		return Mentor{}, fmt.Errorf("decode expertise areas for %s: %w", mentor.ID, err)
	}
	mentor.UserID = userID.String
	mentor.JobTitle = jobTitle.String
	mentor.TeachingExperienceYears = int(years.Int64)
	mentor.HourlyRate = rate.Float64
	mentor.Rating = rating.Float64
	mentor.TotalStudents = int(students.Int64)
	mentor.Bio = bio.String
	return mentor, nil
}

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoListCoursesCatalogOrderWithLimit(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "difficulty_level", "duration_hours", "thumbnail_url", "provider", "category", "created_at"}).
		AddRow("course-1", "Go", "basics", "beginner", 10, nil, "SkillPath", "programming", now).
		AddRow("course-2", "SQL", nil, "intermediate", nil, nil, nil, nil, now)
	mock.ExpectQuery(`FROM courses ORDER BY created_at, id LIMIT \$1`).
		WithArgs(20).
		WillReturnRows(rows)

	courses, err := repo.ListCourses(context.Background(), ListOptions{Limit: 20})
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	if courses[0].DifficultyLevel != "beginner" || courses[0].DurationHours != 10 {
		t.Fatalf("unexpected first course: %+v", courses[0])
	}
	if courses[1].Description != "" || courses[1].Category != "" {
		t.Fatalf("expected null columns to map to empty strings: %+v", courses[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetCareerPathNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`FROM career_paths WHERE id = \$1`).
		WithArgs("path-1").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetCareerPath(context.Background(), "path-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetMentorDecodesExpertise(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "full_name", "job_title", "expertise_areas", "teaching_experience_years", "hourly_rate", "rating", "total_students", "bio", "created_at"}).
		AddRow("mentor-1", "user-9", "Ana", "Staff Engineer", `["Go","SQL"]`, 8, 90.0, 4.8, 120, "bio", now)
	mock.ExpectQuery(`FROM educator_profiles WHERE id = \$1`).
		WithArgs("mentor-1").
		WillReturnRows(rows)

	mentor, err := repo.GetMentor(context.Background(), "mentor-1")
	if err != nil {
		t.Fatalf("GetMentor: %v", err)
	}
	if len(mentor.ExpertiseAreas) != 2 || mentor.ExpertiseAreas[1] != "SQL" {
		t.Fatalf("unexpected expertise: %+v", mentor.ExpertiseAreas)
	}
	if mentor.Rating != 4.8 {
		t.Fatalf("expected rating 4.8, got %v", mentor.Rating)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListMentorsFiltersByRating(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows([]string{"id", "user_id", "full_name", "job_title", "expertise_areas", "teaching_experience_years", "hourly_rate", "rating", "total_students", "bio", "created_at"})
	mock.ExpectQuery(`FROM educator_profiles WHERE rating >= \$1 ORDER BY rating DESC, id LIMIT \$2`).
		WithArgs(MentorMinRating, MentorListLimit).
		WillReturnRows(rows)

	mentors, err := repo.ListMentors(context.Background(), MentorMinRating, MentorListLimit)
	if err != nil {
		t.Fatalf("ListMentors: %v", err)
	}
	if len(mentors) != 0 {
		t.Fatalf("expected no mentors, got %d", len(mentors))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetJobPostingNullableColumns(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "recruiter_id", "company_name", "industry", "title", "description", "location", "job_type", "experience_level", "salary_min", "salary_max", "remote_allowed", "application_deadline", "status", "applications_count", "created_at"}).
		AddRow("job-1", "rec-1", "Acme", "software", "Engineer", "desc", "Berlin", "full_time", "mid", 50000, nil, true, nil, "open", 3, now)
	mock.ExpectQuery(`FROM job_postings WHERE id = \$1`).
		WithArgs("job-1").
		WillReturnRows(rows)

	job, err := repo.GetJobPosting(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("GetJobPosting: %v", err)
	}
	if job.SalaryMin == nil || *job.SalaryMin != 50000 {
		t.Fatalf("expected salary min 50000, got %v", job.SalaryMin)
	}
	if job.SalaryMax != nil || job.ApplicationDeadline != nil {
		t.Fatalf("expected nil salary max and deadline: %+v", job)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoIncrementApplicationsCountMissing(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`UPDATE job_postings SET applications_count = applications_count \+ 1`).
		WithArgs("job-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.IncrementApplicationsCount(context.Background(), "job-404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListCareerPathSkills(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"career_path_id", "importance_level", "id", "name", "category", "description", "created_at"}).
		AddRow("path-1", 5, "skill-go", "Go", "programming", nil, now).
		AddRow("path-1", 3, "skill-sql", "SQL", "data", "queries", now)
	mock.ExpectQuery(`FROM career_path_skills cps`).
		WithArgs("path-1").
		WillReturnRows(rows)

	skills, err := repo.ListCareerPathSkills(context.Background(), "path-1")
	if err != nil {
		t.Fatalf("ListCareerPathSkills: %v", err)
	}
	if len(skills) != 2 || skills[0].Skill.Name != "Go" || skills[1].Skill.Description != "queries" {
		t.Fatalf("unexpected skills: %+v", skills)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPGRepoCreateDuplicateIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	repo := &PGRepo{DB: db}

	now := time.Now().UTC()
	app := Application{ID: "app-1", JobID: "job-1", UserID: "user-1", Status: ApplicationStatusPending, MatchScore: 88, AppliedAt: now, UpdatedAt: now}
	mock.ExpectExec("INSERT INTO job_applications").
		WithArgs(app.ID, app.JobID, app.UserID, "", app.Status, app.MatchScore, now, now).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "job_applications_job_id_user_id_key"})

	if err := repo.Create(context.Background(), app); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	repo := &PGRepo{DB: db}

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "job_id", "user_id", "cover_letter", "status", "match_score", "applied_at", "updated_at"}).
		AddRow("app-1", "job-1", "user-1", "hi", "pending", 91, now, now)
	mock.ExpectQuery("FROM job_applications").WithArgs("user-1").WillReturnRows(rows)

	apps, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(apps) != 1 || apps[0].MatchScore != 91 {
		t.Fatalf("unexpected applications: %+v", apps)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

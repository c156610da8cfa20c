package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillpath-backend/internal/catalog"
	"skillpath-backend/internal/shared/scoring"
	"skillpath-backend/internal/shared/telemetry"
)

// Postings is the slice of the catalog the jobs flow needs.
type Postings interface {
	ListOpenJobPostings(ctx context.Context) ([]catalog.JobPosting, error)
	GetJobPosting(ctx context.Context, jobID string) (catalog.JobPosting, error)
	IncrementApplicationsCount(ctx context.Context, jobID string) error
}

type Service struct {
	Repo     Repo
	Postings Postings
	Scorer   scoring.Scorer
	Now      func() time.Time
}

func NewService(repo Repo, postings Postings, scorer scoring.Scorer) *Service {
	return &Service{Repo: repo, Postings: postings, Scorer: scorer, Now: func() time.Time { return time.Now().UTC() }}
}

func (s *Service) ready() error {
	if s == nil || s.Repo == nil || s.Postings == nil || s.Scorer == nil {
		return errors.New("jobs service not configured")
	}
	return nil
}

// List returns open postings, newest first, filtered by q and annotated with
// the user's application status.
func (s *Service) List(ctx context.Context, userID string, q Query) ([]Listing, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	postings, err := s.Postings.ListOpenJobPostings(ctx)
	if err != nil {
		return nil, err
	}
	apps, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byJob := make(map[string]Application, len(apps))
	for _, app := range apps {
		byJob[app.JobID] = app
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	jobType := strings.TrimSpace(q.Type)
	out := make([]Listing, 0, len(postings))
	for _, p := range postings {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) &&
			!strings.Contains(strings.ToLower(p.CompanyName), search) {
			continue
		}
		if jobType != "" && !strings.EqualFold(jobType, "all") && !strings.EqualFold(jobType, p.JobType) {
			continue
		}
		if q.Remote != nil && p.RemoteAllowed != *q.Remote {
			continue
		}
		listing := Listing{JobPosting: p}
		if app, ok := byJob[p.ID]; ok {
			listing.ApplicationStatus = app.Status
			listing.MatchScore = app.MatchScore
		}
		out = append(out, listing)
	}
	return out, nil
}

// Apply submits a pending application with a placeholder match score in
// [70, 100) and bumps the posting's application counter.
func (s *Service) Apply(ctx context.Context, userID, jobID, coverLetter string) (Application, error) {
	if err := s.ready(); err != nil {
		return Application{}, err
	}
	if strings.TrimSpace(jobID) == "" {
		return Application{}, fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	job, err := s.Postings.GetJobPosting(ctx, jobID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	if job.Status != catalog.JobStatusOpen {
		return Application{}, fmt.Errorf("%w: posting is not open", ErrInvalidInput)
	}

	now := s.Now()
	app := Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		UserID:      userID,
		CoverLetter: strings.TrimSpace(coverLetter),
		Status:      ApplicationStatusPending,
		MatchScore:  s.Scorer.Score(matchScoreMin, matchScoreMax),
		AppliedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}
	if err := s.Postings.IncrementApplicationsCount(ctx, jobID); err != nil {
		telemetry.Warn("jobs.applications_count_failed", map[string]any{
			"job_id": jobID,
			"error":  err.Error(),
		})
	} else {
		job.ApplicationsCount++
	}
	app.Job = &job
	return app, nil
}

// Applications lists the user's applications, newest first, with postings attached.
func (s *Service) Applications(ctx context.Context, userID string) ([]Application, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	apps, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		job, err := s.Postings.GetJobPosting(ctx, apps[i].JobID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				continue
			}
			return nil, err
		}
		apps[i].Job = &job
	}
	return apps, nil
}

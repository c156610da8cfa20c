package mentorship

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillpath-backend/internal/catalog"
)

// MentorReader resolves educator profiles.
type MentorReader interface {
	GetMentor(ctx context.Context, mentorID string) (catalog.Mentor, error)
}

type Service struct {
	Repo    Repo
	Mentors MentorReader
	Now     func() time.Time
}

func NewService(repo Repo, mentors MentorReader) *Service {
	return &Service{Repo: repo, Mentors: mentors, Now: func() time.Time { return time.Now().UTC() }}
}

// Request files a pending mentorship between the educator behind mentorID and the caller.
func (s *Service) Request(ctx context.Context, userID, mentorID, focusArea string) (Mentorship, error) {
	if s == nil || s.Repo == nil || s.Mentors == nil {
		return Mentorship{}, errors.New("mentorship service not configured")
	}
	focusArea = strings.TrimSpace(focusArea)
	if focusArea == "" {
		return Mentorship{}, fmt.Errorf("%w: focus area is required", ErrInvalidInput)
	}
	mentor, err := s.Mentors.GetMentor(ctx, mentorID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return Mentorship{}, ErrNotFound
		}
		return Mentorship{}, err
	}
	if mentor.UserID == userID {
		return Mentorship{}, fmt.Errorf("%w: cannot request mentorship from yourself", ErrInvalidInput)
	}
	m := Mentorship{
		ID:        uuid.NewString(),
		MentorID:  mentor.UserID,
		MenteeID:  userID,
		FocusArea: focusArea,
		Status:    StatusPending,
		CreatedAt: s.Now(),
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return Mentorship{}, err
	}
	return m, nil
}

// Active lists the caller's active mentorships on either side.
func (s *Service) Active(ctx context.Context, userID string) ([]Mentorship, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("mentorship service not configured")
	}
	return s.Repo.ListForUser(ctx, userID, StatusActive)
}

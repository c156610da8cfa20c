package profiles

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	maxFullNameLen = 120
	maxTextLen     = 2000
	maxYearsOfWork = 80
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Get returns the stored profile, or a blank one carrying only the id when
// the user has never saved one.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Profile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	profile, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return Profile{ID: userID}, nil
	}
	return profile, err
}

// Update applies the non-nil fields of in over the stored profile.
func (s *Service) Update(ctx context.Context, userID string, in Update) (Profile, error) {
	if issues := validate(in); len(issues) > 0 {
		return Profile{}, &ValidationError{Issues: issues}
	}
	current, err := s.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	apply(&current.FullName, in.FullName)
	apply(&current.Bio, in.Bio)
	apply(&current.AvatarURL, in.AvatarURL)
	apply(&current.JobTitle, in.JobTitle)
	apply(&current.CareerGoals, in.CareerGoals)
	if in.YearsExperience != nil {
		current.YearsExperience = *in.YearsExperience
	}
	return s.Repo.Upsert(ctx, current)
}

// ValidationError lists per-field problems with an Update.
type ValidationError struct {
	Issues []map[string]string
}

func (e *ValidationError) Error() string { return "invalid profile input" }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func validate(in Update) []map[string]string {
	var issues []map[string]string
	add := func(field, issue string) {
		issues = append(issues, map[string]string{"field": field, "issue": issue})
	}
	if in.FullName != nil && len(strings.TrimSpace(*in.FullName)) > maxFullNameLen {
		add("fullName", "too_long")
	}
	for field, v := range map[string]*string{"bio": in.Bio, "jobTitle": in.JobTitle, "careerGoals": in.CareerGoals} {
		if v != nil && len(*v) > maxTextLen {
			add(field, "too_long")
		}
	}
	if in.AvatarURL != nil && strings.TrimSpace(*in.AvatarURL) != "" {
		u, err := url.Parse(strings.TrimSpace(*in.AvatarURL))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			add("avatarUrl", "invalid")
		}
	}
	if in.YearsExperience != nil && (*in.YearsExperience < 0 || *in.YearsExperience > maxYearsOfWork) {
		add("yearsExperience", "out_of_range")
	}
	return issues
}

func apply(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

package catalog

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	// MentorMinRating is the lowest rating listed on the mentors page.
	MentorMinRating = 3.5
	// MentorListLimit caps the mentors page.
	MentorListLimit = 12
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// CourseQuery filters the course browser. Empty or "all" disables a filter.
type CourseQuery struct {
	Search   string
	Level    string
	Category string
}

// CareerPathDetail is a career path with its required skills, most important first.
type CareerPathDetail struct {
	CareerPath
	RequiredSkills []CareerPathSkill `json:"requiredSkills"`
}

func (s *Service) BrowseCourses(ctx context.Context, q CourseQuery) ([]Course, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("catalog service not configured")
	}
	courses, err := s.Repo.ListCourses(ctx, ListOptions{Order: OrderNewest})
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Title), search) &&
			!strings.Contains(strings.ToLower(c.Description), search) {
			continue
		}
		if !matchesFacet(q.Level, c.DifficultyLevel) || !matchesFacet(q.Category, c.Category) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *Service) GetCourse(ctx context.Context, courseID string) (Course, error) {
	if s == nil || s.Repo == nil {
		return Course{}, errors.New("catalog service not configured")
	}
	if strings.TrimSpace(courseID) == "" {
		return Course{}, ErrNotFound
	}
	return s.Repo.GetCourse(ctx, courseID)
}

// CareerPaths lists every career path ordered by level and loads the
// required skills of each path concurrently.
func (s *Service) CareerPaths(ctx context.Context) ([]CareerPathDetail, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("catalog service not configured")
	}
	paths, err := s.Repo.ListCareerPaths(ctx, ListOptions{Order: OrderLevel})
	if err != nil {
		return nil, err
	}

	out := make([]CareerPathDetail, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, p := range paths {
		g.Go(func() error {
			skills, err := s.Repo.ListCareerPathSkills(gctx, p.ID)
			if err != nil {
				return err
			}
			if skills == nil {
				skills = []CareerPathSkill{}
			}
			out[i] = CareerPathDetail{CareerPath: p, RequiredSkills: skills}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Skills(ctx context.Context) ([]Skill, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("catalog service not configured")
	}
	return s.Repo.ListSkills(ctx)
}

// Mentors lists top-rated mentors, optionally narrowed by name, title or expertise.
func (s *Service) Mentors(ctx context.Context, search string) ([]Mentor, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("catalog service not configured")
	}
	mentors, err := s.Repo.ListMentors(ctx, MentorMinRating, MentorListLimit)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return mentors, nil
	}
	out := make([]Mentor, 0, len(mentors))
	for _, m := range mentors {
		if mentorMatches(m, needle) {
			out = append(out, m)
		}
	}
	return out, nil
}

func mentorMatches(m Mentor, needle string) bool {
	if strings.Contains(strings.ToLower(m.FullName), needle) || strings.Contains(strings.ToLower(m.JobTitle), needle) {
		return true
	}
	for _, area := range m.ExpertiseAreas {
		if strings.Contains(strings.ToLower(area), needle) {
			return true
		}
	}
	return false
}

func matchesFacet(want, have string) bool {
	want = strings.TrimSpace(want)
	if want == "" || strings.EqualFold(want, "all") {
		return true
	}
	return strings.EqualFold(want, have)
}

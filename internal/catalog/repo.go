package catalog

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Order selects the ordering of a catalog listing.
type Order int

const (
	// OrderCatalog is insertion order (oldest first).
	OrderCatalog Order = iota
	// OrderNewest is newest first.
	OrderNewest
	// OrderLevel sorts career paths by level label.
	OrderLevel
)

// ListOptions bounds and orders a listing. Limit <= 0 means no limit.
type ListOptions struct {
	Limit int
	Order Order
}

// Repo defines read access to the catalog plus the one counter the jobs flow bumps.
type Repo interface {
	ListCourses(ctx context.Context, opts ListOptions) ([]Course, error)
	GetCourse(ctx context.Context, courseID string) (Course, error)
	ListCareerPaths(ctx context.Context, opts ListOptions) ([]CareerPath, error)
	GetCareerPath(ctx context.Context, careerPathID string) (CareerPath, error)
	ListCareerPathSkills(ctx context.Context, careerPathID string) ([]CareerPathSkill, error)
	ListSkills(ctx context.Context) ([]Skill, error)
	GetSkill(ctx context.Context, skillID string) (Skill, error)
	ListOpenJobPostings(ctx context.Context) ([]JobPosting, error)
	GetJobPosting(ctx context.Context, jobID string) (JobPosting, error)
	IncrementApplicationsCount(ctx context.Context, jobID string) error
	ListMentors(ctx context.Context, minRating float64, limit int) ([]Mentor, error)
	GetMentor(ctx context.Context, mentorID string) (Mentor, error)
}

package jobs

import (
	"time"

	"skillpath-backend/internal/catalog"
)

const (
	ApplicationStatusPending = "pending"

	matchScoreMin = 70
	matchScoreMax = 100
)

// Application is a user's application to a job posting.
type Application struct {
	ID          string              `json:"id"`
	JobID       string              `json:"jobId"`
	UserID      string              `json:"userId"`
	CoverLetter string              `json:"coverLetter"`
	Status      string              `json:"status"`
	MatchScore  int                 `json:"matchScore"`
	AppliedAt   time.Time           `json:"appliedAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Job         *catalog.JobPosting `json:"job,omitempty"`
}

// Listing is an open posting annotated with the caller's application, if any.
type Listing struct {
	catalog.JobPosting
	ApplicationStatus string `json:"applicationStatus,omitempty"`
	MatchScore        int    `json:"matchScore,omitempty"`
}

// Query filters open postings. Empty or "all" Type and a nil Remote disable a filter.
type Query struct {
	Search string
	Type   string
	Remote *bool
}

package recommendations

import (
	"time"

	"skillpath-backend/internal/catalog"
)

// Type names the table a recommendation's target lives in.
type Type string

const (
	TypeCourse     Type = "course"
	TypeCareerPath Type = "career_path"
	TypeJob        Type = "job"
	TypeMentor     Type = "mentor"
)

// Valid reports whether t is one of the known recommendation types.
func (t Type) Valid() bool {
	switch t {
	case TypeCourse, TypeCareerPath, TypeJob, TypeMentor:
		return true
	default:
		return false
	}
}

// Recommendation is a stored suggestion pointing at a target entity.
type Recommendation struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Type            Type      `json:"recommendationType"`
	TargetID        string    `json:"targetId"`
	Reason          string    `json:"reason"`
	ConfidenceScore int       `json:"confidenceScore"`
	IsViewed        bool      `json:"isViewed"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Target is the resolved entity behind a recommendation. The set of
// implementations is closed: one per Type.
type Target interface {
	Kind() Type
	sealed()
}

type CourseTarget struct{ catalog.Course }

type CareerPathTarget struct{ catalog.CareerPath }

type JobTarget struct{ catalog.JobPosting }

type MentorTarget struct{ catalog.Mentor }

func (CourseTarget) Kind() Type     { return TypeCourse }
func (CareerPathTarget) Kind() Type { return TypeCareerPath }
func (JobTarget) Kind() Type        { return TypeJob }
func (MentorTarget) Kind() Type     { return TypeMentor }

func (CourseTarget) sealed()     {}
func (CareerPathTarget) sealed() {}
func (JobTarget) sealed()        {}
func (MentorTarget) sealed()     {}

// Enriched is a recommendation with its target attached. A nil Target means
// the target could not be resolved.
type Enriched struct {
	Recommendation
	Target Target `json:"target"`
}

// State is the lifecycle of a View.
type State string

const (
	StateIdle      State = "idle"
	StateLoading   State = "loading"
	StatePopulated State = "populated"
	StateEmpty     State = "empty"
)

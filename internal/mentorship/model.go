package mentorship

import "time"

const (
	StatusPending = "pending"
	StatusActive  = "active"
)

// Mentorship links a mentor's user id to a mentee's user id.
type Mentorship struct {
	ID                string     `json:"id"`
	MentorID          string     `json:"mentorId"`
	MenteeID          string     `json:"menteeId"`
	FocusArea         string     `json:"focusArea"`
	Status            string     `json:"status"`
	SessionsCompleted int        `json:"sessionsCompleted"`
	NextSessionDate   *time.Time `json:"nextSessionDate,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

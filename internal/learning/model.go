package learning

import (
	"time"

	"skillpath-backend/internal/catalog"
)

const (
	CourseStatusInProgress = "in_progress"
	CourseStatusCompleted  = "completed"

	GoalStatusActive = "active"

	MinProficiency = 1
	MaxProficiency = 5
)

// UserSkill is a skill a user tracks with a self-assessed proficiency.
type UserSkill struct {
	ID               string         `json:"id"`
	UserID           string         `json:"userId"`
	SkillID          string         `json:"skillId"`
	ProficiencyLevel int            `json:"proficiencyLevel"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	Skill            *catalog.Skill `json:"skill,omitempty"`
}

// UserCourse is a course enrollment.
type UserCourse struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	CourseID           string          `json:"courseId"`
	Status             string          `json:"status"`
	ProgressPercentage int             `json:"progressPercentage"`
	StartedAt          *time.Time      `json:"startedAt,omitempty"`
	CompletedAt        *time.Time      `json:"completedAt,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	Course             *catalog.Course `json:"course,omitempty"`
}

// CareerGoal is a career path a user is working towards.
type CareerGoal struct {
	ID           string              `json:"id"`
	UserID       string              `json:"userId"`
	CareerPathID string              `json:"careerPathId"`
	TargetDate   *time.Time          `json:"targetDate,omitempty"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	CareerPath   *catalog.CareerPath `json:"careerPath,omitempty"`
}

// Summary backs the learner dashboard.
type Summary struct {
	CoursesInProgress    int              `json:"coursesInProgress"`
	CoursesCompleted     int              `json:"coursesCompleted"`
	CompletionPercentage int              `json:"completionPercentage"`
	SkillsTracked        int              `json:"skillsTracked"`
	CareerGoals          int              `json:"careerGoals"`
	RecentCourses        []UserCourse     `json:"recentCourses"`
	TopSkills            []UserSkill      `json:"topSkills"`
	SuggestedCourses     []catalog.Course `json:"suggestedCourses"`
}

package learning

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// Repo persists per-user learning records. Every lookup is scoped to the owner.
type Repo interface {
	ListUserSkills(ctx context.Context, userID string) ([]UserSkill, error)
	CreateUserSkill(ctx context.Context, skill UserSkill) error
	UpdateUserSkillLevel(ctx context.Context, userID, userSkillID string, level int, updatedAt time.Time) error
	DeleteUserSkill(ctx context.Context, userID, userSkillID string) error

	ListUserCourses(ctx context.Context, userID string) ([]UserCourse, error)
	GetUserCourse(ctx context.Context, userID, userCourseID string) (UserCourse, error)
	CreateUserCourse(ctx context.Context, course UserCourse) error
	UpdateUserCourse(ctx context.Context, course UserCourse) error

	ListCareerGoals(ctx context.Context, userID, status string) ([]CareerGoal, error)
	CreateCareerGoal(ctx context.Context, goal CareerGoal) error
}

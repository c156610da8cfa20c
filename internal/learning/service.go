package learning

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"skillpath-backend/internal/catalog"
)

const (
	recentCoursesLimit    = 3
	topSkillsLimit        = 5
	suggestedCoursesLimit = 6
	goalHorizonMonths     = 12
)

// CatalogReader is the slice of the catalog the learning flows read.
type CatalogReader interface {
	GetSkill(ctx context.Context, skillID string) (catalog.Skill, error)
	GetCourse(ctx context.Context, courseID string) (catalog.Course, error)
	GetCareerPath(ctx context.Context, careerPathID string) (catalog.CareerPath, error)
	ListCourses(ctx context.Context, opts catalog.ListOptions) ([]catalog.Course, error)
}

type Service struct {
	Repo    Repo
	Catalog CatalogReader
	Now     func() time.Time
}

func NewService(repo Repo, cat CatalogReader) *Service {
	return &Service{Repo: repo, Catalog: cat, Now: func() time.Time { return time.Now().UTC() }}
}

func (s *Service) ready() error {
	if s == nil || s.Repo == nil || s.Catalog == nil {
		return errors.New("learning service not configured")
	}
	return nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}

// Skills returns the user's tracked skills with catalog details attached.
func (s *Service) Skills(ctx context.Context, userID string) ([]UserSkill, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	skills, err := s.Repo.ListUserSkills(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range skills {
		skill, err := s.Catalog.GetSkill(ctx, skills[i].SkillID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				continue
			}
			return nil, err
		}
		skills[i].Skill = &skill
	}
	return skills, nil
}

func (s *Service) AddSkill(ctx context.Context, userID, skillID string, level int) (UserSkill, error) {
	if err := s.ready(); err != nil {
		return UserSkill{}, err
	}
	if strings.TrimSpace(skillID) == "" {
		return UserSkill{}, fmt.Errorf("%w: skill id is required", ErrInvalidInput)
	}
	if err := validateLevel(level); err != nil {
		return UserSkill{}, err
	}
	skill, err := s.Catalog.GetSkill(ctx, skillID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return UserSkill{}, fmt.Errorf("%w: unknown skill", ErrInvalidInput)
		}
		return UserSkill{}, err
	}
	now := s.now()
	us := UserSkill{
		ID:               uuid.NewString(),
		UserID:           userID,
		SkillID:          skillID,
		ProficiencyLevel: level,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Repo.CreateUserSkill(ctx, us); err != nil {
		return UserSkill{}, err
	}
	us.Skill = &skill
	return us, nil
}

func (s *Service) UpdateSkillLevel(ctx context.Context, userID, userSkillID string, level int) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := validateLevel(level); err != nil {
		return err
	}
	return s.Repo.UpdateUserSkillLevel(ctx, userID, userSkillID, level, s.now())
}

func (s *Service) RemoveSkill(ctx context.Context, userID, userSkillID string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Repo.DeleteUserSkill(ctx, userID, userSkillID)
}

// Courses returns the user's enrollments, newest first, with course details attached.
func (s *Service) Courses(ctx context.Context, userID string) ([]UserCourse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	courses, err := s.Repo.ListUserCourses(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.attachCourses(ctx, courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Enroll starts a course: status in_progress, progress 0, started now.
func (s *Service) Enroll(ctx context.Context, userID, courseID string) (UserCourse, error) {
	if err := s.ready(); err != nil {
		return UserCourse{}, err
	}
	if strings.TrimSpace(courseID) == "" {
		return UserCourse{}, fmt.Errorf("%w: course id is required", ErrInvalidInput)
	}
	course, err := s.Catalog.GetCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return UserCourse{}, fmt.Errorf("%w: unknown course", ErrInvalidInput)
		}
		return UserCourse{}, err
	}
	now := s.now()
	uc := UserCourse{
		ID:                 uuid.NewString(),
		UserID:             userID,
		CourseID:           courseID,
		Status:             CourseStatusInProgress,
		ProgressPercentage: 0,
		StartedAt:          &now,
		CreatedAt:          now,
	}
	if err := s.Repo.CreateUserCourse(ctx, uc); err != nil {
		return UserCourse{}, err
	}
	uc.Course = &course
	return uc, nil
}

// UpdateProgress clamps progress to 0..100. Reaching 100 completes the course.
func (s *Service) UpdateProgress(ctx context.Context, userID, userCourseID string, progress int) (UserCourse, error) {
	if err := s.ready(); err != nil {
		return UserCourse{}, err
	}
	uc, err := s.Repo.GetUserCourse(ctx, userID, userCourseID)
	if err != nil {
		return UserCourse{}, err
	}
	uc.ProgressPercentage = clamp(progress, 0, 100)
	if uc.ProgressPercentage == 100 {
		now := s.now()
		uc.Status = CourseStatusCompleted
		uc.CompletedAt = &now
	}
	if err := s.Repo.UpdateUserCourse(ctx, uc); err != nil {
		return UserCourse{}, err
	}
	return uc, nil
}

// Goals returns the user's active career goals.
func (s *Service) Goals(ctx context.Context, userID string) ([]CareerGoal, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	goals, err := s.Repo.ListCareerGoals(ctx, userID, GoalStatusActive)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		path, err := s.Catalog.GetCareerPath(ctx, goals[i].CareerPathID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				continue
			}
			return nil, err
		}
		goals[i].CareerPath = &path
	}
	return goals, nil
}

// AddGoal records an active goal targeting today plus twelve months.
func (s *Service) AddGoal(ctx context.Context, userID, careerPathID string) (CareerGoal, error) {
	if err := s.ready(); err != nil {
		return CareerGoal{}, err
	}
	if strings.TrimSpace(careerPathID) == "" {
		return CareerGoal{}, fmt.Errorf("%w: career path id is required", ErrInvalidInput)
	}
	path, err := s.Catalog.GetCareerPath(ctx, careerPathID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return CareerGoal{}, fmt.Errorf("%w: unknown career path", ErrInvalidInput)
		}
		return CareerGoal{}, err
	}
	now := s.now()
	target := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, goalHorizonMonths, 0)
	goal := CareerGoal{
		ID:           uuid.NewString(),
		UserID:       userID,
		CareerPathID: careerPathID,
		TargetDate:   &target,
		Status:       GoalStatusActive,
		CreatedAt:    now,
	}
	if err := s.Repo.CreateCareerGoal(ctx, goal); err != nil {
		return CareerGoal{}, err
	}
	goal.CareerPath = &path
	return goal, nil
}

// Summary loads the dashboard figures concurrently.
func (s *Service) Summary(ctx context.Context, userID string) (Summary, error) {
	if err := s.ready(); err != nil {
		return Summary{}, err
	}
	var (
		courses   []UserCourse
		skills    []UserSkill
		goals     []CareerGoal
		suggested []catalog.Course
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = s.Repo.ListUserCourses(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = s.Skills(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.Repo.ListCareerGoals(gctx, userID, GoalStatusActive)
		return err
	})
	g.Go(func() error {
		var err error
		suggested, err = s.Catalog.ListCourses(gctx, catalog.ListOptions{Limit: suggestedCoursesLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := Summary{
		SkillsTracked:    len(skills),
		CareerGoals:      len(goals),
		SuggestedCourses: suggested,
	}
	for _, c := range courses {
		switch c.Status {
		case CourseStatusInProgress:
			summary.CoursesInProgress++
		case CourseStatusCompleted:
			summary.CoursesCompleted++
		}
	}
	if len(courses) > 0 {
		summary.CompletionPercentage = int(math.Round(float64(summary.CoursesCompleted) * 100 / float64(len(courses))))
	}

	recent := courses
	if len(recent) > recentCoursesLimit {
		recent = recent[:recentCoursesLimit]
	}
	if err := s.attachCourses(ctx, recent); err != nil {
		return Summary{}, err
	}
	summary.RecentCourses = recent

	sort.SliceStable(skills, func(i, j int) bool { return skills[i].ProficiencyLevel > skills[j].ProficiencyLevel })
	if len(skills) > topSkillsLimit {
		skills = skills[:topSkillsLimit]
	}
	summary.TopSkills = skills

	if summary.RecentCourses == nil {
		summary.RecentCourses = []UserCourse{}
	}
	if summary.TopSkills == nil {
		summary.TopSkills = []UserSkill{}
	}
	if summary.SuggestedCourses == nil {
		summary.SuggestedCourses = []catalog.Course{}
	}
	return summary, nil
}

func (s *Service) attachCourses(ctx context.Context, courses []UserCourse) error {
	for i := range courses {
		course, err := s.Catalog.GetCourse(ctx, courses[i].CourseID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				continue
			}
			return err
		}
		courses[i].Course = &course
	}
	return nil
}

func validateLevel(level int) error {
	if level < MinProficiency || level > MaxProficiency {
		return fmt.Errorf("%w: proficiency level must be between %d and %d", ErrInvalidInput, MinProficiency, MaxProficiency)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

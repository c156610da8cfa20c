package recommendations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"skillpath-backend/internal/catalog"
	"skillpath-backend/internal/learning"
	"skillpath-backend/internal/shared/metrics"
	"skillpath-backend/internal/shared/scoring"
	"skillpath-backend/internal/shared/telemetry"
)

const (
	// CatalogSliceLimit bounds the course catalog read by one pass.
	CatalogSliceLimit = 20
	// MaxCourses and MaxCareerPaths cap what one pass emits per type.
	MaxCourses     = 3
	MaxCareerPaths = 2

	courseScoreMin     = 75
	courseScoreMax     = 95
	careerPathScoreMin = 70
	careerPathScoreMax = 85

	courseReasonFormat = "Based on your current learning path and skill level, this %s course aligns with your goals."
	careerPathReason   = "This career path matches your skill profile and can help you achieve your career goals."
)

// LearningReader reads the user's learning records.
type LearningReader interface {
	ListUserSkills(ctx context.Context, userID string) ([]learning.UserSkill, error)
	ListUserCourses(ctx context.Context, userID string) ([]learning.UserCourse, error)
}

// CatalogReader reads the catalog slices a pass draws from.
type CatalogReader interface {
	ListCourses(ctx context.Context, opts catalog.ListOptions) ([]catalog.Course, error)
	ListCareerPaths(ctx context.Context, opts catalog.ListOptions) ([]catalog.CareerPath, error)
}

// Generator produces the initial recommendation set for a user with none on record.
type Generator struct {
	Repo     Repo
	Learning LearningReader
	Catalog  CatalogReader
	Scorer   scoring.Scorer
	Now      func() time.Time
	NewID    func() string
}

func NewGenerator(repo Repo, learningReader LearningReader, cat CatalogReader, scorer scoring.Scorer) *Generator {
	return &Generator{
		Repo:     repo,
		Learning: learningReader,
		Catalog:  cat,
		Scorer:   scorer,
		Now:      func() time.Time { return time.Now().UTC() },
		NewID:    uuid.NewString,
	}
}

// Generate runs one pass and returns how many rows it persisted. It does not
// check for existing rows; calling it twice inserts two batches.
func (g *Generator) Generate(ctx context.Context, userID string) (int, error) {
	if g == nil || g.Repo == nil || g.Learning == nil || g.Catalog == nil || g.Scorer == nil {
		return 0, errors.New("recommendation generator not configured")
	}

	var (
		skills   []learning.UserSkill
		enrolled []learning.UserCourse
		courses  []catalog.Course
		paths    []catalog.CareerPath
	)
	eg, ectx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		skills, err = g.Learning.ListUserSkills(ectx, userID)
		if err != nil {
			return fmt.Errorf("list user skills: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		enrolled, err = g.Learning.ListUserCourses(ectx, userID)
		if err != nil {
			return fmt.Errorf("list user courses: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		courses, err = g.Catalog.ListCourses(ectx, catalog.ListOptions{Limit: CatalogSliceLimit})
		if err != nil {
			return fmt.Errorf("list courses: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		paths, err = g.Catalog.ListCareerPaths(ectx, catalog.ListOptions{})
		if err != nil {
			return fmt.Errorf("list career paths: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		metrics.GenerationPassesTotal.WithLabelValues("failed").Inc()
		return 0, err
	}

	batch := g.build(userID, enrolled, courses, paths)
	if len(batch) == 0 {
		metrics.GenerationPassesTotal.WithLabelValues("empty").Inc()
		telemetry.Info("recommendations.generate.empty", map[string]any{
			"user_id":     userID,
			"skill_count": len(skills),
		})
		return 0, nil
	}

	if err := g.Repo.CreateBatch(ctx, batch); err != nil {
		metrics.GenerationPassesTotal.WithLabelValues("failed").Inc()
		return 0, fmt.Errorf("persist recommendations: %w", err)
	}

	metrics.GenerationPassesTotal.WithLabelValues("generated").Inc()
	for _, rec := range batch {
		metrics.GeneratedTotal.WithLabelValues(string(rec.Type)).Inc()
	}
	telemetry.Info("recommendations.generate.complete", map[string]any{
		"user_id":     userID,
		"generated":   len(batch),
		"skill_count": len(skills),
	})
	return len(batch), nil
}

func (g *Generator) build(userID string, enrolled []learning.UserCourse, courses []catalog.Course, paths []catalog.CareerPath) []Recommendation {
	enrolledIDs := make(map[string]struct{}, len(enrolled))
	for _, uc := range enrolled {
		enrolledIDs[uc.CourseID] = struct{}{}
	}

	now := g.Now()
	batch := make([]Recommendation, 0, MaxCourses+MaxCareerPaths)
	for _, c := range courses {
		if len(batch) == MaxCourses {
			break
		}
		if _, ok := enrolledIDs[c.ID]; ok {
			continue
		}
		batch = append(batch, Recommendation{
			ID:              g.NewID(),
			UserID:          userID,
			Type:            TypeCourse,
			TargetID:        c.ID,
			Reason:          fmt.Sprintf(courseReasonFormat, c.DifficultyLevel),
			ConfidenceScore: g.Scorer.Score(courseScoreMin, courseScoreMax),
			CreatedAt:       now,
		})
	}
	for i, p := range paths {
		if i == MaxCareerPaths {
			break
		}
		batch = append(batch, Recommendation{
			ID:              g.NewID(),
			UserID:          userID,
			Type:            TypeCareerPath,
			TargetID:        p.ID,
			Reason:          careerPathReason,
			ConfidenceScore: g.Scorer.Score(careerPathScoreMin, careerPathScoreMax),
			CreatedAt:       now,
		})
	}
	return batch
}

package recommendations

import (
	"context"
	"fmt"
	"sync"
	"time"

	"skillpath-backend/internal/catalog"
	"skillpath-backend/internal/learning"
	"skillpath-backend/internal/shared/scoring"
)

var fixtureTime = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

// newScenarioCatalog holds courses C1..C5 and career paths P1..P3 in catalog order.
func newScenarioCatalog() *catalog.MemoryRepo {
	cat := catalog.NewMemoryRepo()
	levels := []string{"beginner", "intermediate", "advanced", "beginner", "intermediate"}
	for i := 1; i <= 5; i++ {
		cat.PutCourse(catalog.Course{
			ID:              fmt.Sprintf("C%d", i),
			Title:           fmt.Sprintf("Course %d", i),
			DifficultyLevel: levels[i-1],
			CreatedAt:       fixtureTime.Add(time.Duration(i) * time.Minute),
		})
	}
	for i := 1; i <= 3; i++ {
		cat.PutCareerPath(catalog.CareerPath{
			ID:        fmt.Sprintf("P%d", i),
			Title:     fmt.Sprintf("Path %d", i),
			Level:     "entry",
			CreatedAt: fixtureTime.Add(time.Duration(i) * time.Minute),
		})
	}
	cat.PutJobPosting(catalog.JobPosting{ID: "J1", Title: "Engineer", CreatedAt: fixtureTime})
	cat.PutMentor(catalog.Mentor{ID: "M1", UserID: "educator-1", FullName: "Ana", Rating: 4.5, CreatedAt: fixtureTime})
	return cat
}

type fixture struct {
	repo     *scriptedRepo
	catalog  *catalog.MemoryRepo
	learning *learning.MemoryRepo
	gen      *Generator
	enr      *Enricher
}

func newFixture() *fixture {
	f := &fixture{
		repo:     &scriptedRepo{MemoryRepo: NewMemoryRepo()},
		catalog:  newScenarioCatalog(),
		learning: learning.NewMemoryRepo(),
	}
	f.gen = NewGenerator(f.repo, f.learning, f.catalog, scoring.NewRandom(1))
	f.gen.Now = func() time.Time { return fixtureTime }
	f.enr = NewEnricher(f.catalog)
	return f
}

func (f *fixture) enroll(userID, courseID string) {
	_ = f.learning.CreateUserCourse(context.Background(), learning.UserCourse{
		ID:       userID + "-" + courseID,
		UserID:   userID,
		CourseID: courseID,
		Status:   learning.CourseStatusInProgress,
	})
}

func (f *fixture) view(userID string) *View {
	return NewView(userID, f.repo, f.gen, f.enr)
}

// scriptedRepo wraps MemoryRepo with injectable failures and call counters.
type scriptedRepo struct {
	*MemoryRepo

	mu        sync.Mutex
	listErrs  []error
	listCalls int
	createErr error
	markErrs  []error
	markCalls int
}

func (r *scriptedRepo) ListByUser(ctx context.Context, userID string) ([]Recommendation, error) {
	r.mu.Lock()
	r.listCalls++
	var err error
	if len(r.listErrs) > 0 {
		err, r.listErrs = r.listErrs[0], r.listErrs[1:]
	}
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.MemoryRepo.ListByUser(ctx, userID)
}

func (r *scriptedRepo) CreateBatch(ctx context.Context, recs []Recommendation) error {
	if r.createErr != nil {
		return r.createErr
	}
	return r.MemoryRepo.CreateBatch(ctx, recs)
}

func (r *scriptedRepo) MarkViewed(ctx context.Context, userID, recommendationID string) error {
	r.mu.Lock()
	r.markCalls++
	var err error
	if len(r.markErrs) > 0 {
		err, r.markErrs = r.markErrs[0], r.markErrs[1:]
	}
	r.mu.Unlock()
	if err != nil {
		return err
	}
	return r.MemoryRepo.MarkViewed(ctx, userID, recommendationID)
}

func (r *scriptedRepo) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listCalls
}

type failingLearning struct {
	err error
}

func (f failingLearning) ListUserSkills(context.Context, string) ([]learning.UserSkill, error) {
	return nil, nil
}

func (f failingLearning) ListUserCourses(context.Context, string) ([]learning.UserCourse, error) {
	return nil, f.err
}

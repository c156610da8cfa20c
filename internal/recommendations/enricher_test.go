package recommendations

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"skillpath-backend/internal/catalog"
)

// slowTargets delays earlier ids longer so lookups finish out of order.
type slowTargets struct {
	*catalog.MemoryRepo
	delay map[string]time.Duration
	fail  map[string]error
}

func (s slowTargets) GetCourse(ctx context.Context, id string) (catalog.Course, error) {
	time.Sleep(s.delay[id])
	if err := s.fail[id]; err != nil {
		return catalog.Course{}, err
	}
	return s.MemoryRepo.GetCourse(ctx, id)
}

func TestEnrichPreservesOrderAndLength(t *testing.T) {
	cat := catalog.NewMemoryRepo()
	targets := slowTargets{MemoryRepo: cat, delay: map[string]time.Duration{}}
	var recs []Recommendation
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("course-%02d", i)
		cat.PutCourse(catalog.Course{ID: id, Title: id})
		targets.delay[id] = time.Duration(12-i) * time.Millisecond
		recs = append(recs, Recommendation{ID: fmt.Sprintf("rec-%02d", i), Type: TypeCourse, TargetID: id})
	}

	enr := NewEnricher(targets)
	enr.Parallelism = 4
	got := enr.Enrich(context.Background(), recs)
	if len(got) != len(recs) {
		t.Fatalf("expected %d items, got %d", len(recs), len(got))
	}
	for i, item := range got {
		if item.ID != recs[i].ID {
			t.Fatalf("position %d: expected %s, got %s", i, recs[i].ID, item.ID)
		}
		course, ok := item.Target.(CourseTarget)
		if !ok {
			t.Fatalf("position %d: expected course target, got %T", i, item.Target)
		}
		if course.ID != recs[i].TargetID {
			t.Fatalf("position %d: target %s does not match %s", i, course.ID, recs[i].TargetID)
		}
	}
}

func TestEnrichDeletedCareerPathIsAbsent(t *testing.T) {
	cat := newScenarioCatalog()
	cat.DeleteCareerPath("P2")
	recs := []Recommendation{
		{ID: "r1", Type: TypeCareerPath, TargetID: "P1"},
		{ID: "r2", Type: TypeCareerPath, TargetID: "P2"},
	}

	got := NewEnricher(cat).Enrich(context.Background(), recs)
	if _, ok := got[0].Target.(CareerPathTarget); !ok {
		t.Fatalf("expected P1 to resolve, got %T", got[0].Target)
	}
	if got[1].Target != nil {
		t.Fatalf("expected deleted P2 to be absent, got %+v", got[1].Target)
	}
	if got[1].ID != "r2" || got[1].TargetID != "P2" {
		t.Fatalf("row must survive without its target: %+v", got[1].Recommendation)
	}
}

func TestEnrichLookupErrorLeavesTargetAbsent(t *testing.T) {
	cat := newScenarioCatalog()
	targets := slowTargets{MemoryRepo: cat, fail: map[string]error{"C2": errors.New("timeout")}}
	recs := []Recommendation{
		{ID: "r1", Type: TypeCourse, TargetID: "C1"},
		{ID: "r2", Type: TypeCourse, TargetID: "C2"},
	}

	got := NewEnricher(targets).Enrich(context.Background(), recs)
	if got[0].Target == nil {
		t.Fatalf("expected C1 to resolve")
	}
	if got[1].Target != nil {
		t.Fatalf("expected failing lookup to be absent, got %+v", got[1].Target)
	}
}

func TestEnrichResolvesJobAndMentor(t *testing.T) {
	cat := newScenarioCatalog()
	recs := []Recommendation{
		{ID: "r1", Type: TypeJob, TargetID: "J1"},
		{ID: "r2", Type: TypeMentor, TargetID: "M1"},
	}

	got := NewEnricher(cat).Enrich(context.Background(), recs)
	if job, ok := got[0].Target.(JobTarget); !ok || job.Title != "Engineer" {
		t.Fatalf("expected job target, got %#v", got[0].Target)
	}
	mentor, ok := got[1].Target.(MentorTarget)
	if !ok || mentor.FullName != "Ana" {
		t.Fatalf("expected mentor target, got %#v", got[1].Target)
	}
	if mentor.Kind() != TypeMentor {
		t.Fatalf("expected kind mentor, got %s", mentor.Kind())
	}
}

func TestEnrichUnknownTypeIsAbsent(t *testing.T) {
	got := NewEnricher(newScenarioCatalog()).Enrich(context.Background(), []Recommendation{
		{ID: "r1", Type: Type("webinar"), TargetID: "C1"},
	})
	if len(got) != 1 || got[0].Target != nil {
		t.Fatalf("expected one absent item, got %+v", got)
	}
}

func TestEnrichEmptyInput(t *testing.T) {
	got := NewEnricher(newScenarioCatalog()).Enrich(context.Background(), nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

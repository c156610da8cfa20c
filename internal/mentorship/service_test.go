package mentorship

import (
	"context"
	"errors"
	"testing"

	"skillpath-backend/internal/catalog"
)

func newTestService() (*Service, *MemoryRepo) {
	cat := catalog.NewMemoryRepo()
	catalog.SeedDemo(cat)
	repo := NewMemoryRepo()
	return NewService(repo, cat), repo
}

func TestRequestCreatesPendingMentorship(t *testing.T) {
	svc, _ := newTestService()
	m, err := svc.Request(context.Background(), "user-1", "mentor-ana", "  system design ")
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if m.Status != StatusPending || m.MentorID != "educator-ana" || m.MenteeID != "user-1" {
		t.Fatalf("unexpected mentorship: %+v", m)
	}
	if m.FocusArea != "system design" {
		t.Fatalf("expected trimmed focus area, got %q", m.FocusArea)
	}
}

func TestRequestValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Request(ctx, "user-1", "mentor-ana", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank focus, got %v", err)
	}
	if _, err := svc.Request(ctx, "user-1", "mentor-missing", "go"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Request(ctx, "educator-ana", "mentor-ana", "go"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for self request, got %v", err)
	}
}

func TestActiveListsBothSides(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	m, err := svc.Request(ctx, "user-1", "mentor-li", "ml")
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	active, _ := svc.Active(ctx, "user-1")
	if len(active) != 0 {
		t.Fatalf("pending requests must not be listed as active")
	}

	if err := repo.SetStatus(m.ID, StatusActive); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	for _, user := range []string{"user-1", "educator-li"} {
		active, err := svc.Active(ctx, user)
		if err != nil {
			t.Fatalf("Active(%s): %v", user, err)
		}
		if len(active) != 1 {
			t.Fatalf("expected 1 active mentorship for %s, got %d", user, len(active))
		}
	}
}

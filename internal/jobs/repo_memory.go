package jobs

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	apps map[string]Application
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{apps: make(map[string]Application)}
}

func (r *MemoryRepo) Create(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.apps {
		if existing.JobID == app.JobID && existing.UserID == app.UserID {
			return ErrConflict
		}
	}
	r.apps[app.ID] = app
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Application
	for _, app := range r.apps {
		if app.UserID == userID {
			out = append(out, app)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AppliedAt.Equal(out[j].AppliedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].AppliedAt.After(out[j].AppliedAt)
	})
	return out, nil
}

// ClaimGuest re-owns a guest's applications, skipping jobs the user already applied to.
func (r *MemoryRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	applied := map[string]bool{}
	for _, app := range r.apps {
		if app.UserID == authedUserID {
			applied[app.JobID] = true
		}
	}
	moved := 0
	for id, app := range r.apps {
		if app.UserID == guestUserID && !applied[app.JobID] {
			app.UserID = authedUserID
			r.apps[id] = app
			moved++
		}
	}
	return map[string]int{"job_applications": moved}, nil
}

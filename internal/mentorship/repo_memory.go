package mentorship

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Mentorship
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Mentorship)}
}

func (r *MemoryRepo) Create(ctx context.Context, m Mentorship) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[m.ID] = m
	return nil
}

// SetStatus is used by tests and local tooling to accept a request.
func (r *MemoryRepo) SetStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	m.Status = status
	r.items[id] = m
	return nil
}

func (r *MemoryRepo) ListForUser(ctx context.Context, userID, status string) ([]Mentorship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Mentorship
	for _, m := range r.items {
		if m.MentorID != userID && m.MenteeID != userID {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ClaimGuest re-owns mentorships the guest requested.
func (r *MemoryRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	moved := 0
	for id, m := range r.items {
		if m.MenteeID == guestUserID {
			m.MenteeID = authedUserID
			r.items[id] = m
			moved++
		}
	}
	return map[string]int{"mentorships": moved}, nil
}

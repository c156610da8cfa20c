package recommendations

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	recs map[string]Recommendation
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{recs: make(map[string]Recommendation)}
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Recommendation
	for _, rec := range r.recs {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sortRanked(out)
	return out, nil
}

func (r *MemoryRepo) CreateBatch(ctx context.Context, recs []Recommendation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, rec := range recs {
		if rec.ID == "" || rec.UserID == "" || !rec.Type.Valid() {
			return fmt.Errorf("%w: recommendation %q", ErrInvalidInput, rec.ID)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range recs {
		if _, exists := r.recs[rec.ID]; exists {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidInput, rec.ID)
		}
	}
	for _, rec := range recs {
		r.recs[rec.ID] = rec
	}
	return nil
}

func (r *MemoryRepo) MarkViewed(ctx context.Context, userID, recommendationID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.recs[recommendationID]
	if !ok || rec.UserID != userID {
		return ErrNotFound
	}
	rec.IsViewed = true
	r.recs[recommendationID] = rec
	return nil
}

func sortRanked(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].ConfidenceScore != recs[j].ConfidenceScore {
			return recs[i].ConfidenceScore > recs[j].ConfidenceScore
		}
		if !recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].CreatedAt.After(recs[j].CreatedAt)
		}
		return recs[i].ID < recs[j].ID
	})
}

// ClaimGuest re-owns a guest's recommendations.
func (r *MemoryRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	moved := 0
	for id, rec := range r.recs {
		if rec.UserID == guestUserID {
			rec.UserID = authedUserID
			r.recs[id] = rec
			moved++
		}
	}
	return map[string]int{"recommendations": moved}, nil
}

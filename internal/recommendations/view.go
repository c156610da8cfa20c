package recommendations

import (
	"context"
	"errors"
	"strings"
	"sync"

	"skillpath-backend/internal/shared/metrics"
	"skillpath-backend/internal/shared/telemetry"
)

type generator interface {
	Generate(ctx context.Context, userID string) (int, error)
}

type enricher interface {
	Enrich(ctx context.Context, recs []Recommendation) []Enriched
}

// View owns the in-memory recommendation list for one user.
//
// State moves idle -> loading -> populated|empty on Load. Filter never
// changes the stored list. MarkViewed persists first and patches the stored
// copy only after the write succeeded.
type View struct {
	userID string
	repo   Repo
	gen    generator
	enr    enricher

	loadMu      sync.Mutex
	mu          sync.RWMutex
	state       State
	items       []Enriched
	transitions []State
}

func NewView(userID string, repo Repo, gen generator, enr enricher) *View {
	return &View{
		userID:      userID,
		repo:        repo,
		gen:         gen,
		enr:         enr,
		state:       StateIdle,
		transitions: []State{StateIdle},
	}
}

func (v *View) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Transitions returns every state the view has entered, oldest first.
func (v *View) Transitions() []State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]State(nil), v.transitions...)
}

// TransitionLabel renders Transitions as "idle->loading->populated".
func (v *View) TransitionLabel() string {
	states := v.Transitions()
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = string(s)
	}
	return strings.Join(parts, "->")
}

// Items returns a copy of the stored list.
func (v *View) Items() []Enriched {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]Enriched(nil), v.items...)
}

// Load fetches the user's rows. When there are none, or the fetch failed, it
// runs one generation pass and re-lists once. Failures end in StateEmpty.
func (v *View) Load(ctx context.Context) State {
	v.loadMu.Lock()
	defer v.loadMu.Unlock()

	v.enter(StateLoading, nil)

	recs, err := v.repo.ListByUser(ctx, v.userID)
	if err != nil {
		metrics.LoadFallbacksTotal.Inc()
		telemetry.Warn("recommendations.load.list_failed", map[string]any{
			"user_id": v.userID,
			"error":   err.Error(),
		})
		recs = nil
	}

	if len(recs) == 0 {
		recs = v.generateAndReload(ctx)
		if len(recs) == 0 {
			v.enter(StateEmpty, []Enriched{})
			return StateEmpty
		}
	}

	v.enter(StatePopulated, v.enr.Enrich(ctx, recs))
	return StatePopulated
}

func (v *View) generateAndReload(ctx context.Context) []Recommendation {
	n, err := v.gen.Generate(ctx, v.userID)
	if err != nil {
		telemetry.Error("recommendations.load.generate_failed", map[string]any{
			"user_id": v.userID,
			"error":   err.Error(),
		})
		return nil
	}
	if n == 0 {
		return nil
	}
	recs, err := v.repo.ListByUser(ctx, v.userID)
	if err != nil {
		telemetry.Error("recommendations.load.reload_failed", map[string]any{
			"user_id": v.userID,
			"error":   err.Error(),
		})
		return nil
	}
	return recs
}

// Filter returns the stored items of type t. An empty t or "all" returns every item.
func (v *View) Filter(t Type) []Enriched {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if t == "" || t == "all" {
		return append([]Enriched{}, v.items...)
	}
	out := make([]Enriched, 0, len(v.items))
	for _, item := range v.items {
		if item.Type == t {
			out = append(out, item)
		}
	}
	return out
}

// MarkViewed persists is_viewed for one row, then patches the stored copy.
// A failed write leaves the stored copy untouched; calling again retries.
func (v *View) MarkViewed(ctx context.Context, recommendationID string) error {
	if strings.TrimSpace(recommendationID) == "" {
		return ErrInvalidInput
	}
	if err := v.repo.MarkViewed(ctx, v.userID, recommendationID); err != nil {
		outcome := "failed"
		if errors.Is(err, ErrNotFound) {
			outcome = "not_found"
		}
		metrics.MarkViewedTotal.WithLabelValues(outcome).Inc()
		return err
	}

	v.mu.Lock()
	for i := range v.items {
		if v.items[i].ID == recommendationID {
			v.items[i].IsViewed = true
		}
	}
	v.mu.Unlock()
	metrics.MarkViewedTotal.WithLabelValues("ok").Inc()
	return nil
}

func (v *View) enter(state State, items []Enriched) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = state
	if items != nil {
		v.items = items
	}
	v.transitions = append(v.transitions, state)
}

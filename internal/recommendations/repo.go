package recommendations

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Repo persists recommendation rows.
type Repo interface {
	// ListByUser returns the user's rows ordered by confidence_score desc, then created_at desc.
	ListByUser(ctx context.Context, userID string) ([]Recommendation, error)
	// CreateBatch inserts every row or none.
	CreateBatch(ctx context.Context, recs []Recommendation) error
	// MarkViewed sets is_viewed for a row owned by userID. Repeating it is a no-op.
	MarkViewed(ctx context.Context, userID, recommendationID string) error
}

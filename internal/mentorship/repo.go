package mentorship

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Repo interface {
	Create(ctx context.Context, m Mentorship) error
	// ListForUser returns mentorships where userID is the mentor or the mentee.
	ListForUser(ctx context.Context, userID, status string) ([]Mentorship, error)
}

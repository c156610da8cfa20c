package jobs

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("already applied")
)

type Repo interface {
	Create(ctx context.Context, app Application) error
	ListByUser(ctx context.Context, userID string) ([]Application, error)
}

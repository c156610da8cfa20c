package health

import (
	"context"
	"time"
)

// Pinger is any dependency that can report liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

// Service encapsulates health-related checks.
type Service struct {
	checks  map[string]Pinger
	timeout time.Duration
}

// NewService constructs a health service over named dependency checks.
// A nil Pinger reports the dependency as not configured.
func NewService(checks map[string]Pinger) *Service {
	return &Service{checks: checks, timeout: 2 * time.Second}
}

// Status pings every dependency. ok is false when any configured check fails.
func (s *Service) Status(ctx context.Context) (bool, map[string]string) {
	ok := true
	out := make(map[string]string, len(s.checks))
	for name, p := range s.checks {
		if p == nil {
			out[name] = "disabled"
			continue
		}
		pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err := p.PingContext(pingCtx)
		cancel()
		if err != nil {
			ok = false
			out[name] = "down"
			continue
		}
		out[name] = "up"
	}
	return ok, out
}

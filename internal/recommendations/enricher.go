package recommendations

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"skillpath-backend/internal/catalog"
	"skillpath-backend/internal/shared/metrics"
	"skillpath-backend/internal/shared/telemetry"
)

const defaultEnrichParallelism = 8

// TargetReader fetches single catalog entities by id.
type TargetReader interface {
	GetCourse(ctx context.Context, courseID string) (catalog.Course, error)
	GetCareerPath(ctx context.Context, careerPathID string) (catalog.CareerPath, error)
	GetJobPosting(ctx context.Context, jobID string) (catalog.JobPosting, error)
	GetMentor(ctx context.Context, mentorID string) (catalog.Mentor, error)
}

type resolver func(ctx context.Context, targetID string) (Target, error)

// Enricher attaches the current target entity to each recommendation.
type Enricher struct {
	Parallelism int
	resolvers   map[Type]resolver
}

func NewEnricher(targets TargetReader) *Enricher {
	return &Enricher{
		Parallelism: defaultEnrichParallelism,
		resolvers: map[Type]resolver{
			TypeCourse: func(ctx context.Context, id string) (Target, error) {
				c, err := targets.GetCourse(ctx, id)
				if err != nil {
					return nil, err
				}
				return CourseTarget{c}, nil
			},
			TypeCareerPath: func(ctx context.Context, id string) (Target, error) {
				p, err := targets.GetCareerPath(ctx, id)
				if err != nil {
					return nil, err
				}
				return CareerPathTarget{p}, nil
			},
			TypeJob: func(ctx context.Context, id string) (Target, error) {
				j, err := targets.GetJobPosting(ctx, id)
				if err != nil {
					return nil, err
				}
				return JobTarget{j}, nil
			},
			TypeMentor: func(ctx context.Context, id string) (Target, error) {
				m, err := targets.GetMentor(ctx, id)
				if err != nil {
					return nil, err
				}
				return MentorTarget{m}, nil
			},
		},
	}
}

// Enrich resolves every target concurrently. The result has the same length
// and order as recs. Lookups that fail for any reason leave Target nil.
func (e *Enricher) Enrich(ctx context.Context, recs []Recommendation) []Enriched {
	out := make([]Enriched, len(recs))
	if len(recs) == 0 {
		return out
	}

	limit := e.Parallelism
	if limit <= 0 {
		limit = defaultEnrichParallelism
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, rec := range recs {
		g.Go(func() error {
			out[i] = Enriched{Recommendation: rec, Target: e.resolve(gctx, rec)}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (e *Enricher) resolve(ctx context.Context, rec Recommendation) Target {
	fn, ok := e.resolvers[rec.Type]
	if !ok {
		metrics.EnrichmentLookupsTotal.WithLabelValues(string(rec.Type), "unknown_type").Inc()
		telemetry.Warn("recommendations.enrich.unknown_type", map[string]any{
			"recommendation_id": rec.ID,
			"type":              string(rec.Type),
		})
		return nil
	}

	target, err := fn(ctx, rec.TargetID)
	switch {
	case err == nil:
		metrics.EnrichmentLookupsTotal.WithLabelValues(string(rec.Type), "found").Inc()
		return target
	case errors.Is(err, catalog.ErrNotFound):
		metrics.EnrichmentLookupsTotal.WithLabelValues(string(rec.Type), "absent").Inc()
		telemetry.Info("recommendations.enrich.target_absent", map[string]any{
			"recommendation_id": rec.ID,
			"type":              string(rec.Type),
			"target_id":         rec.TargetID,
		})
	default:
		metrics.EnrichmentLookupsTotal.WithLabelValues(string(rec.Type), "error").Inc()
		telemetry.Error("recommendations.enrich.lookup_failed", map[string]any{
			"recommendation_id": rec.ID,
			"type":              string(rec.Type),
			"target_id":         rec.TargetID,
			"error":             err.Error(),
		})
	}
	return nil
}

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"skillpath-backend/internal/shared/metrics"
	"skillpath-backend/internal/shared/telemetry"
)

const cacheKeyPrefix = "catalog:"

// CachedRepo serves single-item catalog lookups through Redis and delegates
// everything else to Repo. Misses and not-found results are never cached.
type CachedRepo struct {
	Repo
	Client *redis.Client
	TTL    time.Duration
}

func NewCachedRepo(repo Repo, client *redis.Client, ttl time.Duration) *CachedRepo {
	return &CachedRepo{Repo: repo, Client: client, TTL: ttl}
}

func (r *CachedRepo) GetCourse(ctx context.Context, courseID string) (Course, error) {
	return cachedGet(ctx, r, "course", courseID, r.Repo.GetCourse)
}

func (r *CachedRepo) GetCareerPath(ctx context.Context, careerPathID string) (CareerPath, error) {
	return cachedGet(ctx, r, "career_path", careerPathID, r.Repo.GetCareerPath)
}

func (r *CachedRepo) GetSkill(ctx context.Context, skillID string) (Skill, error) {
	return cachedGet(ctx, r, "skill", skillID, r.Repo.GetSkill)
}

func (r *CachedRepo) GetJobPosting(ctx context.Context, jobID string) (JobPosting, error) {
	return cachedGet(ctx, r, "job", jobID, r.Repo.GetJobPosting)
}

func (r *CachedRepo) GetMentor(ctx context.Context, mentorID string) (Mentor, error) {
	return cachedGet(ctx, r, "mentor", mentorID, r.Repo.GetMentor)
}

// IncrementApplicationsCount bumps the counter and drops the cached posting.
func (r *CachedRepo) IncrementApplicationsCount(ctx context.Context, jobID string) error {
	if err := r.Repo.IncrementApplicationsCount(ctx, jobID); err != nil {
		return err
	}
	if err := r.Client.Del(ctx, cacheKey("job", jobID)).Err(); err != nil {
		telemetry.Warn("catalog.cache.invalidate_failed", map[string]any{
			"job_id": jobID,
			"error":  err.Error(),
		})
	}
	return nil
}

func cacheKey(kind, id string) string {
	return cacheKeyPrefix + kind + ":" + id
}

func cachedGet[T any](ctx context.Context, r *CachedRepo, kind, id string, load func(context.Context, string) (T, error)) (T, error) {
	key := cacheKey(kind, id)
	raw, err := r.Client.Get(ctx, key).Result()
	switch {
	case err == nil:
		var cached T
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.CatalogCacheTotal.WithLabelValues("error").Inc()
	case errors.Is(err, redis.Nil):
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	default:
		metrics.CatalogCacheTotal.WithLabelValues("error").Inc()
		telemetry.Warn("catalog.cache.get_failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
	}

	value, err := load(ctx, id)
	if err != nil {
		return value, err
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return value, nil
	}
	if err := r.Client.Set(ctx, key, string(payload), r.TTL).Err(); err != nil {
		telemetry.Warn("catalog.cache.set_failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
	}
	return value, nil
}

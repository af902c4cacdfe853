package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/post-service/internal/domain"
	"github.com/spec-kit/post-service/internal/events"
	"github.com/spec-kit/post-service/internal/persistence"
)

const postListCacheKey = "posts:all"

// PostCache is a read-through Redis cache for the full post listing.
// A nil cache or unreachable Redis degrades to direct repository reads.
type PostCache struct {
	redis  *persistence.Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewPostCache creates the cache wrapper.
func NewPostCache(redis *persistence.Redis, ttl time.Duration, logger *zap.Logger) *PostCache {
	return &PostCache{redis: redis, ttl: ttl, logger: logger}
}

// RegisterHandlers subscribes cache invalidation to post mutations.
func (pc *PostCache) RegisterHandlers(dispatcher events.Dispatcher) {
	if pc == nil || dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventPostCreated, pc.handleMutation)
	dispatcher.Subscribe(events.EventPostUpdated, pc.handleMutation)
	dispatcher.Subscribe(events.EventPostDeleted, pc.handleMutation)
}

func (pc *PostCache) handleMutation(ctx context.Context, event events.Event) error {
	pc.Invalidate(ctx)
	return nil
}

// GetList returns the cached post listing, or ok=false on miss.
func (pc *PostCache) GetList(ctx context.Context) ([]domain.Post, bool) {
	if pc == nil || pc.redis == nil || pc.redis.Client == nil {
		return nil, false
	}
	raw, err := pc.redis.Client.Get(ctx, postListCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var posts []domain.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		pc.logger.Warn("discarding unreadable post cache entry", zap.Error(err))
		pc.Invalidate(ctx)
		return nil, false
	}
	return posts, true
}

// SetList stores the post listing.
func (pc *PostCache) SetList(ctx context.Context, posts []domain.Post) {
	if pc == nil || pc.redis == nil || pc.redis.Client == nil {
		return
	}
	raw, err := json.Marshal(posts)
	if err != nil {
		return
	}
	if err := pc.redis.Client.Set(ctx, postListCacheKey, raw, pc.ttl).Err(); err != nil {
		pc.logger.Warn("unable to populate post cache", zap.Error(err))
	}
}

// Invalidate drops the cached listing.
func (pc *PostCache) Invalidate(ctx context.Context) {
	if pc == nil || pc.redis == nil || pc.redis.Client == nil {
		return
	}
	if err := pc.redis.Client.Del(ctx, postListCacheKey).Err(); err != nil {
		pc.logger.Warn("unable to invalidate post cache", zap.Error(err))
	}
}

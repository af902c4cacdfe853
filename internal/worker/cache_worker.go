package worker

import (
	"github.com/spec-kit/post-service/internal/events"
	"github.com/spec-kit/post-service/internal/service"
)

// StartCacheInvalidator subscribes the post cache to mutation events.
func StartCacheInvalidator(cache *service.PostCache, dispatcher events.Dispatcher) {
	if cache == nil {
		return
	}
	cache.RegisterHandlers(dispatcher)
}

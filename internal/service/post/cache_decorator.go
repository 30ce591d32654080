package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lensfeed-post-service/internal/cache"
	"lensfeed-post-service/internal/custom_errors"
	"lensfeed-post-service/internal/logger"
	"lensfeed-post-service/internal/metrics"
	"lensfeed-post-service/internal/model"
)

// PostServiceCacheDecorator caches single-post reads. List results are
// not cached: offset pages over a mutating feed go stale too fast to be
// worth invalidating.
type PostServiceCacheDecorator struct {
	service   Service
	postCache cache.PostCache
	log       *logger.Logger
	metrics   metrics.Provider
}

func NewPostServiceCacheDecorator(
	service Service,
	postCache cache.PostCache,
	log *logger.Logger,
	metricsProvider metrics.Provider,
) Service {
	return &PostServiceCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
		metrics:   metricsProvider,
	}
}

func (d *PostServiceCacheDecorator) ListPosts(ctx context.Context, offset int) ([]*model.Post, error) {
	return d.service.ListPosts(ctx, offset)
}

func (d *PostServiceCacheDecorator) ListPostsByUser(ctx context.Context, userID int64, offset int) ([]*model.Post, error) {
	return d.service.ListPostsByUser(ctx, userID, offset)
}

func (d *PostServiceCacheDecorator) ListPostsByHashtags(ctx context.Context, tags []string, offset int) ([]*model.Post, error) {
	return d.service.ListPostsByHashtags(ctx, tags, offset)
}

func (d *PostServiceCacheDecorator) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	cacheStart := time.Now()
	cachedPost, err := d.postCache.GetPost(ctx, id)
	d.metrics.RecordCacheOperationDuration("post_get", time.Since(cacheStart))
	if err == nil {
		d.log.Debug("Post found in cache", slog.Int64("post_id", id))
		d.metrics.IncrementCacheHits()
		return cachedPost, nil
	}

	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		d.log.Warn("Failed to get post from cache",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}

	post, err := d.service.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.postCache.SetPost(ctx, post); err != nil {
		d.log.Warn("Failed to cache post",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(setStart))

	return post, nil
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	created, err := d.service.CreatePost(ctx, post)
	if err != nil {
		d.metrics.IncrementPostOperations("create", false)
		return nil, err
	}
	d.metrics.IncrementPostOperations("create", true)

	setStart := time.Now()
	if err := d.postCache.SetPost(ctx, created); err != nil {
		d.log.Warn("Failed to cache created post",
			slog.Int64("post_id", created.ID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(setStart))

	return created, nil
}

func (d *PostServiceCacheDecorator) DeletePost(ctx context.Context, id int64) (*model.Post, error) {
	deleted, err := d.service.DeletePost(ctx, id)
	if err != nil {
		d.metrics.IncrementPostOperations("delete", false)
		return nil, err
	}
	d.metrics.IncrementPostOperations("delete", true)

	deleteStart := time.Now()
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate post cache after deletion",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(deleteStart))

	return deleted, nil
}

package memory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"lensfeed-post-service/internal/custom_errors"
	"lensfeed-post-service/internal/logger"
	"lensfeed-post-service/internal/model"
)

type PostRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	newPost := &model.Post{
		ID:             p.nextID,
		OwnerID:        post.OwnerID,
		Caption:        post.Caption,
		Hashtags:       post.Hashtags,
		ImageURL:       post.ImageURL,
		CreatedAt:      pgtype.Timestamptz{Time: time.Now(), Valid: true},
		OwnerUsername:  post.OwnerUsername,
		OwnerAvatarURL: post.OwnerAvatarURL,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists || post.DeletedAt.Valid {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var filtered []*model.Post
	for _, post := range p.posts {
		if post.DeletedAt.Valid {
			continue
		}
		if filters.OwnerID != nil && post.OwnerID != *filters.OwnerID {
			continue
		}
		if len(filters.HashtagTerms) > 0 && !matchesAnyTerm(post.Hashtags, filters.HashtagTerms) {
			continue
		}

		postCopy := *post
		filtered = append(filtered, &postCopy)
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].CreatedAt.Time.Equal(filtered[j].CreatedAt.Time) {
			return filtered[i].ID < filtered[j].ID
		}
		return filtered[i].CreatedAt.Time.After(filtered[j].CreatedAt.Time)
	})

	if filters.Offset != nil {
		offset := *filters.Offset
		if offset >= len(filtered) {
			return []*model.Post{}, nil
		}
		filtered = filtered[offset:]
	}

	if filters.Limit != nil {
		limit := *filters.Limit
		if limit < len(filtered) {
			filtered = filtered[:limit]
		}
	}

	return filtered, nil
}

func (p *PostRepository) SoftDelete(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	if !post.DeletedAt.Valid {
		post.DeletedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	}

	result := *post
	return &result, nil
}

func matchesAnyTerm(hashtags string, terms []string) bool {
	haystack := strings.ToLower(hashtags)
	for _, term := range terms {
		if strings.Contains(haystack, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

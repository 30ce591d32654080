package post_service

import (
	"context"

	"lensfeed-post-service/internal/model"
)

// PageSize is the fixed page length for every list operation. Callers
// page by resupplying a zero-based offset; no cursor survives a request.
const PageSize = 10

type Service interface {
	ListPosts(ctx context.Context, offset int) ([]*model.Post, error)
	ListPostsByUser(ctx context.Context, userID int64, offset int) ([]*model.Post, error)
	ListPostsByHashtags(ctx context.Context, tags []string, offset int) ([]*model.Post, error)
	GetPost(ctx context.Context, id int64) (*model.Post, error)
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, id int64) (*model.Post, error)
}

package post_repository

import (
	"context"

	"lensfeed-post-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error)
	SoftDelete(ctx context.Context, id int64) (*model.Post, error)
}

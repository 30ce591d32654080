package cache

import (
	"context"

	"lensfeed-post-service/internal/model"
)

type PostCache interface {
	GetPost(ctx context.Context, id int64) (*model.Post, error)
	SetPost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id int64) error
}

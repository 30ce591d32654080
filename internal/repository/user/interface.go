package user_repository

import (
	"context"

	"lensfeed-post-service/internal/model"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetCredentials(ctx context.Context, id int64) (string, error)
}

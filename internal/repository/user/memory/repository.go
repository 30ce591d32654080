package memory

import (
	"context"
	"log/slog"
	"sync"

	"lensfeed-post-service/internal/custom_errors"
	"lensfeed-post-service/internal/logger"
	"lensfeed-post-service/internal/model"
)

type UserRepository struct {
	log   *logger.Logger
	mu    sync.RWMutex
	users map[int64]*model.User
}

func NewUserRepository(log *logger.Logger) *UserRepository {
	return &UserRepository{
		log:   log,
		users: make(map[int64]*model.User),
	}
}

// Add seeds a user. Test helper: the HTTP API never creates users.
func (u *UserRepository) Add(user *model.User) {
	u.mu.Lock()
	defer u.mu.Unlock()
	userCopy := *user
	u.users[user.ID] = &userCopy
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.users[id]
	if !exists {
		u.log.Debug("User not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

func (u *UserRepository) GetCredentials(ctx context.Context, id int64) (string, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.users[id]
	if !exists {
		return "", custom_errors.ErrUserNotFound
	}
	return user.PasswordHash, nil
}

package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lensfeed-post-service/internal/custom_errors"
	"lensfeed-post-service/internal/logger"
	"lensfeed-post-service/internal/model"
)

type UserRepository struct {
	log *logger.Logger
	db  *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool, log *logger.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, username, avatar_url FROM users WHERE id = @id`

	user := &model.User{}
	err := u.db.QueryRow(ctx, query, args).Scan(&user.ID, &user.Username, &user.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (u *UserRepository) GetCredentials(ctx context.Context, id int64) (string, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT password_hash FROM users WHERE id = @id`

	var hash string
	err := u.db.QueryRow(ctx, query, args).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("Credentials not found for user", slog.Int64("id", id))
			return "", custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting credentials", slog.Int64("id", id), slog.String("error", err.Error()))
		return "", custom_errors.ErrDatabaseQuery
	}
	return hash, nil
}

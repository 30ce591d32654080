package auth_service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"lensfeed-post-service/internal/custom_errors"
	"lensfeed-post-service/internal/logger"
	user_repository "lensfeed-post-service/internal/repository/user"
)

type Authorizer interface {
	Authorize(ctx context.Context, userID int64, password string) (bool, error)
}

type AuthService struct {
	userRepo user_repository.Repository
	log      *logger.Logger
}

func NewAuthService(userRepo user_repository.Repository, log *logger.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, log: log}
}

// Authorize checks the supplied password against the stored bcrypt hash
// for userID. An unknown user and a wrong password both yield (false,
// nil) so callers cannot tell the cases apart; only store failures
// surface as errors.
func (s *AuthService) Authorize(ctx context.Context, userID int64, password string) (bool, error) {
	hash, err := s.userRepo.GetCredentials(ctx, userID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Authorization attempt for unknown user", slog.Int64("user_id", userID))
			return false, nil
		}
		s.log.Error("Failed to load credentials", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		s.log.Debug("Password mismatch", slog.Int64("user_id", userID))
		return false, nil
	}

	return true, nil
}

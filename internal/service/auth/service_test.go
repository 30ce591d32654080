package auth_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"lensfeed-post-service/internal/logger"
	"lensfeed-post-service/internal/model"
	"lensfeed-post-service/internal/repository/user/memory"
	auth_service "lensfeed-post-service/internal/service/auth"
)

func TestAuthService_Authorize(t *testing.T) {
	log := logger.New("test")
	userRepo := memory.NewUserRepository(log)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.Add(&model.User{ID: 1, Username: "amine", PasswordHash: string(hash)})

	service := auth_service.NewAuthService(userRepo, log)

	tests := []struct {
		name     string
		userID   int64
		password string
		want     bool
	}{
		{
			name:     "correct password",
			userID:   1,
			password: "correct-horse",
			want:     true,
		},
		{
			name:     "wrong password",
			userID:   1,
			password: "battery-staple",
			want:     false,
		},
		{
			name:     "unknown user",
			userID:   999,
			password: "correct-horse",
			want:     false,
		},
		{
			name:     "empty password",
			userID:   1,
			password: "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Authorize(context.Background(), tt.userID, tt.password)

			// A merely-wrong password must never surface as an error.
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

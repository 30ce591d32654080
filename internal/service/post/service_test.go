package post_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lensfeed-post-service/internal/custom_errors"
	"lensfeed-post-service/internal/hashtag"
	"lensfeed-post-service/internal/logger"
	"lensfeed-post-service/internal/model"
	post_memory "lensfeed-post-service/internal/repository/post/memory"
	user_memory "lensfeed-post-service/internal/repository/user/memory"
	post_service "lensfeed-post-service/internal/service/post"
)

func setupService(t *testing.T) (*post_service.PostService, *post_memory.PostRepository, *user_memory.UserRepository) {
	t.Helper()
	log := logger.New("test")
	postRepo := post_memory.NewPostRepository(log)
	userRepo := user_memory.NewUserRepository(log)
	userRepo.Add(&model.User{ID: 1, Username: "douglas"})
	userRepo.Add(&model.User{ID: 2, Username: "savita"})
	return post_service.NewPostService(postRepo, userRepo, log), postRepo, userRepo
}

func createPost(t *testing.T, service *post_service.PostService, ownerID int64, caption string) *model.Post {
	t.Helper()
	tags := hashtag.FromCaption(caption)
	created, err := service.CreatePost(context.Background(), &model.CreatePostDTO{
		OwnerID:  ownerID,
		Caption:  caption,
		Hashtags: tags.StorageForm,
		ImageURL: "/images/posts/test.jpg",
	})
	require.NoError(t, err)
	return created
}

func TestPostService_ListPosts(t *testing.T) {
	service, _, _ := setupService(t)

	for i := 0; i < 12; i++ {
		createPost(t, service, 1, "a post")
	}

	t.Run("first page is capped at page size", func(t *testing.T) {
		posts, err := service.ListPosts(context.Background(), 0)
		require.NoError(t, err)
		assert.Len(t, posts, post_service.PageSize)
	})

	t.Run("offset reaches the tail", func(t *testing.T) {
		posts, err := service.ListPosts(context.Background(), 10)
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})

	t.Run("negative offset is rejected", func(t *testing.T) {
		_, err := service.ListPosts(context.Background(), -1)
		assert.ErrorIs(t, err, custom_errors.ErrInvalidInput)
	})
}

func TestPostService_ListPostsByUser(t *testing.T) {
	service, _, _ := setupService(t)

	createPost(t, service, 1, "mine")
	createPost(t, service, 2, "theirs")

	t.Run("filters to the given owner", func(t *testing.T) {
		posts, err := service.ListPostsByUser(context.Background(), 1, 0)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, int64(1), posts[0].OwnerID)
	})

	t.Run("existing user with zero posts is an empty list", func(t *testing.T) {
		deleted, err := service.DeletePost(context.Background(), mustFirstPostID(t, service, 2))
		require.NoError(t, err)
		require.True(t, deleted.DeletedAt.Valid)

		posts, err := service.ListPostsByUser(context.Background(), 2, 0)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("unknown user fails with UserNotFound", func(t *testing.T) {
		_, err := service.ListPostsByUser(context.Background(), 999, 0)
		assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
		assert.Contains(t, err.Error(), "no user")
	})
}

func mustFirstPostID(t *testing.T, service *post_service.PostService, ownerID int64) int64 {
	t.Helper()
	posts, err := service.ListPostsByUser(context.Background(), ownerID, 0)
	require.NoError(t, err)
	require.NotEmpty(t, posts)
	return posts[0].ID
}

func TestPostService_ListPostsByHashtags(t *testing.T) {
	service, _, _ := setupService(t)

	beachPost := createPost(t, service, 1, "sunset at the #beach #bonfire tonight")
	createPost(t, service, 2, "downtown #city lights")

	t.Run("matches any tag", func(t *testing.T) {
		posts, err := service.ListPostsByHashtags(context.Background(), []string{"beach"}, 0)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, beachPost.ID, posts[0].ID)
	})

	t.Run("no matches is an empty list, not an error", func(t *testing.T) {
		posts, err := service.ListPostsByHashtags(context.Background(), []string{"mountain"}, 0)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("empty tag list is an empty list", func(t *testing.T) {
		posts, err := service.ListPostsByHashtags(context.Background(), nil, 0)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestPostService_GetPost(t *testing.T) {
	service, _, _ := setupService(t)

	created := createPost(t, service, 1, "hello #world")

	t.Run("returns the post", func(t *testing.T) {
		got, err := service.GetPost(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "world", got.Hashtags)
	})

	t.Run("missing post fails with NotFound", func(t *testing.T) {
		_, err := service.GetPost(context.Background(), 999)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

func TestPostService_CreatePost(t *testing.T) {
	service, _, _ := setupService(t)

	created := createPost(t, service, 1, "sunset at the #beach #bonfire tonight")

	assert.NotZero(t, created.ID)
	assert.True(t, created.CreatedAt.Valid)
	assert.Equal(t, "beach bonfire", created.Hashtags)

	// The created post is discoverable through a hashtag search.
	posts, err := service.ListPostsByHashtags(context.Background(), []string{"beach"}, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, created.ID, posts[0].ID)
}

func TestPostService_DeletePost(t *testing.T) {
	service, _, _ := setupService(t)

	created := createPost(t, service, 1, "short lived")

	first, err := service.DeletePost(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, first.DeletedAt.Valid)

	// Reads exclude the deleted post.
	_, err = service.GetPost(context.Background(), created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)

	// A second delete is a no-op success.
	second, err := service.DeletePost(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, first.DeletedAt.Time, second.DeletedAt.Time)

	t.Run("unknown id fails with NotFound", func(t *testing.T) {
		_, err := service.DeletePost(context.Background(), 999)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

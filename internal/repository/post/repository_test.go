package post_repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lensfeed-post-service/internal/custom_errors"
	"lensfeed-post-service/internal/logger"
	"lensfeed-post-service/internal/model"
	post_repository "lensfeed-post-service/internal/repository/post"
	"lensfeed-post-service/internal/repository/post/memory"
)

func setupPostTest(t *testing.T) post_repository.Repository {
	t.Helper()
	log := logger.New("test")
	return memory.NewPostRepository(log)
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestPostRepository_Create(t *testing.T) {
	repo := setupPostTest(t)

	post := &model.Post{
		OwnerID:  1,
		Caption:  "sunset at the #beach",
		Hashtags: "beach",
		ImageURL: "/images/posts/1-sunset.jpg",
	}

	got, err := repo.Create(context.Background(), post)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotZero(t, got.ID)
	assert.Equal(t, post.OwnerID, got.OwnerID)
	assert.Equal(t, post.Caption, got.Caption)
	assert.Equal(t, post.Hashtags, got.Hashtags)
	assert.True(t, got.CreatedAt.Valid)
	assert.False(t, got.DeletedAt.Valid)
}

func TestPostRepository_GetByID(t *testing.T) {
	repo := setupPostTest(t)

	created, err := repo.Create(context.Background(), &model.Post{OwnerID: 1, Caption: "hello"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      int64
		wantErr error
	}{
		{
			name:    "successful get",
			id:      created.ID,
			wantErr: nil,
		},
		{
			name:    "post not found",
			id:      999,
			wantErr: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByID(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, created.ID, got.ID)
				assert.Equal(t, created.Caption, got.Caption)
			}
		})
	}
}

func TestPostRepository_List_OrderingAndPaging(t *testing.T) {
	repo := setupPostTest(t)

	var ids []int64
	for i := 0; i < 25; i++ {
		created, err := repo.Create(context.Background(), &model.Post{OwnerID: 1, Caption: "post"})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	pageSize := 10
	seen := make(map[int64]bool)
	var pages [][]*model.Post
	for offset := 0; offset < 25; offset += pageSize {
		page, err := repo.List(context.Background(), model.PostFilters{
			Limit:  intPtr(pageSize),
			Offset: intPtr(offset),
		})
		require.NoError(t, err)
		pages = append(pages, page)
		for _, post := range page {
			assert.False(t, seen[post.ID], "post %d appeared on two pages", post.ID)
			seen[post.ID] = true
		}
	}

	assert.Len(t, seen, 25)
	assert.Len(t, pages[0], 10)
	assert.Len(t, pages[2], 5)

	// Pages are ordered newest-first; equal timestamps fall back to
	// ascending identifier, so the full sequence never reorders between
	// requests.
	var flat []*model.Post
	for _, page := range pages {
		flat = append(flat, page...)
	}
	for i := 1; i < len(flat); i++ {
		prev, cur := flat[i-1], flat[i]
		if prev.CreatedAt.Time.Equal(cur.CreatedAt.Time) {
			assert.Less(t, prev.ID, cur.ID)
		} else {
			assert.True(t, prev.CreatedAt.Time.After(cur.CreatedAt.Time))
		}
	}
}

func TestPostRepository_List_OffsetBeyondEnd(t *testing.T) {
	repo := setupPostTest(t)

	_, err := repo.Create(context.Background(), &model.Post{OwnerID: 1})
	require.NoError(t, err)

	posts, err := repo.List(context.Background(), model.PostFilters{
		Limit:  intPtr(10),
		Offset: intPtr(50),
	})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepository_List_Filters(t *testing.T) {
	repo := setupPostTest(t)

	_, err := repo.Create(context.Background(), &model.Post{OwnerID: 1, Hashtags: "beach bonfire"})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), &model.Post{OwnerID: 2, Hashtags: "city"})
	require.NoError(t, err)

	t.Run("by owner", func(t *testing.T) {
		posts, err := repo.List(context.Background(), model.PostFilters{OwnerID: int64Ptr(2)})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, int64(2), posts[0].OwnerID)
	})

	t.Run("by hashtag term", func(t *testing.T) {
		posts, err := repo.List(context.Background(), model.PostFilters{HashtagTerms: []string{"beach"}})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "beach bonfire", posts[0].Hashtags)
	})

	t.Run("no matching hashtag", func(t *testing.T) {
		posts, err := repo.List(context.Background(), model.PostFilters{HashtagTerms: []string{"mountain"}})
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestPostRepository_SoftDelete(t *testing.T) {
	repo := setupPostTest(t)

	created, err := repo.Create(context.Background(), &model.Post{OwnerID: 1, Caption: "to delete"})
	require.NoError(t, err)

	deleted, err := repo.SoftDelete(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.True(t, deleted.DeletedAt.Valid)

	// Deleted posts disappear from reads but the id stays valid for a
	// repeated delete.
	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)

	again, err := repo.SoftDelete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, deleted.DeletedAt.Time, again.DeletedAt.Time)

	posts, err := repo.List(context.Background(), model.PostFilters{})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepository_SoftDelete_NotFound(t *testing.T) {
	repo := setupPostTest(t)

	_, err := repo.SoftDelete(context.Background(), 12345)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

package post_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lensfeed-post-service/internal/custom_errors"
	"lensfeed-post-service/internal/logger"
	"lensfeed-post-service/internal/model"
	post_repository "lensfeed-post-service/internal/repository/post"
	user_repository "lensfeed-post-service/internal/repository/user"
)

type PostService struct {
	postRepo post_repository.Repository
	userRepo user_repository.Repository
	log      *logger.Logger
}

func NewPostService(
	postRepo post_repository.Repository,
	userRepo user_repository.Repository,
	log *logger.Logger,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		log:      log,
	}
}

func (s *PostService) ListPosts(ctx context.Context, offset int) ([]*model.Post, error) {
	filters, err := pageFilters(offset)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.List(ctx, filters)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, err
	}
	return posts, nil
}

// ListPostsByUser fails with ErrUserNotFound when the user id resolves
// to no account, even if an existing user simply has zero posts.
func (s *PostService) ListPostsByUser(ctx context.Context, userID int64, offset int) ([]*model.Post, error) {
	filters, err := pageFilters(offset)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("User not found when listing posts", slog.Int64("user_id", userID))
			return nil, fmt.Errorf("no user with id %d found: %w", userID, custom_errors.ErrUserNotFound)
		}
		s.log.Error("Failed to check user existence", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}

	filters.OwnerID = &userID
	posts, err := s.postRepo.List(ctx, filters)
	if err != nil {
		s.log.Error("Failed to list posts by user", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}
	return posts, nil
}

// ListPostsByHashtags matches posts whose hashtag set intersects any of
// the given tags. An empty tag list or an empty match is a valid empty
// result, not an error.
func (s *PostService) ListPostsByHashtags(ctx context.Context, tags []string, offset int) ([]*model.Post, error) {
	filters, err := pageFilters(offset)
	if err != nil {
		return nil, err
	}

	if len(tags) == 0 {
		return []*model.Post{}, nil
	}

	filters.HashtagTerms = tags
	posts, err := s.postRepo.List(ctx, filters)
	if err != nil {
		s.log.Error("Failed to list posts by hashtags", slog.String("error", err.Error()))
		return nil, err
	}
	return posts, nil
}

func (s *PostService) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found", slog.Int64("id", id))
			return nil, fmt.Errorf("no post with id %d found: %w", id, custom_errors.ErrPostNotFound)
		}
		s.log.Error("Failed to get post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, err
	}
	return post, nil
}

// CreatePost inserts a post together with its derived hashtag set in a
// single atomic write. Authorization happens at the route layer before
// this is ever called.
func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	owner, err := s.userRepo.GetByID(ctx, post.OwnerID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Owner not found for create", slog.Int64("owner_id", post.OwnerID))
			return nil, fmt.Errorf("no user with id %d found: %w", post.OwnerID, custom_errors.ErrUserNotFound)
		}
		s.log.Error("Failed to look up owner", slog.Int64("owner_id", post.OwnerID), slog.String("error", err.Error()))
		return nil, err
	}

	newPost := &model.Post{
		OwnerID:        post.OwnerID,
		Caption:        post.Caption,
		Hashtags:       post.Hashtags,
		ImageURL:       post.ImageURL,
		OwnerUsername:  owner.Username,
		OwnerAvatarURL: owner.AvatarURL,
	}

	created, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.log.Error("Failed to create post", slog.Int64("owner_id", post.OwnerID), slog.String("error", err.Error()))
		return nil, err
	}

	s.log.Info("Post created", slog.Int64("id", created.ID), slog.Int64("owner_id", created.OwnerID))
	return created, nil
}

// DeletePost marks the post logically deleted. Repeating the call on an
// already-deleted post succeeds and returns the unchanged record.
func (s *PostService) DeletePost(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.Int64("id", id))
			return nil, fmt.Errorf("no post with id %d found: %w", id, custom_errors.ErrPostNotFound)
		}
		s.log.Error("Failed to delete post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, err
	}

	s.log.Info("Post deleted", slog.Int64("id", id))
	return post, nil
}

func pageFilters(offset int) (model.PostFilters, error) {
	if offset < 0 {
		return model.PostFilters{}, fmt.Errorf("offset must be a non-negative integer: %w", custom_errors.ErrInvalidInput)
	}
	limit := PageSize
	return model.PostFilters{Limit: &limit, Offset: &offset}, nil
}

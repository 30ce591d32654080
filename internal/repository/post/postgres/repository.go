package post_repository_postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"lensfeed-post-service/internal/custom_errors"
	"lensfeed-post-service/internal/logger"
	"lensfeed-post-service/internal/model"
)

const postColumns = `p.id, p.owner_id, p.caption, p.hashtags, p.image_url, p.created_at, p.deleted_at, u.username, u.avatar_url`

type PostRepository struct {
	log *logger.Logger
	db  *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool, log *logger.Logger) *PostRepository {
	return &PostRepository{db: db, log: log}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"owner_id":   post.OwnerID,
		"caption":    post.Caption,
		"hashtags":   post.Hashtags,
		"image_url":  post.ImageURL,
		"created_at": now,
	}

	query := `
		INSERT INTO posts (owner_id, caption, hashtags, image_url, created_at)
		VALUES (@owner_id, @caption, @hashtags, @image_url, @created_at)
		RETURNING id`

	var id int64
	if err := p.db.QueryRow(ctx, query, args).Scan(&id); err != nil {
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return p.GetByID(ctx, id)
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + `
				FROM posts p JOIN users u ON u.id = p.owner_id
				WHERE p.id = @id AND p.deleted_at IS NULL`

	post := &model.Post{}
	err := p.db.QueryRow(ctx, query, args).Scan(
		&post.ID,
		&post.OwnerID,
		&post.Caption,
		&post.Hashtags,
		&post.ImageURL,
		&post.CreatedAt,
		&post.DeletedAt,
		&post.OwnerUsername,
		&post.OwnerAvatarURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return post, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	args := pgx.NamedArgs{}
	baseQuery := `SELECT ` + postColumns + ` FROM posts p JOIN users u ON u.id = p.owner_id`

	whereClauses := []string{"p.deleted_at IS NULL"}

	if filters.OwnerID != nil {
		whereClauses = append(whereClauses, "p.owner_id = @owner_id")
		args["owner_id"] = *filters.OwnerID
	}

	if len(filters.HashtagTerms) > 0 {
		var termClauses []string
		for i, term := range filters.HashtagTerms {
			paramName := fmt.Sprintf("hashtag_term_%d", i)
			termClauses = append(termClauses, fmt.Sprintf("p.hashtags ILIKE @%s", paramName))
			args[paramName] = "%" + term + "%"
		}
		whereClauses = append(whereClauses, "("+strings.Join(termClauses, " OR ")+")")
	}

	baseQuery += " WHERE " + strings.Join(whereClauses, " AND ")

	// Identifier tie-break keeps offset pagination deterministic when
	// timestamps collide.
	baseQuery += " ORDER BY p.created_at DESC, p.id ASC"

	if filters.Limit != nil {
		baseQuery += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		baseQuery += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := p.db.Query(ctx, baseQuery, args)
	if err != nil {
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.OwnerID,
			&post.Caption,
			&post.Hashtags,
			&post.ImageURL,
			&post.CreatedAt,
			&post.DeletedAt,
			&post.OwnerUsername,
			&post.OwnerAvatarURL,
		)
		if err != nil {
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return posts, nil
}

// SoftDelete transitions a post to the deleted state. Deleting an
// already-deleted post is not an error: the unchanged record is
// returned so the operation stays idempotent.
func (p *PostRepository) SoftDelete(ctx context.Context, id int64) (*model.Post, error) {
	args := pgx.NamedArgs{
		"id":         id,
		"deleted_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	query := `UPDATE posts SET deleted_at = @deleted_at WHERE id = @id AND deleted_at IS NULL`

	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		p.log.Debug("Post already deleted or missing", slog.Int64("id", id))
	}
	return p.getAny(ctx, id)
}

// getAny fetches a post regardless of its deletion state.
func (p *PostRepository) getAny(ctx context.Context, id int64) (*model.Post, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + `
				FROM posts p JOIN users u ON u.id = p.owner_id
				WHERE p.id = @id`

	post := &model.Post{}
	err := p.db.QueryRow(ctx, query, args).Scan(
		&post.ID,
		&post.OwnerID,
		&post.Caption,
		&post.Hashtags,
		&post.ImageURL,
		&post.CreatedAt,
		&post.DeletedAt,
		&post.OwnerUsername,
		&post.OwnerAvatarURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return post, nil
}

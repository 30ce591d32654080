package post_http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lensfeed-post-service/internal/custom_errors"
	"lensfeed-post-service/internal/hashtag"
	"lensfeed-post-service/internal/model"
)

// CreatePost handles POST /posts/. The request is multipart: caption,
// image file and the credential pair. The caption is stored verbatim;
// its hashtags are extracted into the storage form alongside it.
func (h *PostHandler) CreatePost(c *gin.Context) {
	creds, err := h.credentialsFromRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	ok, err := h.auth.Authorize(c.Request.Context(), creds.CurrUserID, creds.Password)
	if err != nil {
		h.log.Error("Authorization check failed", slog.Int64("user_id", creds.CurrUserID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	if !ok {
		respondError(c, fmt.Errorf("invalid credentials for user %d: %w", creds.CurrUserID, custom_errors.ErrUnauthorized))
		return
	}

	caption := c.PostForm("caption")
	if caption == "" {
		respondError(c, fmt.Errorf("caption is required: %w", custom_errors.ErrInvalidInput))
		return
	}

	fileHeader, err := c.FormFile("posts")
	if err != nil {
		respondError(c, fmt.Errorf("image file is required: %w", custom_errors.ErrInvalidInput))
		return
	}

	imageURL, err := h.images.SaveImage(fileHeader)
	if err != nil {
		h.log.Error("Image upload failed", slog.Int64("user_id", creds.CurrUserID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	tags := hashtag.FromCaption(caption)
	post, err := h.postService.CreatePost(c.Request.Context(), &model.CreatePostDTO{
		OwnerID:  creds.CurrUserID,
		Caption:  caption,
		Hashtags: tags.StorageForm,
		ImageURL: imageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "new post created", post)
}

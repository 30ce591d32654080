package post_http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lensfeed-post-service/internal/custom_errors"
)

// DeletePost handles PATCH /posts/:postId. Deletion is soft: the post
// row survives with a deletion timestamp and drops out of every read
// path. Repeating the request answers 200 with the same post.
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, err := idFromParam(c, "postId")
	if err != nil {
		respondError(c, err)
		return
	}

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

	post, err := h.postService.DeletePost(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, fmt.Sprintf("post %d deleted", postID), post)
}

package post_http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListPosts handles GET /posts/: the global feed, newest first, one
// page of ten per request.
func (h *PostHandler) ListPosts(c *gin.Context) {
	offset, err := offsetFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	posts, err := h.postService.ListPosts(c.Request.Context(), offset)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "all posts retrieved", collapse(posts))
}

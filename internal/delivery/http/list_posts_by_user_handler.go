package post_http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListPostsByUser handles GET /posts/userid/:id. An unknown user id is
// a 404 even when the query itself would simply return zero rows.
func (h *PostHandler) ListPostsByUser(c *gin.Context) {
	userID, err := idFromParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	offset, err := offsetFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	posts, err := h.postService.ListPostsByUser(c.Request.Context(), userID, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, fmt.Sprintf("all posts of user %d retrieved", userID), collapse(posts))
}

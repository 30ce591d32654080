package post_http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPost handles GET /posts/:postId.
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := idFromParam(c, "postId")
	if err != nil {
		respondError(c, err)
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, fmt.Sprintf("post %d retrieved", postID), post)
}

package post_http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lensfeed-post-service/internal/hashtag"
)

// ListPostsByHashtags handles GET /posts/tags. The raw query string is
// split into tags; the storage form drives the match and the display
// form is echoed in the confirmation message. An empty match stays a
// list, never a bare object.
func (h *PostHandler) ListPostsByHashtags(c *gin.Context) {
	tags := hashtag.FromQuery(c.Query("hashtags"))

	offset, err := offsetFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	posts, err := h.postService.ListPostsByHashtags(c.Request.Context(), tags.Tags, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	message := fmt.Sprintf("all posts with hashtags '%s' retrieved", tags.DisplayForm)
	respondSuccess(c, http.StatusOK, message, listPayload(posts))
}

package post_http

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lensfeed-post-service/internal/logger"
	"lensfeed-post-service/internal/metrics"
)

// NewRouter assembles the gin engine: middleware, the /posts route
// group and static serving for uploaded images.
//
// The tags route is registered before the :postId route on purpose;
// gin resolves the static segment first, so GET /posts/tags never
// parses "tags" as a post id.
func NewRouter(
	handler *PostHandler,
	provider metrics.Provider,
	log *logger.Logger,
	uploadsDir string,
	uploadsBaseURL string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))
	router.Use(Metrics(provider))
	router.Use(cors.Default())

	router.Static(strings.TrimSuffix(uploadsBaseURL, "/"), uploadsDir)

	posts := router.Group("/posts")
	{
		posts.GET("/", handler.ListPosts)
		posts.GET("/tags", handler.ListPostsByHashtags)
		posts.GET("/userid/:id", handler.ListPostsByUser)
		posts.GET("/:postId", handler.GetPost)
		posts.POST("/add", handler.CreatePost)
		posts.PATCH("/delete/:postId", handler.DeletePost)
	}

	return router
}

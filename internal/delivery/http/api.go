package post_http

import (
	"mime/multipart"

	"github.com/go-playground/validator/v10"

	"lensfeed-post-service/internal/logger"
	auth_service "lensfeed-post-service/internal/service/auth"
	post_service "lensfeed-post-service/internal/service/post"
)

// ImageStore is the upload collaborator: it accepts a single image
// file, rejects anything else, and yields the resolved public URL.
type ImageStore interface {
	SaveImage(fileHeader *multipart.FileHeader) (string, error)
}

type PostHandler struct {
	postService post_service.Service
	auth        auth_service.Authorizer
	images      ImageStore
	validate    *validator.Validate
	log         *logger.Logger
}

func NewPostHandler(
	postService post_service.Service,
	auth auth_service.Authorizer,
	images ImageStore,
	validate *validator.Validate,
	log *logger.Logger,
) *PostHandler {
	return &PostHandler{
		postService: postService,
		auth:        auth,
		images:      images,
		validate:    validate,
		log:         log,
	}
}

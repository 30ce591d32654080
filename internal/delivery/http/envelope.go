package post_http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lensfeed-post-service/internal/custom_errors"
	"lensfeed-post-service/internal/model"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

// Envelope is the uniform response shape for every outcome. Payload is
// null on failure.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Payload any    `json:"payload"`
}

func respondSuccess(c *gin.Context, code int, message string, payload any) {
	c.JSON(code, Envelope{
		Status:  statusSuccess,
		Message: message,
		Payload: payload,
	})
}

// respondError is the single place an error becomes an HTTP response.
// The mapping switches on the error tag, never on message text. Store
// internals never reach the caller: anything unclassified collapses to
// a generic 500.
func respondError(c *gin.Context, err error) {
	code := statusCodeFor(err)

	status := statusFail
	message := err.Error()
	if code == http.StatusInternalServerError {
		status = statusError
		message = "internal server error"
	}

	c.JSON(code, Envelope{
		Status:  status,
		Message: message,
		Payload: nil,
	})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, custom_errors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, custom_errors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, custom_errors.ErrPostNotFound),
		errors.Is(err, custom_errors.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// collapse unwraps a one-element result set to the bare element; zero
// or many stay a list. The API has always answered this way and its
// clients depend on it, so the dynamic shape is produced here, in one
// place, on purpose.
func collapse(posts []*model.Post) any {
	if len(posts) == 1 {
		return posts[0]
	}
	return listPayload(posts)
}

// listPayload keeps empty results as [] rather than JSON null.
func listPayload(posts []*model.Post) []*model.Post {
	if posts == nil {
		return []*model.Post{}
	}
	return posts
}

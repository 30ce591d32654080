package post_http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"lensfeed-post-service/internal/custom_errors"
)

// Request field extraction. Each helper is a pure function of the
// request: it returns the normalized value or a tagged validation
// error, nothing else.

func offsetFromQuery(c *gin.Context) (int, error) {
	raw := c.Query("offset")
	if raw == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("offset must be a non-negative integer: %w", custom_errors.ErrInvalidInput)
	}
	return offset, nil
}

func idFromParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer: %w", name, custom_errors.ErrInvalidInput)
	}
	return id, nil
}

// credentialsRequest carries the per-request credential pair for
// mutating routes. There is no session: every mutation presents the
// pair explicitly.
type credentialsRequest struct {
	CurrUserID int64  `form:"currUserId" json:"currUserId" validate:"required,gt=0"`
	Password   string `form:"password" json:"password" validate:"required"`
}

func (h *PostHandler) credentialsFromRequest(c *gin.Context) (credentialsRequest, error) {
	var creds credentialsRequest
	if err := c.ShouldBind(&creds); err != nil {
		return credentialsRequest{}, fmt.Errorf("currUserId and password are required: %w", custom_errors.ErrInvalidInput)
	}
	if err := h.validate.Struct(&creds); err != nil {
		return credentialsRequest{}, fmt.Errorf("currUserId and password are required: %w", custom_errors.ErrInvalidInput)
	}
	return creds, nil
}

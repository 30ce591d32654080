// Package custom_errors defines the sentinel errors shared across the
// service. Handlers and services wrap these with context via fmt.Errorf
// and callers discriminate with errors.Is, never by parsing message text.
package custom_errors

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("authentication failure")
	ErrPostNotFound  = errors.New("post not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrDatabaseQuery = errors.New("database query error")
	ErrDatabaseScan  = errors.New("database scan error")
	ErrCacheMiss     = errors.New("cache miss")
	ErrCacheInternal = errors.New("cache internal error")
	ErrUploadFailed  = errors.New("upload failed")
)

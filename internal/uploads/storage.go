// Package uploads stores accepted image files on disk and hands back
// the public URL under which they are served. The core never reopens a
// stored file; it only carries the resolved URL.
package uploads

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"lensfeed-post-service/internal/config"
	"lensfeed-post-service/internal/custom_errors"
	"lensfeed-post-service/internal/logger"
)

type Storage struct {
	dir     string
	baseURL string
	log     *logger.Logger
}

func New(cfg config.Uploads, log *logger.Logger) (*Storage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	return &Storage{
		dir:     cfg.Dir,
		baseURL: cfg.BaseURL,
		log:     log,
	}, nil
}

// SaveImage sniffs the file content and rejects anything that is not an
// image before writing a byte. The stored name is prefixed with the
// current unix-millisecond timestamp so concurrent uploads of the same
// filename cannot collide.
func (s *Storage) SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		s.log.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		return "", custom_errors.ErrUploadFailed
	}
	defer func() {
		if err := src.Close(); err != nil {
			s.log.Warn("Failed to close uploaded file", slog.String("error", err.Error()))
		}
	}()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		s.log.Error("Failed to sniff uploaded file", slog.String("error", err.Error()))
		return "", custom_errors.ErrUploadFailed
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		s.log.Debug("Rejected non-image upload",
			slog.String("filename", fileHeader.Filename),
			slog.String("mime", mtype.String()))
		return "", fmt.Errorf("uploaded file must be an image: %w", custom_errors.ErrInvalidInput)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		s.log.Error("Failed to rewind uploaded file", slog.String("error", err.Error()))
		return "", custom_errors.ErrUploadFailed
	}

	fileName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fileHeader.Filename))
	dst, err := os.Create(filepath.Join(s.dir, fileName))
	if err != nil {
		s.log.Error("Failed to create stored file", slog.String("error", err.Error()))
		return "", custom_errors.ErrUploadFailed
	}
	defer func() {
		if err := dst.Close(); err != nil {
			s.log.Warn("Failed to close stored file", slog.String("error", err.Error()))
		}
	}()

	if _, err := io.Copy(dst, src); err != nil {
		s.log.Error("Failed to write stored file", slog.String("error", err.Error()))
		return "", custom_errors.ErrUploadFailed
	}

	s.log.Info("Image stored",
		slog.String("filename", fileName),
		slog.String("mime", mtype.String()))
	return s.baseURL + fileName, nil
}

// Dir reports the on-disk directory so the router can serve it
// statically.
func (s *Storage) Dir() string {
	return s.dir
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"github.com/sekolahku/internal/storage"
)

var (
	ErrFileMissing     = errors.New("no file provided")
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
	ErrFileNotImage    = errors.New("file is not an image")
	ErrFileNotVideo    = errors.New("file is not a video")
	ErrUploadFailed    = storage.ErrUpload
	maxImageUploadSize = int64(5 * 1024 * 1024)
	maxVideoUploadSize = int64(100 * 1024 * 1024)
)

// BatchUploadError reports a batch that stopped partway. Uploads before the
// failing one already succeeded and are kept; Uploaded tells the caller how
// many made it.
type BatchUploadError struct {
	Uploaded int
	Total    int
	Err      error
}

func (e *BatchUploadError) Error() string {
	return fmt.Sprintf("upload %d of %d failed: %v", e.Uploaded+1, e.Total, e.Err)
}

func (e *BatchUploadError) Unwrap() error {
	return e.Err
}

// MediaService turns uploaded files into stored objects with public URLs.
// The upload and the entity write that persists the URL stay two separate
// operations; a failed write after a successful upload leaves an orphaned
// object behind.
type MediaService struct {
	store storage.ObjectStore
}

// NewMediaService wraps an object store.
func NewMediaService(store storage.ObjectStore) *MediaService {
	return &MediaService{store: store}
}

// UploadImage stores one image and returns its public URL. Raster images are
// re-encoded to webp and downscaled; anything that is not an image is refused.
func (s *MediaService) UploadImage(ctx context.Context, fh *multipart.FileHeader, folder, tag string) (string, error) {
	return s.uploadImageIndexed(ctx, fh, folder, tag, -1)
}

// UploadImages stores a batch sequentially. On the first failure the batch
// stops; URLs uploaded so far are returned alongside a BatchUploadError.
func (s *MediaService) UploadImages(ctx context.Context, files []*multipart.FileHeader, folder, tag string) ([]string, error) {
	urls := make([]string, 0, len(files))
	for i, fh := range files {
		url, err := s.uploadImageIndexed(ctx, fh, folder, tag, i)
		if err != nil {
			return urls, &BatchUploadError{Uploaded: len(urls), Total: len(files), Err: err}
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// UploadVideo stores one video file without transformation.
func (s *MediaService) UploadVideo(ctx context.Context, fh *multipart.FileHeader, folder, tag string) (string, error) {
	if fh == nil {
		return "", ErrFileMissing
	}
	if fh.Size > maxVideoUploadSize {
		return "", ErrFileTooLarge
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "video/") {
		return "", ErrFileNotVideo
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer src.Close()

	key := storage.ObjectKey(folder, tag, -1, fh.Filename)
	return s.store.Put(ctx, key, fh.Header.Get("Content-Type"), src)
}

func (s *MediaService) uploadImageIndexed(ctx context.Context, fh *multipart.FileHeader, folder, tag string, index int) (string, error) {
	if fh == nil {
		return "", ErrFileMissing
	}
	if fh.Size > maxImageUploadSize {
		return "", ErrFileTooLarge
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return "", ErrFileNotImage
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	contentType := fh.Header.Get("Content-Type")
	filename := fh.Filename

	encoded, converted, err := storage.EncodeWebP(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if converted {
		data = encoded
		contentType = "image/webp"
		filename = strings.TrimSuffix(filename, path.Ext(filename)) + ".webp"
	}

	key := storage.ObjectKey(folder, tag, index, filename)
	return s.store.Put(ctx, key, contentType, bytes.NewReader(data))
}

// Package storage abstracts where uploaded media lives. The admin runs with a
// local disk store in development and an OSS bucket in production; both hand
// back a stable public URL the content tables persist.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUpload reports a failed storage write. No retry is attempted; the caller
// surfaces the failure and the user may try again.
var ErrUpload = errors.New("storage upload failed")

// ObjectStore writes media objects and returns their public URL.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// ObjectKey builds a storage key: folder, entity tag, millisecond timestamp
// and a uuid guard against same-millisecond collisions. index is appended for
// batch uploads; pass a negative index for single files.
func ObjectKey(folder, tag string, index int, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	stamp := time.Now().UnixMilli()
	short := uuid.New().String()[:8]
	if index >= 0 {
		return fmt.Sprintf("%s/%s-%d-%d-%s%s", cleanSegment(folder), cleanSegment(tag), stamp, index, short, ext)
	}
	return fmt.Sprintf("%s/%s-%d-%s%s", cleanSegment(folder), cleanSegment(tag), stamp, short, ext)
}

func cleanSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	segment = strings.Trim(segment, "/")
	if segment == "" {
		return "uploads"
	}
	var b strings.Builder
	for _, r := range segment {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps uploads on local disk under Dir and serves them from
// URLPath via the static file route.
type LocalStore struct {
	Dir     string
	URLPath string
}

// NewLocalStore builds a disk-backed store.
func NewLocalStore(dir, urlPath string) *LocalStore {
	return &LocalStore{Dir: dir, URLPath: strings.TrimRight(urlPath, "/")}
}

// Put writes the object under Dir, creating folders as needed.
func (s *LocalStore) Put(_ context.Context, key, _ string, body io.Reader) (string, error) {
	target := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	return s.URLPath + "/" + key, nil
}

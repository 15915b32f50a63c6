package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSStore writes uploads to an Aliyun OSS bucket with public-read ACL and
// returns URLs under the configured public base.
type OSSStore struct {
	bucket        *oss.Bucket
	publicBaseURL string
}

// OSSConfig carries the credentials and addressing for an OSS bucket.
type OSSConfig struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	PublicBaseURL   string
}

// NewOSSStore dials OSS. When PublicBaseURL is empty the default
// https://<bucket>.<endpoint> form is used.
func NewOSSStore(cfg OSSConfig) (*OSSStore, error) {
	if cfg.Endpoint == "" || cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("oss config incomplete")
	}

	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("dial oss: %w", err)
	}

	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("open oss bucket: %w", err)
	}

	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
		base = fmt.Sprintf("https://%s.%s", cfg.Bucket, endpoint)
	}

	return &OSSStore{bucket: bucket, publicBaseURL: base}, nil
}

// Put uploads the object. The SDK call has no context support; the ctx
// parameter keeps the interface uniform with future drivers.
func (s *OSSStore) Put(_ context.Context, key, contentType string, body io.Reader) (string, error) {
	opts := []oss.Option{oss.ObjectACL(oss.ACLPublicRead)}
	if contentType != "" {
		opts = append(opts, oss.ContentType(contentType))
	}
	if err := s.bucket.PutObject(key, body, opts...); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	return s.publicBaseURL + "/" + key, nil
}

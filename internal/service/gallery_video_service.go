package service

import (
	"errors"
	"strings"

	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/repo"
	"gorm.io/gorm"
)

var (
	ErrGalleryVideoNotFound   = errors.New("gallery video not found")
	ErrVideoTitleMissing      = errors.New("video title is required")
	ErrVideoSourceMissing     = errors.New("video needs an uploaded file or an embed link")
	ErrVideoSourceConflicting = errors.New("video cannot have both a file and an embed link")
	ErrVideoEmbedInvalid      = errors.New("embed link is not a supported video URL")
)

// GalleryVideoService handles video gallery CRUD. A video comes either from
// an uploaded file (VideoURL) or an external embed (EmbedURL), never both.
type GalleryVideoService struct {
	repo *repo.Repository[db.GalleryVideo]
}

// GalleryVideoInput represents fields accepted when creating or updating a
// gallery video.
type GalleryVideoInput struct {
	Title         string
	Description   string
	VideoURL      string
	EmbedURL      string
	ThumbnailURL  string
	OrderPosition int
}

// NewGalleryVideoService creates a GalleryVideoService instance.
func NewGalleryVideoService(gdb *gorm.DB) *GalleryVideoService {
	return &GalleryVideoService{repo: repo.New[db.GalleryVideo](gdb, "order_position asc")}
}

// List returns all videos ordered by position ascending.
func (s *GalleryVideoService) List() ([]db.GalleryVideo, error) {
	return s.repo.List()
}

// Create inserts a new video.
func (s *GalleryVideoService) Create(input GalleryVideoInput) (*db.GalleryVideo, error) {
	item, err := buildGalleryVideo(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update modifies an existing video, including switching between source modes.
func (s *GalleryVideoService) Update(id uint, input GalleryVideoInput) (*db.GalleryVideo, error) {
	built, err := buildGalleryVideo(input)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.Updates(id, map[string]any{
		"title":          built.Title,
		"description":    built.Description,
		"video_url":      built.VideoURL,
		"embed_url":      built.EmbedURL,
		"thumbnail_url":  built.ThumbnailURL,
		"order_position": built.OrderPosition,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrGalleryVideoNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes a video.
func (s *GalleryVideoService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrGalleryVideoNotFound
		}
		return err
	}
	return nil
}

func buildGalleryVideo(input GalleryVideoInput) (*db.GalleryVideo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrVideoTitleMissing
	}

	videoURL := strings.TrimSpace(input.VideoURL)
	embedURL := strings.TrimSpace(input.EmbedURL)
	switch {
	case videoURL == "" && embedURL == "":
		return nil, ErrVideoSourceMissing
	case videoURL != "" && embedURL != "":
		return nil, ErrVideoSourceConflicting
	}

	if embedURL != "" {
		normalized, ok := NormalizeEmbedURL(embedURL)
		if !ok {
			return nil, ErrVideoEmbedInvalid
		}
		embedURL = normalized
	}

	return &db.GalleryVideo{
		Title:         title,
		Description:   strings.TrimSpace(input.Description),
		VideoURL:      videoURL,
		EmbedURL:      embedURL,
		ThumbnailURL:  strings.TrimSpace(input.ThumbnailURL),
		OrderPosition: input.OrderPosition,
	}, nil
}

package service

import (
	"errors"
	"strings"

	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/repo"
	"gorm.io/gorm"
)

var (
	ErrTentangKamiNotFound     = errors.New("tentang kami photo not found")
	ErrTentangKamiImageMissing = errors.New("tentang kami photo image is required")
)

// TentangKamiService handles the about-page photo strip, including the
// visibility toggle editors use to stage photos.
type TentangKamiService struct {
	repo *repo.Repository[db.TentangKamiPhoto]
}

// TentangKamiInput represents fields accepted when creating or updating a
// photo.
type TentangKamiInput struct {
	ImageURL      string
	Title         string
	Caption       string
	OrderPosition int
	IsActive      bool
}

// NewTentangKamiService creates a TentangKamiService instance.
func NewTentangKamiService(gdb *gorm.DB) *TentangKamiService {
	return &TentangKamiService{repo: repo.New[db.TentangKamiPhoto](gdb, "order_position asc")}
}

// List returns all photos ordered by position ascending, hidden ones included.
func (s *TentangKamiService) List() ([]db.TentangKamiPhoto, error) {
	return s.repo.List()
}

// ListActive returns only the photos currently shown on the site.
func (s *TentangKamiService) ListActive() ([]db.TentangKamiPhoto, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	active := make([]db.TentangKamiPhoto, 0, len(all))
	for _, photo := range all {
		if photo.IsActive {
			active = append(active, photo)
		}
	}
	return active, nil
}

// Create inserts a new photo.
func (s *TentangKamiService) Create(input TentangKamiInput) (*db.TentangKamiPhoto, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, ErrTentangKamiImageMissing
	}

	item := db.TentangKamiPhoto{
		ImageURL:      strings.TrimSpace(input.ImageURL),
		Title:         strings.TrimSpace(input.Title),
		Caption:       strings.TrimSpace(input.Caption),
		OrderPosition: input.OrderPosition,
		IsActive:      input.IsActive,
	}
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing photo.
func (s *TentangKamiService) Update(id uint, input TentangKamiInput) (*db.TentangKamiPhoto, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, ErrTentangKamiImageMissing
	}

	item, err := s.repo.Updates(id, map[string]any{
		"image_url":      strings.TrimSpace(input.ImageURL),
		"title":          strings.TrimSpace(input.Title),
		"caption":        strings.TrimSpace(input.Caption),
		"order_position": input.OrderPosition,
		"is_active":      input.IsActive,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTentangKamiNotFound
		}
		return nil, err
	}
	return item, nil
}

// SetActive toggles a photo's visibility without touching other fields.
func (s *TentangKamiService) SetActive(id uint, active bool) (*db.TentangKamiPhoto, error) {
	item, err := s.repo.Updates(id, map[string]any{"is_active": active})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTentangKamiNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes a photo.
func (s *TentangKamiService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrTentangKamiNotFound
		}
		return err
	}
	return nil
}

package service

import (
	"errors"
	"strings"

	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/repo"
	"gorm.io/gorm"
)

var (
	ErrGalleryPhotoNotFound = errors.New("gallery photo not found")
	ErrGalleryImageMissing  = errors.New("gallery photo image is required")
)

// GalleryPhotoService handles photo gallery CRUD, including batch creation
// after a multi-file upload.
type GalleryPhotoService struct {
	db   *gorm.DB
	repo *repo.Repository[db.GalleryPhoto]
}

// GalleryPhotoInput represents fields accepted when creating or updating a
// gallery photo.
type GalleryPhotoInput struct {
	ImageURL      string
	Caption       string
	OrderPosition int
}

// NewGalleryPhotoService creates a GalleryPhotoService instance.
func NewGalleryPhotoService(gdb *gorm.DB) *GalleryPhotoService {
	return &GalleryPhotoService{db: gdb, repo: repo.New[db.GalleryPhoto](gdb, "order_position asc")}
}

// List returns all photos ordered by position ascending.
func (s *GalleryPhotoService) List() ([]db.GalleryPhoto, error) {
	return s.repo.List()
}

// Create inserts a new photo. A zero order position gets the next slot after
// the current maximum so new photos land at the end.
func (s *GalleryPhotoService) Create(input GalleryPhotoInput) (*db.GalleryPhoto, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, ErrGalleryImageMissing
	}

	position := input.OrderPosition
	if position == 0 {
		next, err := s.nextOrderPosition()
		if err != nil {
			return nil, err
		}
		position = next
	}

	item := db.GalleryPhoto{
		ImageURL:      strings.TrimSpace(input.ImageURL),
		Caption:       strings.TrimSpace(input.Caption),
		OrderPosition: position,
	}
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateBatch inserts photos sequentially in the given order. On the first
// failure the batch stops; photos created before it are kept and returned
// alongside the error, and the caller reconciles from the refreshed list.
func (s *GalleryPhotoService) CreateBatch(inputs []GalleryPhotoInput) ([]db.GalleryPhoto, error) {
	created := make([]db.GalleryPhoto, 0, len(inputs))
	for _, input := range inputs {
		item, err := s.Create(input)
		if err != nil {
			return created, err
		}
		created = append(created, *item)
	}
	return created, nil
}

// Update modifies an existing photo.
func (s *GalleryPhotoService) Update(id uint, input GalleryPhotoInput) (*db.GalleryPhoto, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, ErrGalleryImageMissing
	}

	item, err := s.repo.Updates(id, map[string]any{
		"image_url":      strings.TrimSpace(input.ImageURL),
		"caption":        strings.TrimSpace(input.Caption),
		"order_position": input.OrderPosition,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrGalleryPhotoNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes a photo.
func (s *GalleryPhotoService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrGalleryPhotoNotFound
		}
		return err
	}
	return nil
}

func (s *GalleryPhotoService) nextOrderPosition() (int, error) {
	var maxPosition int
	if err := s.db.Model(&db.GalleryPhoto{}).
		Select("COALESCE(MAX(order_position), 0)").
		Scan(&maxPosition).Error; err != nil {
		return 0, err
	}
	return maxPosition + 1, nil
}

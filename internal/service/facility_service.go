package service

import (
	"errors"
	"strings"

	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/repo"
	"gorm.io/gorm"
)

var (
	ErrFacilityNotFound    = errors.New("facility not found")
	ErrFacilityNameMissing = errors.New("facility name is required")
)

// FacilityService handles facility CRUD. Listing follows the editor-assigned
// order position; duplicate positions are allowed and tie on id.
type FacilityService struct {
	repo *repo.Repository[db.Facility]
}

// FacilityInput represents fields accepted when creating or updating a
// facility.
type FacilityInput struct {
	Name          string
	Description   string
	ImageURL      string
	Icon          string
	OrderPosition int
}

// NewFacilityService creates a FacilityService instance.
func NewFacilityService(gdb *gorm.DB) *FacilityService {
	return &FacilityService{repo: repo.New[db.Facility](gdb, "order_position asc")}
}

// List returns all facilities ordered by position ascending.
func (s *FacilityService) List() ([]db.Facility, error) {
	return s.repo.List()
}

// Create inserts a new facility.
func (s *FacilityService) Create(input FacilityInput) (*db.Facility, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrFacilityNameMissing
	}

	item := db.Facility{
		Name:          strings.TrimSpace(input.Name),
		Description:   strings.TrimSpace(input.Description),
		ImageURL:      strings.TrimSpace(input.ImageURL),
		Icon:          strings.TrimSpace(input.Icon),
		OrderPosition: input.OrderPosition,
	}
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing facility.
func (s *FacilityService) Update(id uint, input FacilityInput) (*db.Facility, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrFacilityNameMissing
	}

	item, err := s.repo.Updates(id, map[string]any{
		"name":           strings.TrimSpace(input.Name),
		"description":    strings.TrimSpace(input.Description),
		"image_url":      strings.TrimSpace(input.ImageURL),
		"icon":           strings.TrimSpace(input.Icon),
		"order_position": input.OrderPosition,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes a facility.
func (s *FacilityService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrFacilityNotFound
		}
		return err
	}
	return nil
}

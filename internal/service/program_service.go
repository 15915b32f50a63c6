package service

import (
	"errors"
	"strings"

	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/repo"
	"gorm.io/gorm"
)

var (
	ErrProgramNotFound        = errors.New("program not found")
	ErrProgramNameMissing     = errors.New("program name is required")
	ErrProgramLimitReached    = errors.New("program limit of 4 reached")
	ErrProgramCategoryInvalid = errors.New("program category is invalid")
)

// ProgramService handles program CRUD. The table is capped at four rows to
// match the homepage layout; creation is refused once the cap is reached.
type ProgramService struct {
	repo *repo.Repository[db.Program]
}

// ProgramInput represents fields accepted when creating or updating a program.
type ProgramInput struct {
	Name          string
	Description   string
	IconURL       string
	ImageURL      string
	Category      string
	OrderPosition int
}

// NewProgramService creates a ProgramService instance.
func NewProgramService(gdb *gorm.DB) *ProgramService {
	return &ProgramService{repo: repo.New[db.Program](gdb, "order_position asc")}
}

// List returns all programs ordered by position ascending.
func (s *ProgramService) List() ([]db.Program, error) {
	return s.repo.List()
}

// Count returns the number of programs; callers use it to block the create
// dialog before any draft is started.
func (s *ProgramService) Count() (int64, error) {
	return s.repo.Count()
}

// Create inserts a new program unless the cap is already reached.
func (s *ProgramService) Create(input ProgramInput) (*db.Program, error) {
	category, err := validateProgramInput(input)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.Count()
	if err != nil {
		return nil, err
	}
	if count >= db.MaxPrograms {
		return nil, ErrProgramLimitReached
	}

	item := db.Program{
		Name:          strings.TrimSpace(input.Name),
		Description:   strings.TrimSpace(input.Description),
		IconURL:       strings.TrimSpace(input.IconURL),
		ImageURL:      strings.TrimSpace(input.ImageURL),
		Category:      category,
		OrderPosition: input.OrderPosition,
	}
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing program. The cap does not apply to updates.
func (s *ProgramService) Update(id uint, input ProgramInput) (*db.Program, error) {
	category, err := validateProgramInput(input)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.Updates(id, map[string]any{
		"name":           strings.TrimSpace(input.Name),
		"description":    strings.TrimSpace(input.Description),
		"icon_url":       strings.TrimSpace(input.IconURL),
		"image_url":      strings.TrimSpace(input.ImageURL),
		"category":       category,
		"order_position": input.OrderPosition,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes a program.
func (s *ProgramService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	return nil
}

func validateProgramInput(input ProgramInput) (string, error) {
	if strings.TrimSpace(input.Name) == "" {
		return "", ErrProgramNameMissing
	}

	category := strings.ToLower(strings.TrimSpace(input.Category))
	if category == "" {
		category = db.ProgramCategoryAcademic
	}
	switch category {
	case db.ProgramCategoryAcademic, db.ProgramCategoryExtracurricular,
		db.ProgramCategoryCharacter, db.ProgramCategoryTour:
		return category, nil
	}
	return "", ErrProgramCategoryInvalid
}

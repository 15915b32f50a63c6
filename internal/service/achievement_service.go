package service

import (
	"errors"
	"strings"
	"time"

	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/repo"
	"gorm.io/gorm"
)

var (
	ErrAchievementNotFound     = errors.New("achievement not found")
	ErrAchievementTitleMissing = errors.New("achievement title is required")
	ErrAchievementYearInvalid  = errors.New("achievement year is invalid")
)

// AchievementService handles achievement CRUD. Listing is newest year first.
type AchievementService struct {
	repo *repo.Repository[db.Achievement]
}

// AchievementInput represents fields accepted when creating or updating an
// achievement.
type AchievementInput struct {
	Title       string
	Description string
	Year        int
	ImageURL    string
}

// NewAchievementService creates an AchievementService instance.
func NewAchievementService(gdb *gorm.DB) *AchievementService {
	return &AchievementService{repo: repo.New[db.Achievement](gdb, "year desc")}
}

// List returns all achievements ordered by year descending.
func (s *AchievementService) List() ([]db.Achievement, error) {
	return s.repo.List()
}

// Create inserts a new achievement.
func (s *AchievementService) Create(input AchievementInput) (*db.Achievement, error) {
	if err := validateAchievementInput(input); err != nil {
		return nil, err
	}

	item := db.Achievement{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Year:        input.Year,
		ImageURL:    strings.TrimSpace(input.ImageURL),
	}
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing achievement.
func (s *AchievementService) Update(id uint, input AchievementInput) (*db.Achievement, error) {
	if err := validateAchievementInput(input); err != nil {
		return nil, err
	}

	item, err := s.repo.Updates(id, map[string]any{
		"title":       strings.TrimSpace(input.Title),
		"description": strings.TrimSpace(input.Description),
		"year":        input.Year,
		"image_url":   strings.TrimSpace(input.ImageURL),
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAchievementNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes an achievement.
func (s *AchievementService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrAchievementNotFound
		}
		return err
	}
	return nil
}

func validateAchievementInput(input AchievementInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrAchievementTitleMissing
	}
	if input.Year < 1900 || input.Year > time.Now().Year()+1 {
		return ErrAchievementYearInvalid
	}
	return nil
}

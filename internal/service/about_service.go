package service

import (
	"strings"

	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/repo"
	"gorm.io/gorm"
)

// AboutService manages the singleton about-us row.
type AboutService struct {
	repo *repo.Repository[db.AboutUs]
}

// AboutInput carries the editable about-us fields.
type AboutInput struct {
	Vision      string
	Mission     string
	Description string
}

// NewAboutService creates an AboutService instance.
func NewAboutService(gdb *gorm.DB) *AboutService {
	return &AboutService{repo: repo.New[db.AboutUs](gdb)}
}

// Get returns the about-us row, or nil when none has been written yet.
func (s *AboutService) Get() (*db.AboutUs, error) {
	return s.repo.First()
}

// Save upserts the singleton row: the existing row is updated in place and a
// second row is never created.
func (s *AboutService) Save(input AboutInput) (*db.AboutUs, error) {
	row, err := s.repo.First()
	if err != nil {
		return nil, err
	}

	if row == nil {
		row = &db.AboutUs{}
	}
	row.Vision = strings.TrimSpace(input.Vision)
	row.Mission = strings.TrimSpace(input.Mission)
	row.Description = strings.TrimSpace(input.Description)

	if row.ID == 0 {
		if err := s.repo.Create(row); err != nil {
			return nil, err
		}
		return row, nil
	}

	if err := s.repo.Save(row); err != nil {
		return nil, err
	}
	return row, nil
}

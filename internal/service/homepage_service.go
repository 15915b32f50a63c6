package service

import (
	"strings"

	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/repo"
	"gorm.io/gorm"
)

// HomepageService manages the singleton homepage settings row.
type HomepageService struct {
	repo *repo.Repository[db.HomepageSettings]
}

// HomepageInput carries the editable homepage fields. HeroImages keeps the
// carousel order as given by the editor.
type HomepageInput struct {
	WelcomeTitle       string
	WelcomeDescription string
	HeroImages         []string
}

// NewHomepageService creates a HomepageService instance.
func NewHomepageService(gdb *gorm.DB) *HomepageService {
	return &HomepageService{repo: repo.New[db.HomepageSettings](gdb)}
}

// Get returns the homepage settings row, or nil when none exists.
func (s *HomepageService) Get() (*db.HomepageSettings, error) {
	return s.repo.First()
}

// Save upserts the singleton row. Empty hero image entries are dropped.
func (s *HomepageService) Save(input HomepageInput) (*db.HomepageSettings, error) {
	row, err := s.repo.First()
	if err != nil {
		return nil, err
	}

	if row == nil {
		row = &db.HomepageSettings{}
	}
	row.WelcomeTitle = strings.TrimSpace(input.WelcomeTitle)
	row.WelcomeDescription = strings.TrimSpace(input.WelcomeDescription)

	images := make(db.StringList, 0, len(input.HeroImages))
	for _, url := range input.HeroImages {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		images = append(images, url)
	}
	row.HeroImages = images

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

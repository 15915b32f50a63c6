package service

import (
	"errors"
	"net/url"
	"strings"

	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/repo"
	"gorm.io/gorm"
)

// ErrPPDBInvalidURL reports a registration form link that is not an http(s) URL.
var ErrPPDBInvalidURL = errors.New("ppdb form url is invalid")

// PPDBService manages the singleton admission settings row.
type PPDBService struct {
	repo *repo.Repository[db.PPDBSettings]
}

// NewPPDBService creates a PPDBService instance.
func NewPPDBService(gdb *gorm.DB) *PPDBService {
	return &PPDBService{repo: repo.New[db.PPDBSettings](gdb)}
}

// Get returns the admission settings row, or nil when none exists.
func (s *PPDBService) Get() (*db.PPDBSettings, error) {
	return s.repo.First()
}

// Save upserts the singleton row after validating the form link.
func (s *PPDBService) Save(formURL string) (*db.PPDBSettings, error) {
	formURL = strings.TrimSpace(formURL)
	parsed, err := url.Parse(formURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, ErrPPDBInvalidURL
	}

	row, err := s.repo.First()
	if err != nil {
		return nil, err
	}

	if row == nil {
		row = &db.PPDBSettings{}
	}
	row.GoogleFormURL = formURL

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

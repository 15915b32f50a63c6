package service

import (
	"errors"
	"strings"

	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/repo"
	"gorm.io/gorm"
)

const (
	// MaxLearningTags caps the tag chips under the learning section.
	MaxLearningTags = 4
	// MaxLearningImages caps the section's illustration images.
	MaxLearningImages = 2
)

var (
	ErrLearningTagLimit     = errors.New("learning section allows at most 4 tags")
	ErrLearningTagDuplicate = errors.New("learning section tag already exists")
	ErrLearningImageLimit   = errors.New("learning section allows at most 2 images")
)

// LearningSectionService manages the singleton learning section row.
type LearningSectionService struct {
	repo *repo.Repository[db.LearningSection]
}

// LearningSectionInput carries the editable learning section fields.
type LearningSectionInput struct {
	Title       string
	Description string
	Tags        []string
	Images      []string
}

// NewLearningSectionService creates a LearningSectionService instance.
func NewLearningSectionService(gdb *gorm.DB) *LearningSectionService {
	return &LearningSectionService{repo: repo.New[db.LearningSection](gdb)}
}

// Get returns the learning section row, or nil when none exists.
func (s *LearningSectionService) Get() (*db.LearningSection, error) {
	return s.repo.First()
}

// Save upserts the singleton row after enforcing the tag and image caps.
func (s *LearningSectionService) Save(input LearningSectionInput) (*db.LearningSection, error) {
	tags, err := NormalizeLearningTags(input.Tags)
	if err != nil {
		return nil, err
	}

	images := make(db.StringList, 0, len(input.Images))
	for _, url := range input.Images {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		images = append(images, url)
	}
	if len(images) > MaxLearningImages {
		return nil, ErrLearningImageLimit
	}

	row, err := s.repo.First()
	if err != nil {
		return nil, err
	}

	if row == nil {
		row = &db.LearningSection{}
	}
	row.Title = strings.TrimSpace(input.Title)
	row.Description = strings.TrimSpace(input.Description)
	row.Tags = tags
	row.Images = images

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

// NormalizeLearningTags trims the tags and enforces the cap and uniqueness
// rules. Comparison is a case-sensitive exact match; each violation carries a
// distinct error so the caller can show the right rejection reason.
func NormalizeLearningTags(raw []string) (db.StringList, error) {
	tags := make(db.StringList, 0, len(raw))
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		for _, existing := range tags {
			if existing == tag {
				return nil, ErrLearningTagDuplicate
			}
		}
		if len(tags) >= MaxLearningTags {
			return nil, ErrLearningTagLimit
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

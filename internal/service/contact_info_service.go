package service

import (
	"strings"

	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/repo"
	"gorm.io/gorm"
)

// ContactInfoService manages the singleton contact info row.
type ContactInfoService struct {
	repo *repo.Repository[db.ContactInfo]
}

// ContactInfoInput carries the editable contact fields.
type ContactInfoInput struct {
	AddressLine1          string
	AddressLine2          string
	Phone                 string
	Email1                string
	Email2                string
	OperatingHours        string
	OperatingHoursSubtext string
}

// NewContactInfoService creates a ContactInfoService instance.
func NewContactInfoService(gdb *gorm.DB) *ContactInfoService {
	return &ContactInfoService{repo: repo.New[db.ContactInfo](gdb)}
}

// Get returns the contact info row, or nil when none exists.
func (s *ContactInfoService) Get() (*db.ContactInfo, error) {
	return s.repo.First()
}

// Save upserts the singleton row.
func (s *ContactInfoService) Save(input ContactInfoInput) (*db.ContactInfo, error) {
	row, err := s.repo.First()
	if err != nil {
		return nil, err
	}

	if row == nil {
		row = &db.ContactInfo{}
	}
	row.AddressLine1 = strings.TrimSpace(input.AddressLine1)
	row.AddressLine2 = strings.TrimSpace(input.AddressLine2)
	row.Phone = strings.TrimSpace(input.Phone)
	row.Email1 = strings.TrimSpace(input.Email1)
	row.Email2 = strings.TrimSpace(input.Email2)
	row.OperatingHours = strings.TrimSpace(input.OperatingHours)
	row.OperatingHoursSubtext = strings.TrimSpace(input.OperatingHoursSubtext)

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

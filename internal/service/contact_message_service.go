package service

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/repo"
	"gorm.io/gorm"
)

var (
	ErrContactMessageNotFound = errors.New("contact message not found")
	ErrContactNameMissing     = errors.New("contact name is required")
	ErrContactEmailInvalid    = errors.New("contact email is invalid")
	ErrContactMessageMissing  = errors.New("contact message text is required")
)

// ContactMessageService handles visitor messages. Visitors only append;
// admins only toggle the replied flag or delete. Message content is never
// edited after submission.
type ContactMessageService struct {
	repo *repo.Repository[db.ContactMessage]
}

// ContactMessageInput carries a visitor submission.
type ContactMessageInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// NewContactMessageService creates a ContactMessageService instance.
func NewContactMessageService(gdb *gorm.DB) *ContactMessageService {
	return &ContactMessageService{repo: repo.New[db.ContactMessage](gdb, "created_at desc")}
}

// List returns all messages newest first.
func (s *ContactMessageService) List() ([]db.ContactMessage, error) {
	return s.repo.List()
}

// Create records a visitor message.
func (s *ContactMessageService) Create(input ContactMessageInput) (*db.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrContactNameMissing
	}

	email := strings.TrimSpace(input.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrContactEmailInvalid
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, ErrContactMessageMissing
	}

	item := db.ContactMessage{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(input.Phone),
		Message: message,
	}
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// SetReplied flags whether the message has been answered. All other fields
// stay untouched.
func (s *ContactMessageService) SetReplied(id uint, replied bool) (*db.ContactMessage, error) {
	item, err := s.repo.Updates(id, map[string]any{"replied": replied})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrContactMessageNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes a message.
func (s *ContactMessageService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrContactMessageNotFound
		}
		return err
	}
	return nil
}

package service

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/repo"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"
)

var (
	ErrNewsNotFound       = errors.New("news not found")
	ErrNewsTitleMissing   = errors.New("news title is required")
	ErrNewsContentMissing = errors.New("news content is required")
)

var (
	newsMarkdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	newsSanitizer = bluemonday.UGCPolicy()
)

// NewsService handles news CRUD. Articles list newest published date first;
// content is markdown and rendered on demand.
type NewsService struct {
	repo *repo.Repository[db.News]
}

// NewsInput represents fields accepted when creating or updating an article.
type NewsInput struct {
	Title         string
	Content       string
	ThumbnailURL  string
	PublishedDate time.Time
	Author        string
}

// NewNewsService creates a NewsService instance.
func NewNewsService(gdb *gorm.DB) *NewsService {
	return &NewsService{repo: repo.New[db.News](gdb, "published_date desc")}
}

// List returns all articles ordered by published date descending.
func (s *NewsService) List() ([]db.News, error) {
	return s.repo.List()
}

// Get fetches one article by id.
func (s *NewsService) Get(id uint) (*db.News, error) {
	item, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return item, nil
}

// Create inserts a new article. A zero published date defaults to now.
func (s *NewsService) Create(input NewsInput) (*db.News, error) {
	if err := validateNewsInput(input); err != nil {
		return nil, err
	}

	published := input.PublishedDate
	if published.IsZero() {
		published = time.Now()
	}

	item := db.News{
		Title:         strings.TrimSpace(input.Title),
		Content:       input.Content,
		ThumbnailURL:  strings.TrimSpace(input.ThumbnailURL),
		PublishedDate: published,
		Author:        strings.TrimSpace(input.Author),
	}
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing article.
func (s *NewsService) Update(id uint, input NewsInput) (*db.News, error) {
	if err := validateNewsInput(input); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"title":         strings.TrimSpace(input.Title),
		"content":       input.Content,
		"thumbnail_url": strings.TrimSpace(input.ThumbnailURL),
		"author":        strings.TrimSpace(input.Author),
	}
	if !input.PublishedDate.IsZero() {
		fields["published_date"] = input.PublishedDate
	}

	item, err := s.repo.Updates(id, fields)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes an article.
func (s *NewsService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNewsNotFound
		}
		return err
	}
	return nil
}

// RenderContent converts markdown article content to sanitized HTML.
func RenderContent(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := newsMarkdown.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return newsSanitizer.Sanitize(buf.String()), nil
}

func validateNewsInput(input NewsInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrNewsTitleMissing
	}
	if strings.TrimSpace(input.Content) == "" {
		return ErrNewsContentMissing
	}
	return nil
}

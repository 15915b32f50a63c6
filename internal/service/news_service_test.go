package service

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewsListNewestPublishedFirst(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewNewsService(gdb)
	dates := []time.Time{
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC),
	}
	for i, date := range dates {
		if _, err := svc.Create(NewsInput{
			Title:         "Berita",
			Content:       "Isi berita",
			PublishedDate: date,
			Author:        "Admin",
		}); err != nil {
			t.Fatalf("seed news %d: %v", i, err)
		}
	}

	list, err := svc.List()
	if err != nil {
		t.Fatalf("list news: %v", err)
	}
	if !list[0].PublishedDate.Equal(dates[1]) {
		t.Fatalf("expected newest first, got %v", list[0].PublishedDate)
	}
	if !list[2].PublishedDate.Equal(dates[2]) {
		t.Fatalf("expected oldest last, got %v", list[2].PublishedDate)
	}
}

func TestNewsCreateDefaultsPublishedDate(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewNewsService(gdb)
	created, err := svc.Create(NewsInput{Title: "Berita", Content: "Isi"})
	if err != nil {
		t.Fatalf("create news: %v", err)
	}
	if created.PublishedDate.IsZero() {
		t.Fatal("expected published date to default to now")
	}
}

func TestNewsValidation(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewNewsService(gdb)
	if _, err := svc.Create(NewsInput{Content: "Isi"}); !errors.Is(err, ErrNewsTitleMissing) {
		t.Fatalf("expected ErrNewsTitleMissing, got %v", err)
	}
	if _, err := svc.Create(NewsInput{Title: "Berita"}); !errors.Is(err, ErrNewsContentMissing) {
		t.Fatalf("expected ErrNewsContentMissing, got %v", err)
	}
}

func TestRenderContentSanitizesHTML(t *testing.T) {
	html, err := RenderContent("# Judul\n\nParagraf dengan **tebal**.\n\n<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("render content: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<strong>tebal</strong>") {
		t.Fatalf("markdown not rendered: %s", html)
	}
	if strings.Contains(html, "<script") {
		t.Fatalf("script tag survived sanitizing: %s", html)
	}
}

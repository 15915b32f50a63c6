package service

import (
	"errors"
	"testing"
)

func TestGalleryVideoCreateEmbedMode(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewGalleryVideoService(gdb)
	created, err := svc.Create(GalleryVideoInput{
		Title:    "Profil Sekolah",
		EmbedURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	if err != nil {
		t.Fatalf("create embed video: %v", err)
	}
	if created.EmbedURL != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
		t.Fatalf("embed url not normalized: %s", created.EmbedURL)
	}
	if created.VideoURL != "" {
		t.Fatalf("file url must stay empty in embed mode: %s", created.VideoURL)
	}
}

func TestGalleryVideoCreateFileMode(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewGalleryVideoService(gdb)
	created, err := svc.Create(GalleryVideoInput{
		Title:    "Kegiatan Pramuka",
		VideoURL: "https://cdn.example.com/videos/pramuka.mp4",
	})
	if err != nil {
		t.Fatalf("create file video: %v", err)
	}
	if created.EmbedURL != "" {
		t.Fatalf("embed url must stay empty in file mode: %s", created.EmbedURL)
	}
}

func TestGalleryVideoSourceValidation(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewGalleryVideoService(gdb)

	if _, err := svc.Create(GalleryVideoInput{Title: "Tanpa sumber"}); !errors.Is(err, ErrVideoSourceMissing) {
		t.Fatalf("expected ErrVideoSourceMissing, got %v", err)
	}
	if _, err := svc.Create(GalleryVideoInput{
		Title:    "Dua sumber",
		VideoURL: "https://cdn.example.com/v.mp4",
		EmbedURL: "https://youtu.be/dQw4w9WgXcQ",
	}); !errors.Is(err, ErrVideoSourceConflicting) {
		t.Fatalf("expected ErrVideoSourceConflicting, got %v", err)
	}
	if _, err := svc.Create(GalleryVideoInput{
		Title:    "Embed asing",
		EmbedURL: "https://example.com/embed/1",
	}); !errors.Is(err, ErrVideoEmbedInvalid) {
		t.Fatalf("expected ErrVideoEmbedInvalid, got %v", err)
	}
}

func TestGalleryVideoUpdateSwitchesMode(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewGalleryVideoService(gdb)
	created, err := svc.Create(GalleryVideoInput{
		Title:    "Profil",
		EmbedURL: "https://youtu.be/dQw4w9WgXcQ",
	})
	if err != nil {
		t.Fatalf("create video: %v", err)
	}

	updated, err := svc.Update(created.ID, GalleryVideoInput{
		Title:    "Profil",
		VideoURL: "https://cdn.example.com/videos/profil.mp4",
	})
	if err != nil {
		t.Fatalf("switch to file mode: %v", err)
	}
	if updated.EmbedURL != "" {
		t.Fatalf("embed url must be cleared on switch, got %s", updated.EmbedURL)
	}
	if updated.VideoURL != "https://cdn.example.com/videos/profil.mp4" {
		t.Fatalf("unexpected video url: %s", updated.VideoURL)
	}
}

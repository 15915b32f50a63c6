package service

import (
	"errors"
	"testing"
)

func TestPPDBSaveValidatesURL(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPPDBService(gdb)

	if _, err := svc.Save("bukan url"); !errors.Is(err, ErrPPDBInvalidURL) {
		t.Fatalf("expected ErrPPDBInvalidURL, got %v", err)
	}
	if _, err := svc.Save("ftp://forms.example.com/x"); !errors.Is(err, ErrPPDBInvalidURL) {
		t.Fatalf("expected ErrPPDBInvalidURL for non-http scheme, got %v", err)
	}

	first, err := svc.Save("https://forms.gle/abc123")
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	second, err := svc.Save("https://forms.gle/def456")
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected singleton reuse, got rows %d and %d", first.ID, second.ID)
	}
	if second.GoogleFormURL != "https://forms.gle/def456" {
		t.Fatalf("unexpected url: %s", second.GoogleFormURL)
	}
}

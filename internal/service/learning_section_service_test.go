package service

import (
	"errors"
	"testing"
)

func TestLearningSectionSaveCreatesSingleton(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewLearningSectionService(gdb)

	got, err := svc.Get()
	if err != nil {
		t.Fatalf("get empty: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil before first save, got %+v", got)
	}

	first, err := svc.Save(LearningSectionInput{
		Title: "Cara Kami Mengajar",
		Tags:  []string{"Interaktif", "Kreatif"},
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	second, err := svc.Save(LearningSectionInput{
		Title: "Cara Kami Belajar",
		Tags:  []string{"Interaktif"},
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected update of row %d, got new row %d", first.ID, second.ID)
	}

	var count int64
	if err := gdb.Table("learning_section").Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
}

func TestLearningSectionTagCap(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewLearningSectionService(gdb)

	_, err := svc.Save(LearningSectionInput{
		Title: "Belajar",
		Tags:  []string{"a", "b", "c", "d", "e"},
	})
	if !errors.Is(err, ErrLearningTagLimit) {
		t.Fatalf("expected ErrLearningTagLimit, got %v", err)
	}

	if row, _ := svc.Get(); row != nil {
		t.Fatalf("rejected save must not persist, got %+v", row)
	}
}

func TestLearningSectionTagDuplicate(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewLearningSectionService(gdb)

	_, err := svc.Save(LearningSectionInput{
		Title: "Belajar",
		Tags:  []string{"Kreatif", "Kreatif"},
	})
	if !errors.Is(err, ErrLearningTagDuplicate) {
		t.Fatalf("expected ErrLearningTagDuplicate, got %v", err)
	}
}

func TestLearningSectionTagDuplicateIsCaseSensitive(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewLearningSectionService(gdb)

	row, err := svc.Save(LearningSectionInput{
		Title: "Belajar",
		Tags:  []string{"Kreatif", "kreatif"},
	})
	if err != nil {
		t.Fatalf("save with case-differing tags: %v", err)
	}
	if len(row.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %v", row.Tags)
	}
}

func TestLearningSectionImageCap(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewLearningSectionService(gdb)

	_, err := svc.Save(LearningSectionInput{
		Title:  "Belajar",
		Images: []string{"https://cdn.example.com/1.webp", "https://cdn.example.com/2.webp", "https://cdn.example.com/3.webp"},
	})
	if !errors.Is(err, ErrLearningImageLimit) {
		t.Fatalf("expected ErrLearningImageLimit, got %v", err)
	}
}

package service

import (
	"errors"
	"testing"
)

func TestProgramCreateCap(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewProgramService(gdb)
	names := []string{"Tahfidz", "Robotik", "Pramuka", "Study Tour"}
	for i, name := range names {
		if _, err := svc.Create(ProgramInput{Name: name, OrderPosition: i + 1}); err != nil {
			t.Fatalf("seed program %s: %v", name, err)
		}
	}

	if _, err := svc.Create(ProgramInput{Name: "Kelima"}); !errors.Is(err, ErrProgramLimitReached) {
		t.Fatalf("expected ErrProgramLimitReached, got %v", err)
	}

	count, err := svc.Count()
	if err != nil {
		t.Fatalf("count programs: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 programs, got %d", count)
	}
}

func TestProgramUpdateAllowedAtCap(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewProgramService(gdb)
	var lastID uint
	for i := 0; i < 4; i++ {
		created, err := svc.Create(ProgramInput{Name: "Program", OrderPosition: i})
		if err != nil {
			t.Fatalf("seed program: %v", err)
		}
		lastID = created.ID
	}

	updated, err := svc.Update(lastID, ProgramInput{Name: "Program Baru", Category: "tour"})
	if err != nil {
		t.Fatalf("update at cap: %v", err)
	}
	if updated.Name != "Program Baru" || updated.Category != "tour" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestProgramCategoryValidation(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewProgramService(gdb)

	if _, err := svc.Create(ProgramInput{Name: "Renang", Category: "olahraga"}); !errors.Is(err, ErrProgramCategoryInvalid) {
		t.Fatalf("expected ErrProgramCategoryInvalid, got %v", err)
	}

	created, err := svc.Create(ProgramInput{Name: "Renang"})
	if err != nil {
		t.Fatalf("create with default category: %v", err)
	}
	if created.Category != "academic" {
		t.Fatalf("expected default category academic, got %s", created.Category)
	}
}

func TestProgramListOrdersByPosition(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewProgramService(gdb)
	positions := []int{3, 1, 2}
	for _, pos := range positions {
		if _, err := svc.Create(ProgramInput{Name: "Program", OrderPosition: pos}); err != nil {
			t.Fatalf("seed program: %v", err)
		}
	}

	list, err := svc.List()
	if err != nil {
		t.Fatalf("list programs: %v", err)
	}
	if list[0].OrderPosition != 1 || list[1].OrderPosition != 2 || list[2].OrderPosition != 3 {
		t.Fatalf("unexpected order: %+v", []int{list[0].OrderPosition, list[1].OrderPosition, list[2].OrderPosition})
	}
}

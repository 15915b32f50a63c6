package service

import (
	"errors"
	"testing"
)

func TestContactMessageSetRepliedKeepsContent(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewContactMessageService(gdb)
	created, err := svc.Create(ContactMessageInput{
		Name:    "Budi",
		Email:   "budi@example.com",
		Phone:   "0812000111",
		Message: "Kapan pendaftaran dibuka?",
	})
	if err != nil {
		t.Fatalf("create message: %v", err)
	}

	updated, err := svc.SetReplied(created.ID, true)
	if err != nil {
		t.Fatalf("set replied: %v", err)
	}
	if !updated.Replied {
		t.Fatal("expected replied=true")
	}
	if updated.Message != created.Message || updated.Email != created.Email {
		t.Fatalf("message content changed: %+v", updated)
	}

	list, err := svc.List()
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(list) != 1 || !list[0].Replied {
		t.Fatalf("replied flag not visible in list: %+v", list)
	}
}

func TestContactMessageValidation(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewContactMessageService(gdb)

	if _, err := svc.Create(ContactMessageInput{Email: "budi@example.com", Message: "Halo"}); !errors.Is(err, ErrContactNameMissing) {
		t.Fatalf("expected ErrContactNameMissing, got %v", err)
	}
	if _, err := svc.Create(ContactMessageInput{Name: "Budi", Email: "bukan-email", Message: "Halo"}); !errors.Is(err, ErrContactEmailInvalid) {
		t.Fatalf("expected ErrContactEmailInvalid, got %v", err)
	}
	if _, err := svc.Create(ContactMessageInput{Name: "Budi", Email: "budi@example.com"}); !errors.Is(err, ErrContactMessageMissing) {
		t.Fatalf("expected ErrContactMessageMissing, got %v", err)
	}
}

func TestContactMessageListNewestFirst(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewContactMessageService(gdb)
	for _, name := range []string{"Pertama", "Kedua", "Ketiga"} {
		if _, err := svc.Create(ContactMessageInput{Name: name, Email: "x@example.com", Message: "Halo"}); err != nil {
			t.Fatalf("seed message: %v", err)
		}
	}

	list, err := svc.List()
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(list))
	}
}

package faq

import (
	"context"
	"errors"
	"testing"
)

func seedEntries(t *testing.T, svc *Service) {
	t.Helper()
	entries := []Entry{
		{Category: "resume", Question: "Как сгенерировать резюме?", Answer: "Нажмите кнопку генерации.", Position: 1},
		{Category: "resume", Question: "Какие шаблоны доступны?", Answer: "Четыре стиля оформления.", Position: 2},
		{Category: "jobs", Question: "Как откликнуться на вакансию?", Answer: "Откройте вакансию и нажмите отклик.", Position: 1},
	}
	for _, entry := range entries {
		if _, err := svc.Create(context.Background(), entry); err != nil {
			t.Fatalf("seed entry: %v", err)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Create(context.Background(), Entry{Question: " ", Answer: "a"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}

	entry, err := svc.Create(context.Background(), Entry{Question: "Q", Answer: "A"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if entry.Category != "general" {
		t.Fatalf("category = %q, want default general", entry.Category)
	}
	if entry.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestSearchByCategory(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	seedEntries(t, svc)

	entries, err := svc.Search(context.Background(), "resume", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 resume entries, got %d", len(entries))
	}
	if entries[0].Position > entries[1].Position {
		t.Fatal("entries should be ordered by position")
	}
}

func TestSearchBySubstring(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	seedEntries(t, svc)

	entries, err := svc.Search(context.Background(), "", "вакансию")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 match, got %d", len(entries))
	}
	if entries[0].Category != "jobs" {
		t.Fatalf("unexpected match: %+v", entries[0])
	}

	// Case-insensitive and matches answers too.
	entries, err = svc.Search(context.Background(), "resume", "ШАБЛОНЫ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 case-insensitive match, got %d", len(entries))
	}
}

func TestDeleteMissingEntry(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

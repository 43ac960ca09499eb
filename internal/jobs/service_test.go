package jobs

import (
	"context"
	"errors"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemoryRepo())
}

func TestCreateStartsPending(t *testing.T) {
	svc := newTestService()

	job, err := svc.Create(context.Background(), "employer-1", Job{
		Title:   "Backend Developer",
		Company: "TechKZ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.Status != StatusPending {
		t.Fatalf("status = %q, want pending", job.Status)
	}
	if job.EmployerID != "employer-1" {
		t.Fatalf("employer = %q, want employer-1", job.EmployerID)
	}
	if job.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestCreateRequiresTitleAndCompany(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Create(context.Background(), "employer-1", Job{Title: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestModerationFlow(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), "employer-1", Job{Title: "Intern", Company: "KZ Bank"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Not listed publicly while pending.
	public, err := svc.ListPublic(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(public) != 0 {
		t.Fatalf("pending job leaked into public list: %v", public)
	}

	pending, err := svc.ListPending(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending job, got %d", len(pending))
	}

	approved, err := svc.Moderate(context.Background(), "admin-1", created.ID, StatusApproved)
	if err != nil {
		t.Fatalf("moderate: %v", err)
	}
	if approved.Status != StatusApproved || approved.ModeratedBy != "admin-1" {
		t.Fatalf("unexpected moderation result: %+v", approved)
	}

	public, err = svc.ListPublic(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(public) != 1 {
		t.Fatalf("approved job missing from public list")
	}
}

func TestModerateRejectsUnknownStatus(t *testing.T) {
	svc := newTestService()
	created, _ := svc.Create(context.Background(), "employer-1", Job{Title: "Intern", Company: "KZ Bank"})

	if _, err := svc.Moderate(context.Background(), "admin-1", created.ID, "maybe"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestUpdateResetsModeration(t *testing.T) {
	svc := newTestService()
	created, _ := svc.Create(context.Background(), "employer-1", Job{Title: "Intern", Company: "KZ Bank"})
	if _, err := svc.Moderate(context.Background(), "admin-1", created.ID, StatusApproved); err != nil {
		t.Fatalf("moderate: %v", err)
	}

	updated, err := svc.Update(context.Background(), "employer-1", created.ID, Job{Title: "Senior Intern", Company: "KZ Bank"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != StatusPending {
		t.Fatalf("status after edit = %q, want pending", updated.Status)
	}
	if updated.ModeratedBy != "" {
		t.Fatalf("moderator should be cleared after edit, got %q", updated.ModeratedBy)
	}
}

func TestUpdateForbiddenForOtherEmployer(t *testing.T) {
	svc := newTestService()
	created, _ := svc.Create(context.Background(), "employer-1", Job{Title: "Intern", Company: "KZ Bank"})

	if _, err := svc.Update(context.Background(), "employer-2", created.ID, Job{Title: "X", Company: "Y"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
}

func TestDeleteOwnershipRules(t *testing.T) {
	svc := newTestService()
	created, _ := svc.Create(context.Background(), "employer-1", Job{Title: "Intern", Company: "KZ Bank"})

	if err := svc.Delete(context.Background(), "employer-2", false, created.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
	if err := svc.Delete(context.Background(), "admin-1", true, created.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound after delete", err)
	}
}

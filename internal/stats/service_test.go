package stats

import (
	"context"
	"testing"
	"time"

	"jumysal-backend/internal/jobs"
	"jumysal-backend/internal/resumes"
	"jumysal-backend/internal/users"
)

func TestSummaryCounts(t *testing.T) {
	ctx := context.Background()

	usersRepo := users.NewMemoryRepo()
	jobsRepo := jobs.NewMemoryRepo()
	resumesRepo := resumes.NewMemoryRepo()

	for _, u := range []users.User{
		{ID: "u1", Email: "a@b.kz"},
		{ID: "u2", Email: "c@d.kz", Role: users.RoleEmployer},
	} {
		if err := usersRepo.Upsert(ctx, u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	for i, status := range []string{jobs.StatusPending, jobs.StatusApproved, jobs.StatusApproved} {
		job := jobs.Job{ID: string(rune('a' + i)), EmployerID: "u2", Title: "T", Company: "C", Status: status}
		if err := jobsRepo.Create(ctx, job); err != nil {
			t.Fatalf("seed job: %v", err)
		}
	}

	if err := resumesRepo.Save(ctx, resumes.GeneratedResume{
		UserID:      "u1",
		HTML:        "<div/>",
		Template:    resumes.StyleModern,
		Source:      resumes.SourceAI,
		GeneratedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed resume: %v", err)
	}

	svc := &Service{Users: usersRepo, Jobs: jobsRepo, Resumes: resumesRepo}
	summary, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.Users != 2 {
		t.Fatalf("users = %d, want 2", summary.Users)
	}
	if summary.UsersByRole[users.RoleStudent] != 1 || summary.UsersByRole[users.RoleEmployer] != 1 {
		t.Fatalf("usersByRole = %v", summary.UsersByRole)
	}
	if summary.Resumes != 1 {
		t.Fatalf("resumes = %d, want 1", summary.Resumes)
	}
	if summary.ResumesLast7d != 1 {
		t.Fatalf("resumesLast7d = %d, want 1", summary.ResumesLast7d)
	}
	if summary.JobsByState[jobs.StatusApproved] != 2 {
		t.Fatalf("approved = %d, want 2", summary.JobsByState[jobs.StatusApproved])
	}
	if summary.JobsByState[jobs.StatusPending] != 1 {
		t.Fatalf("pending = %d, want 1", summary.JobsByState[jobs.StatusPending])
	}
	// All states are present even when zero.
	if _, ok := summary.JobsByState[jobs.StatusRejected]; !ok {
		t.Fatal("rejected count missing from summary")
	}
}

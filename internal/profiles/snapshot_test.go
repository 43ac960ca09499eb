package profiles

import (
	"context"
	"reflect"
	"testing"
)

func TestNormalizeEmptyProfileGetsDefaults(t *testing.T) {
	snap := Normalize(Profile{})

	if snap.Position != "Студент" {
		t.Fatalf("position = %q, want default", snap.Position)
	}
	if snap.Location != "Казахстан" {
		t.Fatalf("location = %q, want default", snap.Location)
	}
	if !reflect.DeepEqual(snap.Skills, DefaultSkills) {
		t.Fatalf("skills = %v, want defaults", snap.Skills)
	}
	if !reflect.DeepEqual(snap.Languages, DefaultLanguages) {
		t.Fatalf("languages = %v, want defaults", snap.Languages)
	}
}

func TestNormalizeNeverReturnsNilLists(t *testing.T) {
	snap := Normalize(Profile{})

	for name, list := range map[string][]string{
		"skills":     snap.Skills,
		"experience": snap.Experience,
		"education":  snap.Education,
		"languages":  snap.Languages,
		"interests":  snap.Interests,
	} {
		if list == nil {
			t.Fatalf("%s list is nil", name)
		}
	}
}

func TestNormalizeKeepsFilledValues(t *testing.T) {
	snap := Normalize(Profile{
		DisplayName: "  Aigerim K.  ",
		Position:    "Intern",
		Skills:      []string{" Go ", "", "SQL"},
	})

	if snap.DisplayName != "Aigerim K." {
		t.Fatalf("display name = %q, want trimmed value", snap.DisplayName)
	}
	if snap.Position != "Intern" {
		t.Fatalf("position = %q, want filled value", snap.Position)
	}
	if !reflect.DeepEqual(snap.Skills, []string{"Go", "SQL"}) {
		t.Fatalf("skills = %v, want cleaned list", snap.Skills)
	}
}

func TestSnapshotMissingProfileUsesSessionFallbacks(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	snap, err := svc.Snapshot(context.Background(), "user-1", "Dana", "dana@example.kz")
	if err != nil {
		t.Fatalf("missing profile must not be an error: %v", err)
	}
	if snap.DisplayName != "Dana" {
		t.Fatalf("display name = %q, want session fallback", snap.DisplayName)
	}
	if snap.Email != "dana@example.kz" {
		t.Fatalf("email = %q, want session fallback", snap.Email)
	}
}

func TestUpdateRejectsBadEmail(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	if _, err := svc.Update(context.Background(), Profile{UserID: "u1", Email: "not-an-email"}); err == nil {
		t.Fatal("expected validation error for malformed email")
	}
	if _, err := svc.Update(context.Background(), Profile{UserID: "u1", Email: "ok@example.kz"}); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
}

package users

import (
	"context"
	"errors"
	"testing"
)

func TestUpsertFromAuthValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if err := svc.UpsertFromAuth(context.Background(), User{ID: "", Email: "a@b.kz"}); err == nil {
		t.Fatal("expected error for empty id")
	}
	if err := svc.UpsertFromAuth(context.Background(), User{ID: "u1", Email: " "}); err == nil {
		t.Fatal("expected error for empty email")
	}
	if err := svc.UpsertFromAuth(context.Background(), User{ID: "u1", Email: "a@b.kz", FullName: "Dana"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	user, err := svc.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Role != RoleStudent {
		t.Fatalf("role = %q, want default student", user.Role)
	}
}

func TestUpsertFromAuthPreservesRole(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if err := svc.UpsertFromAuth(context.Background(), User{ID: "u1", Email: "a@b.kz"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := svc.SetRole(context.Background(), "u1", RoleEmployer); err != nil {
		t.Fatalf("set role: %v", err)
	}

	// A later login must not downgrade the role.
	if err := svc.UpsertFromAuth(context.Background(), User{ID: "u1", Email: "a@b.kz", FullName: "Dana"}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	user, err := svc.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Role != RoleEmployer {
		t.Fatalf("role = %q, want employer preserved", user.Role)
	}
}

func TestSetRoleValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if err := svc.SetRole(context.Background(), "u1", "superuser"); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if err := svc.SetRole(context.Background(), "missing", RoleAdmin); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

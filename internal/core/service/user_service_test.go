package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

func TestUserService_Create(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "frank@example.com",
		Password: "plaintext",
		Name:     "Frank",
		Role:     domain.RoleEditor,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.PasswordHash == "plaintext" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("plaintext")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "g@example.com",
		Password: "pass",
		Role:     "superuser",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Create_EmailConflict(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	in := ports.CreateUserInput{Email: "dup@example.com", Password: "pass", Role: domain.RoleEditor}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email: "h@example.com", Password: "old", Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	oldHash := user.PasswordHash

	newPass := "newpassword"
	updated, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Password: &newPass})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash == oldHash {
		t.Fatal("expected hash to change")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(newPass)); err != nil {
		t.Fatalf("new hash does not match new password: %v", err)
	}
}

func TestUserService_Update_OwnEmailIsNoop(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email: "same@example.com", Password: "pass", Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	email := "same@example.com"
	name := "Renamed"
	if _, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Email: &email, Name: &name}); err != nil {
		t.Fatalf("updating a user to their own email must succeed: %v", err)
	}
}

func TestUserService_EnsureAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.EnsureAdmin(context.Background(), "root@example.com", "bootpass", "Administrator"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	seeded, err := repo.FindByEmail(context.Background(), "root@example.com")
	if err != nil {
		t.Fatalf("seeded admin missing: %v", err)
	}
	if seeded.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", seeded.Role)
	}

	// Second call must be a no-op, not a conflict.
	if err := svc.EnsureAdmin(context.Background(), "root@example.com", "otherpass", "Administrator"); err != nil {
		t.Fatalf("repeat seed failed: %v", err)
	}
	again, _ := repo.FindByEmail(context.Background(), "root@example.com")
	if again.PasswordHash != seeded.PasswordHash {
		t.Fatal("repeat seed must not overwrite the existing account")
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, email, password, role string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &domain.User{
		ID:           "user-" + email,
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	repo.users[u.ID] = u
	return u
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "carol@example.com", "s3cret", domain.RoleAdmin)
	svc := NewAuthService(repo, "secret", time.Hour)

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.ID != seeded.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != seeded.ID {
		t.Fatalf("expected sub %s, got %v", seeded.ID, claims["sub"])
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["email"] != seeded.Email {
		t.Fatalf("expected email %s, got %v", seeded.Email, claims["email"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("expected numeric exp claim, got %T", claims["exp"])
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		t.Fatalf("token already expired: %v", claims["exp"])
	}
}

// Wrong password and unknown email must be indistinguishable so login cannot
// be used to enumerate accounts.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "dave@example.com", "goodpass", domain.RoleEditor)
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _, badPass := svc.Login(context.Background(), "dave@example.com", "wrongpass")
	_, _, badEmail := svc.Login(context.Background(), "ghost@example.com", "goodpass")

	if badPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", badPass)
	}
	if badEmail != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", badEmail)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.c", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "erin@example.com", "pass", domain.RoleEditor)
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Profile(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if user.Email != seeded.Email {
		t.Fatalf("unexpected profile: %+v", user)
	}

	if _, err := svc.Profile(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

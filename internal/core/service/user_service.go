package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

const bcryptCost = bcrypt.DefaultCost

type userService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

// NewUserService returns a UserService implementation.
func NewUserService(repo ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, log: log}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a staff account after an advisory email-uniqueness pre-check.
// The plaintext credential is hashed before persistence and is never logged.
func (s *userService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if !domain.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w %q", domain.ErrInvalidRole, in.Role)
	}
	if err := s.checkEmailFree(ctx, in.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user created")
	return user, nil
}

// Update applies only the provided fields. An email change re-runs the
// uniqueness check against other rows; a supplied password is re-hashed.
func (s *userService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		if err := s.checkEmailFree(ctx, *in.Email); err != nil {
			return nil, err
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !domain.ValidRole(*in.Role) {
			return nil, fmt.Errorf("%w %q", domain.ErrInvalidRole, *in.Role)
		}
		user.Role = *in.Role
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// EnsureAdmin creates the bootstrap administrator account when no user with
// the given email exists yet. Called once at startup.
func (s *userService) EnsureAdmin(ctx context.Context, email, password, name string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	_, err = s.Create(ctx, ports.CreateUserInput{
		Email:    email,
		Password: password,
		Name:     name,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	s.log.Info().Str("email", email).Msg("admin account seeded")
	return nil
}

func (s *userService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return nil
}

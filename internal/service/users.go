package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/metinatakli/ticket-service/internal/domain"
)

const AdminUsername = "admin"

type UserService struct {
	users    domain.UserRepository
	sessions domain.SessionProvider
	logger   *slog.Logger
}

func NewUserService(users domain.UserRepository, sessions domain.SessionProvider, logger *slog.Logger) *UserService {
	return &UserService{
		users:    users,
		sessions: sessions,
		logger:   logger.With("service", "user"),
	}
}

// EnsureAdmin creates the administrator account unless it already exists.
func (s *UserService) EnsureAdmin(ctx context.Context, password string) error {
	exists, err := s.users.ExistsByUsername(ctx, AdminUsername)
	if err != nil {
		return fmt.Errorf("check admin account: %w", err)
	}

	if exists {
		return nil
	}

	admin := domain.User{Username: AdminUsername, Role: domain.RoleAdmin}

	err = admin.Password.Set(password)
	if err != nil {
		return err
	}

	err = s.users.Create(ctx, &admin)
	if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("create admin account: %w", err)
	}

	s.logger.Info("admin account created")

	return nil
}

func (s *UserService) SignUp(ctx context.Context, username, password string) (*domain.User, error) {
	user := domain.User{Username: username, Role: domain.RoleUser}

	err := user.Password.Set(password)
	if err != nil {
		return nil, err
	}

	err = s.users.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			s.logger.Warn("sign up attempt for taken username", "username", username)
		}

		return nil, err
	}

	return &user, nil
}

// SignIn replaces the current identity. A privileged sign-in only accepts
// admin accounts, a plain one refuses them.
func (s *UserService) SignIn(ctx context.Context, username, password string, privileged bool) (domain.Identity, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			s.logger.Warn("sign in attempt for non-existent user")
			return domain.Identity{}, domain.ErrInvalidLogin
		}

		return domain.Identity{}, err
	}

	ok, err := user.Password.Matches(password)
	if err != nil {
		return domain.Identity{}, err
	}

	if !ok || privileged != (user.Role == domain.RoleAdmin) {
		s.logger.Warn("sign in rejected", "username", username, "privileged", privileged)
		return domain.Identity{}, domain.ErrInvalidLogin
	}

	identity := domain.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	err = s.sessions.SetCurrentIdentity(ctx, identity)
	if err != nil {
		return domain.Identity{}, err
	}

	return identity, nil
}

func (s *UserService) SignOut(ctx context.Context) error {
	_, ok := s.sessions.CurrentIdentity(ctx)
	if !ok {
		return domain.ErrNotAuthenticated
	}

	return s.sessions.ClearCurrentIdentity(ctx)
}

func (s *UserService) Current(ctx context.Context) (domain.Identity, bool) {
	return s.sessions.CurrentIdentity(ctx)
}

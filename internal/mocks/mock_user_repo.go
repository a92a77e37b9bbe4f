package mocks

import (
	"context"

	"github.com/metinatakli/ticket-service/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	CreateFunc           func(ctx context.Context, user *domain.User) error
	GetByUsernameFunc    func(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.GetByUsernameFunc(ctx, username)
}

func (m *MockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return m.ExistsByUsernameFunc(ctx, username)
}

package mocks

import (
	"context"

	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockScreeningRepo struct {
	mock.Mock
	domain.ScreeningRepository

	// Existing is handed to the check passed to CreateChecked.
	Existing []domain.Screening
}

func (m *MockScreeningRepo) CreateChecked(
	ctx context.Context,
	screening *domain.Screening,
	check func(existing []domain.Screening) error) error {

	err := check(m.Existing)
	if err != nil {
		return err
	}

	args := m.Called(ctx, screening)
	return args.Error(0)
}

func (m *MockScreeningRepo) GetByKey(ctx context.Context, key domain.ScreeningKey) (*domain.Screening, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Screening), args.Error(1)
}

func (m *MockScreeningRepo) GetAll(ctx context.Context) ([]domain.Screening, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Screening), args.Error(1)
}

func (m *MockScreeningRepo) Delete(ctx context.Context, screening *domain.Screening) error {
	args := m.Called(ctx, screening)
	return args.Error(0)
}

func (m *MockScreeningRepo) AttachPricingComponent(ctx context.Context, screeningID, componentID int) error {
	args := m.Called(ctx, screeningID, componentID)
	return args.Error(0)
}

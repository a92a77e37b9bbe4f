package mocks

import (
	"context"

	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPricingComponentRepo struct {
	mock.Mock
	domain.PricingComponentRepository
}

func (m *MockPricingComponentRepo) Create(ctx context.Context, component *domain.PricingComponent) error {
	args := m.Called(ctx, component)
	return args.Error(0)
}

func (m *MockPricingComponentRepo) GetByName(ctx context.Context, name string) (*domain.PricingComponent, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingComponent), args.Error(1)
}

func (m *MockPricingComponentRepo) GetByIDs(ctx context.Context, ids []int) ([]domain.PricingComponent, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricingComponent), args.Error(1)
}

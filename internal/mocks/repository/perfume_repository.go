package repository

import (
	"context"

	"parfum/internal/domain/entity"
	"parfum/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPerfumeRepository is a testify mock of repository.PerfumeRepository.
type MockPerfumeRepository struct {
	mock.Mock
}

// NewMockPerfumeRepository creates the mock and registers the expectation check.
func NewMockPerfumeRepository(t mockConstructorTestingT) *MockPerfumeRepository {
	m := &MockPerfumeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPerfumeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Perfume, error) {
	args := m.Called(ctx, id)
	perfume, _ := args.Get(0).(*entity.Perfume)

	return perfume, args.Error(1)
}

func (m *MockPerfumeRepository) Create(ctx context.Context, perfume *entity.Perfume) error {
	args := m.Called(ctx, perfume)

	return args.Error(0)
}

func (m *MockPerfumeRepository) Update(ctx context.Context, perfume *entity.Perfume) error {
	args := m.Called(ctx, perfume)

	return args.Error(0)
}

func (m *MockPerfumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockPerfumeRepository) List(ctx context.Context, filter repository.CatalogFilter) ([]*entity.Perfume, int64, error) {
	args := m.Called(ctx, filter)
	perfumes, _ := args.Get(0).([]*entity.Perfume)

	return perfumes, args.Get(1).(int64), args.Error(2)
}

func (m *MockPerfumeRepository) FindByPreferences(ctx context.Context, filter repository.RecommendationFilter) ([]*entity.Perfume, error) {
	args := m.Called(ctx, filter)
	perfumes, _ := args.Get(0).([]*entity.Perfume)

	return perfumes, args.Error(1)
}

func (m *MockPerfumeRepository) FindSimilar(ctx context.Context, perfume *entity.Perfume, limit int) ([]*entity.Perfume, error) {
	args := m.Called(ctx, perfume, limit)
	perfumes, _ := args.Get(0).([]*entity.Perfume)

	return perfumes, args.Error(1)
}

func (m *MockPerfumeRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)

	return args.Error(0)
}

func (m *MockPerfumeRepository) UpdateRatingStats(ctx context.Context, id uuid.UUID, stats entity.RatingStats) error {
	args := m.Called(ctx, id, stats)

	return args.Error(0)
}

package repository

import (
	"context"

	"parfum/internal/domain/entity"
	"parfum/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a testify mock of repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

// NewMockReviewRepository creates the mock and registers the expectation check.
func NewMockReviewRepository(t mockConstructorTestingT) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewRepository) Upsert(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *MockReviewRepository) DeleteByUserAndPerfume(ctx context.Context, userID, perfumeID uuid.UUID) error {
	args := m.Called(ctx, userID, perfumeID)

	return args.Error(0)
}

func (m *MockReviewRepository) ListByPerfume(ctx context.Context, perfumeID uuid.UUID, opts repository.ReviewListOptions) ([]*entity.Review, int64, error) {
	args := m.Called(ctx, perfumeID, opts)
	reviews, _ := args.Get(0).([]*entity.Review)

	return reviews, args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) Stats(ctx context.Context, perfumeID uuid.UUID) (entity.RatingStats, error) {
	args := m.Called(ctx, perfumeID)
	stats, _ := args.Get(0).(entity.RatingStats)

	return stats, args.Error(1)
}

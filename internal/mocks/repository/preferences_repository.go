package repository

import (
	"context"

	"parfum/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPreferencesRepository is a testify mock of repository.PreferencesRepository.
type MockPreferencesRepository struct {
	mock.Mock
}

// NewMockPreferencesRepository creates the mock and registers the expectation check.
func NewMockPreferencesRepository(t mockConstructorTestingT) *MockPreferencesRepository {
	m := &MockPreferencesRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPreferencesRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error) {
	args := m.Called(ctx, userID)
	prefs, _ := args.Get(0).(*entity.UserPreferences)

	return prefs, args.Error(1)
}

func (m *MockPreferencesRepository) Upsert(ctx context.Context, prefs *entity.UserPreferences) error {
	args := m.Called(ctx, prefs)

	return args.Error(0)
}

func (m *MockPreferencesRepository) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)

	return args.Bool(0), args.Error(1)
}

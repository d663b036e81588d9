// Package service contains testify mocks for the domain service interfaces.
package service

import (
	"time"

	"parfum/internal/domain/entity"
	domainservice "parfum/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates the mock and registers the expectation check.
func NewMockPasswordHasher(t mockConstructorTestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates the mock and registers the expectation check.
func NewMockTokenService(t mockConstructorTestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateToken(userID uuid.UUID, role entity.Role) (string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*domainservice.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*domainservice.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) AccessTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// MockQRCodeService is a testify mock of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates the mock and registers the expectation check.
func NewMockQRCodeService(t mockConstructorTestingT) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GenerateOrderPickupQR(orderID uuid.UUID) ([]byte, error) {
	args := m.Called(orderID)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}

func (m *MockQRCodeService) ParseOrderPickupQR(qrData string) (uuid.UUID, error) {
	args := m.Called(qrData)

	return args.Get(0).(uuid.UUID), args.Error(1)
}

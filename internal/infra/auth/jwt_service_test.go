package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parfum/config"
	"parfum/internal/domain/entity"
)

func newTestJWTService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, entity.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateToken(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := newTestJWTService(t)

	other := &config.Config{}
	other.SecretKey.Access = "another-secret"
	otherSvcRaw, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvcRaw.GenerateToken(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	svc := &jwtService{secret: cfg.SecretKey.Access, accessTTL: -time.Minute}

	token, err := svc.GenerateToken(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc := newTestJWTService(t)
	assert.Equal(t, time.Hour, svc.AccessTokenDuration())
}

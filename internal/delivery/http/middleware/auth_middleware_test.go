package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/service"
	mockSvc "parfum/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestAuthenticate_SetsIdentityOnContext(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.On("ValidateToken", "good-token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleAdmin}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c := newAuthTestContext(t, "Bearer good-token")

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, entity.RoleAdmin, c.Get(ContextKeyRole))
}

func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(tokenSvc *mockSvc.MockTokenService)
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic abc"},
		{
			name:   "invalid token",
			header: "Bearer bad-token",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.On("ValidateToken", "bad-token").Return(nil, errors.New("invalid or expired token"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			m := NewAuthMiddleware(tokenSvc)
			c := newAuthTestContext(t, tt.header)

			err := m.Authenticate(func(c echo.Context) error { return nil })(c)

			assertAppErrorCode(t, err, "UNAUTHORIZED")
		})
	}
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	next := func(c echo.Context) error { return nil }

	t.Run("matching role passes", func(t *testing.T) {
		c := newAuthTestContext(t, "")
		c.Set(ContextKeyRole, entity.RoleAdmin)

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		c := newAuthTestContext(t, "")
		c.Set(ContextKeyRole, entity.RoleUser)

		err := m.RequireRole(entity.RoleAdmin)(next)(c)

		assertAppErrorCode(t, err, "FORBIDDEN")
	})

	t.Run("missing role is forbidden", func(t *testing.T) {
		c := newAuthTestContext(t, "")

		err := m.RequireRole(entity.RoleAdmin)(next)(c)

		assertAppErrorCode(t, err, "FORBIDDEN")
	})
}

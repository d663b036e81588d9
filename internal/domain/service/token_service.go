package service

import (
	"time"

	"parfum/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the verified identity assertion carried by an access token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a user.
	GenerateToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken verifies a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}

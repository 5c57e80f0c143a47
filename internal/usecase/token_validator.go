package usecase

import (
	"resort-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// GuestIdentity is the session extracted from a validated token. Full name
// and email ride along in claims so booking writes need no user lookup.
type GuestIdentity struct {
	UserID   uuid.UUID
	FullName string
	Email    string
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (GuestIdentity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (GuestIdentity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return GuestIdentity{}, err
	}

	return GuestIdentity{
		UserID:   claims.UserID,
		FullName: claims.FullName,
		Email:    claims.Email,
	}, nil
}

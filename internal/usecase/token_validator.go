package usecase

import (
	"storefront-pricing/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Session is what an access token says about its bearer at issue time.
type Session struct {
	UserID   uuid.UUID
	IsMember bool
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Session, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Session, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Session{}, err
	}
	return Session{UserID: claims.UserID, IsMember: claims.IsMember}, nil
}

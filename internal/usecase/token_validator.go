package usecase

import (
	"storefront-payments/internal/pkg/jwt"
)

// TokenValidator resolves a session token to the customer email it was issued for.
type TokenValidator interface {
	ValidateToken(tokenString string) (string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Email == "" {
		return "", jwt.ErrInvalidToken
	}
	return claims.Email, nil
}

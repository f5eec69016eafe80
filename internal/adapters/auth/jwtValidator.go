package auth

import (
	"context"

	"orgboard/internal/core/errs"
	authPort "orgboard/internal/ports/auth"

	"github.com/dgrijalva/jwt-go"
)

// JWTValidator verifies HS256 tokens locally and returns the Subject claim
// as the subject UUID. Revoked tokens are rejected even while their
// signature is still valid.
type JWTValidator struct {
	jwtKey   []byte
	denylist authPort.TokenDenylist
}

func NewJWTValidator(jwtKey []byte, denylist authPort.TokenDenylist) *JWTValidator {
	return &JWTValidator{jwtKey: jwtKey, denylist: denylist}
}

func (v *JWTValidator) Validate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", errs.ErrInvalidToken
	}

	if v.denylist != nil {
		revoked, err := v.denylist.IsRevoked(ctx, token)
		if err != nil {
			return "", err
		}
		if revoked {
			return "", errs.ErrInvalidToken
		}
	}

	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return v.jwtKey, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", errs.ErrInvalidToken
	}

	return claims.Subject, nil
}

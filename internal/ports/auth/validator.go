package auth

import (
	"context"
	"time"
)

// TokenValidator resolves an opaque credential to the subject UUID it
// represents. Implementations return errs.ErrInvalidToken when the
// credential is missing, malformed, expired or revoked.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (string, error)
}

// TokenDenylist records revoked credentials until they would have expired
// on their own.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

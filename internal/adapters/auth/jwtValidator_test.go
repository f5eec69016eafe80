package auth

import (
	"context"
	"testing"
	"time"

	"orgboard/internal/core/errs"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type denylistStub struct {
	revoked map[string]bool
}

func (d *denylistStub) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	d.revoked[token] = true
	return nil
}

func (d *denylistStub) IsRevoked(ctx context.Context, token string) (bool, error) {
	return d.revoked[token], nil
}

func signToken(t *testing.T, key []byte, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := &jwt.StandardClaims{
		Subject:   subject,
		ExpiresAt: expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestJWTValidatorRoundTrip(t *testing.T) {
	key := []byte("test-secret")
	v := NewJWTValidator(key, &denylistStub{revoked: make(map[string]bool)})

	token := signToken(t, key, "subject-uuid-1", time.Now().Add(time.Hour))

	sub, err := v.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "subject-uuid-1", sub)
}

func TestJWTValidatorRejectsExpired(t *testing.T) {
	key := []byte("test-secret")
	v := NewJWTValidator(key, &denylistStub{revoked: make(map[string]bool)})

	token := signToken(t, key, "subject-uuid-1", time.Now().Add(-time.Hour))

	_, err := v.Validate(context.Background(), token)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestJWTValidatorRejectsWrongKey(t *testing.T) {
	v := NewJWTValidator([]byte("right-key"), &denylistStub{revoked: make(map[string]bool)})

	token := signToken(t, []byte("wrong-key"), "subject-uuid-1", time.Now().Add(time.Hour))

	_, err := v.Validate(context.Background(), token)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestJWTValidatorRejectsEmptyToken(t *testing.T) {
	v := NewJWTValidator([]byte("key"), &denylistStub{revoked: make(map[string]bool)})

	_, err := v.Validate(context.Background(), "")
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestJWTValidatorRejectsRevoked(t *testing.T) {
	key := []byte("test-secret")
	denylist := &denylistStub{revoked: make(map[string]bool)}
	v := NewJWTValidator(key, denylist)

	token := signToken(t, key, "subject-uuid-1", time.Now().Add(time.Hour))
	require.NoError(t, denylist.Revoke(context.Background(), token, time.Hour))

	_, err := v.Validate(context.Background(), token)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

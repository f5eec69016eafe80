package errs

import "errors"

// Error kinds surfaced by the core services. The router maps each kind to an
// HTTP status, so they must never be collapsed into a generic failure.
var (
	ErrUnauthenticated = errors.New("authentication failed")
	ErrUnauthorized    = errors.New("not the owner of this resource")
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrGroupNotFound   = errors.New("group not found")
	ErrUsernameTaken   = errors.New("username already taken")

	// ErrInvalidToken is returned by token validator adapters; the services
	// fold it into ErrUnauthenticated before it reaches a caller.
	ErrInvalidToken = errors.New("invalid or expired token")
)

package user

import (
	"context"

	"orgboard/internal/core/user"
)

type UserRepository interface {
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindBySubjectUUID(ctx context.Context, subjectUUID string) (*user.User, error)
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

package group

import (
	"context"

	"orgboard/internal/core/group"
)

type GroupRepository interface {
	Create(ctx context.Context, group *group.Group) (*group.Group, error)
	FindByID(ctx context.Context, id int64) (*group.Group, error)
	Update(ctx context.Context, group *group.Group) error
	Delete(ctx context.Context, group *group.Group) error
	ListAll(ctx context.Context) ([]*group.Group, error)
}

type GroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type GroupDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	IsMasterGroup bool   `json:"isMasterGroup"`
}

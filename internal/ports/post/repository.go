package post

import (
	"context"
	"strings"

	"orgboard/internal/core/post"
	userPort "orgboard/internal/ports/user"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortDirectionFrom is deliberately permissive: only a value textually
// denoting "descending" selects SortDesc, every other value (including
// unrecognized strings) falls back to SortAsc. Unrecognized input is never
// an error.
func SortDirectionFrom(s string) SortDirection {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desc", "descending":
		return SortDesc
	default:
		return SortAsc
	}
}

type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id int64) (*post.Post, error)
	Update(ctx context.Context, post *post.Post) error
	Delete(ctx context.Context, post *post.Post) error
	ListOrdered(ctx context.Context, dir SortDirection, page, size int) (*Page, error)
	SearchByTitleOrContent(ctx context.Context, keyword string) ([]*post.Post, error)
}

// Page is one bounded slice of the ordered scan plus the metadata needed to
// render pagination controls.
type Page struct {
	Posts         []*post.Post
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
}

type PostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type PostDTO struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	User      *userPort.UserDTO `json:"user"`
	CreatedAt string            `json:"createdAt"`
}

type PostListDTO struct {
	Posts         []*PostDTO `json:"posts"`
	Page          int        `json:"page"`
	Size          int        `json:"size"`
	TotalElements int64      `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
}

package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"orgboard/internal/core/errs"
	groupPort "orgboard/internal/ports/group"
	postPort "orgboard/internal/ports/post"
	userPort "orgboard/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// Inbound ports: the interfaces the controllers need from the use cases.
type UserUseCase interface {
	Register(ctx context.Context, username, name, password string) (*userPort.UserDTO, error)
	Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	Logout(ctx context.Context, token string) error
}

type PostUseCase interface {
	CreatePost(ctx context.Context, req postPort.PostRequest, token string) error
	UpdatePost(ctx context.Context, postID int64, req postPort.PostRequest, token string) error
	DeletePost(ctx context.Context, postID int64, token string) error
	GetPost(ctx context.Context, postID int64, token string) (*postPort.PostDTO, error)
	ListPosts(ctx context.Context, sort string, page, size int, token string) (*postPort.PostListDTO, error)
	SearchPosts(ctx context.Context, keyword, token string) ([]*postPort.PostDTO, error)
}

type GroupUseCase interface {
	CreateGroup(ctx context.Context, req groupPort.GroupRequest, token string) (*groupPort.GroupDTO, error)
	UpdateGroup(ctx context.Context, groupID int64, req groupPort.GroupRequest, token string) error
	GetGroup(ctx context.Context, groupID int64, token string) (*groupPort.GroupDTO, error)
	ListGroups(ctx context.Context, token string) ([]*groupPort.GroupDTO, error)
	DeleteGroup(ctx context.Context, groupID int64, token string) error
}

func SetupRoutes(userUC UserUseCase, postUC PostUseCase, groupUC GroupUseCase) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	gc := NewGroupController(groupUC)

	r.POST("/register", uc.Register)
	r.POST("/login", uc.Login)
	r.POST("/logout", uc.Logout)

	// The services authenticate the bearer credential themselves, so no
	// auth middleware sits in front of these routes.
	r.POST("/posts", pc.CreatePost)
	r.GET("/posts", pc.ListPosts)
	r.GET("/posts/search", pc.SearchPosts)
	r.GET("/posts/:id", pc.GetPost)
	r.PUT("/posts/:id", pc.UpdatePost)
	r.DELETE("/posts/:id", pc.DeletePost)

	r.POST("/groups", gc.CreateGroup)
	r.GET("/groups", gc.ListGroups)
	r.GET("/groups/:id", gc.GetGroup)
	r.PUT("/groups/:id", gc.UpdateGroup)
	r.DELETE("/groups/:id", gc.DeleteGroup)

	return r
}

// bearerToken pulls the credential out of the Authorization header. The
// empty string is passed through; the validator rejects it.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}

// respondError maps each error kind to its HTTP status.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrPostNotFound),
		errors.Is(err, errs.ErrGroupNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		// ErrUserNotFound lands here too: by the time a service surfaces
		// it, authentication already succeeded, so a missing owner row is
		// a data-consistency fault rather than a client error.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

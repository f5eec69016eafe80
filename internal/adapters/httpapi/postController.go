package httpapi

import (
	"net/http"
	"strconv"

	postPort "orgboard/internal/ports/post"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req postPort.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := ctl.pc.CreatePost(c.Request.Context(), req, bearerToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}
	var req postPort.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := ctl.pc.UpdatePost(c.Request.Context(), postID, req, bearerToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.pc.DeletePost(c.Request.Context(), postID, bearerToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *PostController) GetPost(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}
	res, err := ctl.pc.GetPost(c.Request.Context(), postID, bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) ListPosts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
		return
	}

	res, err := ctl.pc.ListPosts(c.Request.Context(), c.Query("sort"), page, size, bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) SearchPosts(c *gin.Context) {
	res, err := ctl.pc.SearchPosts(c.Request.Context(), c.Query("keyword"), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": res})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

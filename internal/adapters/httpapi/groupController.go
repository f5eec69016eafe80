package httpapi

import (
	"net/http"

	groupPort "orgboard/internal/ports/group"

	"github.com/gin-gonic/gin"
)

type GroupController struct{ gc GroupUseCase }

func NewGroupController(gc GroupUseCase) *GroupController { return &GroupController{gc: gc} }

func (ctl *GroupController) CreateGroup(c *gin.Context) {
	var req groupPort.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.gc.CreateGroup(c.Request.Context(), req, bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *GroupController) UpdateGroup(c *gin.Context) {
	groupID, ok := pathID(c)
	if !ok {
		return
	}
	var req groupPort.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := ctl.gc.UpdateGroup(c.Request.Context(), groupID, req, bearerToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *GroupController) GetGroup(c *gin.Context) {
	groupID, ok := pathID(c)
	if !ok {
		return
	}
	res, err := ctl.gc.GetGroup(c.Request.Context(), groupID, bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *GroupController) ListGroups(c *gin.Context) {
	res, err := ctl.gc.ListGroups(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": res})
}

func (ctl *GroupController) DeleteGroup(c *gin.Context) {
	groupID, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.gc.DeleteGroup(c.Request.Context(), groupID, bearerToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

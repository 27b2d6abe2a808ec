package handler

import (
	"net/http"
	"strconv"

	"CampusVault/internal/dto"
	"CampusVault/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler serves group creation and listing.
type GroupHandler struct {
	groups *service.GroupService
}

// NewGroupHandler creates a group handler.
func NewGroupHandler(groups *service.GroupService) *GroupHandler {
	return &GroupHandler{groups: groups}
}

func toGroupResponse(info *service.GroupInfo) dto.GroupResponse {
	return dto.GroupResponse{
		ID:          info.Group.ID,
		Name:        info.Group.Name,
		Description: info.Group.Description,
		Category:    info.Group.Category,
		CreatedBy:   info.CreatorName,
		MemberCount: info.MemberCount,
		CreatedAt:   info.Group.CreatedAt,
	}
}

// Create makes a group owned by the caller.
func (h *GroupHandler) Create(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	group, err := h.groups.Create(c.Request.Context(), &req, actorID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Group created",
		"group": gin.H{
			"id":   group.ID,
			"name": group.Name,
		},
	})
}

// List returns all groups.
func (h *GroupHandler) List(c *gin.Context) {
	infos, err := h.groups.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]dto.GroupResponse, 0, len(infos))
	for i := range infos {
		out = append(out, toGroupResponse(&infos[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns one group.
func (h *GroupHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}
	info, err := h.groups.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGroupResponse(info))
}

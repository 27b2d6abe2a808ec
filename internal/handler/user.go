package handler

import (
	"net/http"

	"CampusVault/internal/dto"
	"CampusVault/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the user directory.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a user handler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List returns every registered user.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]dto.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, userSummary(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

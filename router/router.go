package router

import (
	"CampusVault/config"
	"CampusVault/internal/handler"
	"CampusVault/utils"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth      *handler.AuthHandler
	Users     *handler.UserHandler
	Resources *handler.ResourceHandler
	Groups    *handler.GroupHandler
	Messages  *handler.MessageHandler
}

// InitRouter builds API routes.
func InitRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(utils.CORSMiddleware())

	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/refresh", h.Auth.Refresh)

		auth := api.Group("")
		auth.Use(utils.AuthMiddleware(cfg.JWTSecret))

		auth.GET("/auth/me", h.Auth.Me)
		auth.GET("/users", h.Users.List)

		auth.GET("/resources", h.Resources.List)
		auth.POST("/resources", h.Resources.Upload)
		auth.GET("/resources/:id", h.Resources.Get)
		auth.PATCH("/resources/:id", h.Resources.Update)
		auth.DELETE("/resources/:id", h.Resources.Delete)
		auth.GET("/uploads/:filename", h.Resources.Download)

		auth.POST("/groups", h.Groups.Create)
		auth.GET("/groups", h.Groups.List)
		auth.GET("/groups/:id", h.Groups.Get)

		auth.POST("/messages", h.Messages.Send)
		auth.GET("/messages", h.Messages.List)

		auth.POST("/direct-messages", h.Messages.SendDirect)
		auth.GET("/direct-messages", h.Messages.ListDirect)
	}
	return r
}

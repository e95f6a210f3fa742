// internal/app/router.go
package app

import (
	adminHandler "cms-service/internal/handlers/admin"
	authHandler "cms-service/internal/handlers/auth"
	postHandler "cms-service/internal/handlers/post"
	"cms-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	AdminHandler   *adminHandler.AdminHandler
	PostHandler    *postHandler.PostHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	// ==================== Public ====================
	r.GET("/", h.PostHandler.Home)
	r.GET("/posts/:slug", h.PostHandler.Show)
	r.GET("/login", h.AuthHandler.ShowLogin)
	r.POST("/login", h.AuthHandler.Login)
	r.GET("/logout", h.AuthHandler.Logout)

	// ==================== Admin ====================
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware.RequireAdmin())
	{
		admin.GET("", h.AdminHandler.Welcome)
		admin.GET("/posts", h.PostHandler.List)
		admin.GET("/posts/new", h.PostHandler.NewForm)
		admin.POST("/posts", h.PostHandler.Create)
		admin.GET("/posts/:id", h.PostHandler.EditForm)
		admin.POST("/posts/:id", h.PostHandler.Update)
	}
}

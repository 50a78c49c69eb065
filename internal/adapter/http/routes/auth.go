package routes

import (
	"cablequote/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, h Handlers) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", middleware.Auth(h.Sessions), h.Auth.Logout)
		auth.GET("/me", middleware.Auth(h.Sessions), h.Auth.Me)
	}
}

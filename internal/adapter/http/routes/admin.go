package routes

import (
	"cablequote/internal/adapter/http/handlers"
	"cablequote/internal/adapter/http/middleware"
	"cablequote/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin, middleware.RequireFeature(entities.FeatureAdminPanel))
	{
		admin.GET("/approvals", h.ListApprovals)
		admin.POST("/approvals/:id/approve", h.Approve)
		admin.POST("/approvals/:id/reject", h.Reject)

		admin.GET("/metal-prices", h.MetalPrices)
		admin.PUT("/metal-prices", h.UpdateMetalPrices)
	}
}

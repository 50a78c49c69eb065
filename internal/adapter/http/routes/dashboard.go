package routes

import (
	"cablequote/internal/adapter/http/handlers"
	"cablequote/internal/adapter/http/middleware"
	"cablequote/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathDashboard = "/dashboard"

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard, middleware.RequireFeature(entities.FeatureDashboard))
	{
		dashboard.GET("", h.Report)
		dashboard.GET("/export", h.Export)
	}
}

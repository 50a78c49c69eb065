package routes

import (
	"cablequote/internal/adapter/http/handlers"
	"cablequote/internal/adapter/http/middleware"
	"cablequote/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts  = "/products"
	PathCustomers = "/customers"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	products := rg.Group(PathProducts, middleware.RequireFeature(entities.FeatureCatalog))
	{
		products.GET("", h.ListProducts)
		products.GET("/categories", h.Categories)
		products.GET("/export", h.ExportProducts)
		products.GET("/:id", h.GetProduct)
	}

	customers := rg.Group(PathCustomers, middleware.RequireFeature(entities.FeatureCustomers))
	{
		customers.GET("", h.ListCustomers)
		customers.GET("/tiers", h.Tiers)
		customers.GET("/export", h.ExportCustomers)
		customers.GET("/:id", h.GetCustomer)
	}
}

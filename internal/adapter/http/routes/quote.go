package routes

import (
	"cablequote/internal/adapter/http/handlers"
	"cablequote/internal/adapter/http/middleware"
	"cablequote/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathQuote = "/quote"

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quote := rg.Group(PathQuote, middleware.RequireFeature(entities.FeatureQuoteBuilder))
	{
		quote.GET("", h.Current)
		quote.PUT("/customer", h.SelectCustomer)
		quote.PUT("/project", h.SetProject)

		quote.POST("/items", h.AddItem)
		quote.PATCH("/items/:product_id", h.UpdateQuantity)
		quote.DELETE("/items/:product_id", h.RemoveItem)

		quote.POST("/next", h.Next)
		quote.POST("/back", h.Back)
		quote.GET("/pricing", h.Pricing)

		quote.POST("/export", h.Export)
		quote.POST("/approval", middleware.RequireFeature(entities.FeatureRequestApproval), h.RequestApproval)
		quote.POST("/complete", h.Complete)
		quote.POST("/reset", h.Reset)
	}
}

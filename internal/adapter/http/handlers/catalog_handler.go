package handlers

import (
	"net/http"

	response "cablequote/internal/adapter/http/dto/response"
	"cablequote/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the product catalog and the customer directory.
type CatalogHandler struct {
	catalog usecase.ICatalogUseCase
	export  usecase.IExportUseCase
}

func NewCatalogHandler(catalog usecase.ICatalogUseCase, export usecase.IExportUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, export: export}
}

func productFilter(c *gin.Context) usecase.ProductFilter {
	return usecase.ProductFilter{Search: c.Query("search"), Category: c.Query("category")}
}

func customerFilter(c *gin.Context) usecase.CustomerFilter {
	return usecase.CustomerFilter{Search: c.Query("search"), Tier: c.Query("tier")}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context(), productFilter(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

func (h *CatalogHandler) ExportProducts(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	format, ok := parseFormat(c)
	if !ok {
		return
	}
	serveExport(c, h.export.ExportProducts(c.Request.Context(), s, format, productFilter(c)))
}

func (h *CatalogHandler) ListCustomers(c *gin.Context) {
	customers, err := h.catalog.ListCustomers(c.Request.Context(), customerFilter(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

// Tiers returns the customer count per pricing tier.
func (h *CatalogHandler) Tiers(c *gin.Context) {
	counts, err := h.catalog.TierSummary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTierCounts(counts))
}

func (h *CatalogHandler) GetCustomer(c *gin.Context) {
	cu, err := h.catalog.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(cu))
}

func (h *CatalogHandler) ExportCustomers(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	format, ok := parseFormat(c)
	if !ok {
		return
	}
	serveExport(c, h.export.ExportCustomers(c.Request.Context(), s, format, customerFilter(c)))
}

package handlers

import (
	"context"
	"net/http"

	request "cablequote/internal/adapter/http/dto/request"
	response "cablequote/internal/adapter/http/dto/response"
	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin panel. Routes are gated on the admin_panel
// feature by the router.
type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

func (h *AdminHandler) ListApprovals(c *gin.Context) {
	list, err := h.usecase.ListApprovals(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApprovals(list))
}

func (h *AdminHandler) Approve(c *gin.Context) {
	h.decide(c, h.usecase.Approve)
}

func (h *AdminHandler) Reject(c *gin.Context) {
	h.decide(c, h.usecase.Reject)
}

func (h *AdminHandler) decide(c *gin.Context, decide func(ctx context.Context, id, decidedBy string) (entities.ApprovalRequest, error)) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	a, err := decide(c.Request.Context(), c.Param("id"), s.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApproval(a))
}

func (h *AdminHandler) MetalPrices(c *gin.Context) {
	p, err := h.usecase.MetalPrices(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMetalPrices(p))
}

func (h *AdminHandler) UpdateMetalPrices(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	var payload request.MetalPricesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	p, err := h.usecase.UpdateMetalPrices(c.Request.Context(), payload.CopperPerLb, payload.AluminumPerLb, s.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMetalPrices(p))
}

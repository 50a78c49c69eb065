package handlers

import (
	"net/http"

	response "cablequote/internal/adapter/http/dto/response"
	"cablequote/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard usecase.IDashboardUseCase
	export    usecase.IExportUseCase
}

func NewDashboardHandler(dashboard usecase.IDashboardUseCase, export usecase.IExportUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, export: export}
}

func (h *DashboardHandler) Report(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	rep, err := h.dashboard.Report(c.Request.Context(), s.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(rep))
}

func (h *DashboardHandler) Export(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	format, ok := parseFormat(c)
	if !ok {
		return
	}
	serveExport(c, h.export.ExportDashboard(c.Request.Context(), s, format))
}

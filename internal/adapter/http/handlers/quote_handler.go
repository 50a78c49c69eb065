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

// QuoteHandler drives the four-step quote wizard of the calling session.
type QuoteHandler struct {
	quotes usecase.IQuoteUseCase
	export usecase.IExportUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, export usecase.IExportUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, export: export}
}

func (h *QuoteHandler) Current(c *gin.Context) {
	h.draft(c, h.quotes.Current)
}

func (h *QuoteHandler) SelectCustomer(c *gin.Context) {
	var payload request.SelectCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.draft(c, func(ctx context.Context, token string) (entities.QuoteDraft, error) {
		return h.quotes.SelectCustomer(ctx, token, payload.CustomerID)
	})
}

func (h *QuoteHandler) SetProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.draft(c, func(ctx context.Context, token string) (entities.QuoteDraft, error) {
		return h.quotes.SetProject(ctx, token, payload.ProjectName, payload.Notes)
	})
}

func (h *QuoteHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.draft(c, func(ctx context.Context, token string) (entities.QuoteDraft, error) {
		return h.quotes.AddItem(ctx, token, payload.ProductID, payload.ResolveQuantity())
	})
}

func (h *QuoteHandler) UpdateQuantity(c *gin.Context) {
	var payload request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	productID := c.Param("product_id")
	h.draft(c, func(ctx context.Context, token string) (entities.QuoteDraft, error) {
		return h.quotes.UpdateQuantity(ctx, token, productID, *payload.Quantity)
	})
}

func (h *QuoteHandler) RemoveItem(c *gin.Context) {
	productID := c.Param("product_id")
	h.draft(c, func(ctx context.Context, token string) (entities.QuoteDraft, error) {
		return h.quotes.RemoveItem(ctx, token, productID)
	})
}

func (h *QuoteHandler) Next(c *gin.Context) {
	h.draft(c, h.quotes.Next)
}

func (h *QuoteHandler) Back(c *gin.Context) {
	h.draft(c, h.quotes.Back)
}

// Pricing prices the current draft. It works at any step once a customer
// is selected.
func (h *QuoteHandler) Pricing(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	q, err := h.quotes.Price(c.Request.Context(), s.Token)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPricedQuote(q))
}

// Export renders the finished quote. The draft is left as is, so a failed
// export can be retried.
func (h *QuoteHandler) Export(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	format, ok := parseFormat(c)
	if !ok {
		return
	}
	serveExport(c, h.export.ExportQuote(c.Request.Context(), s, format))
}

func (h *QuoteHandler) RequestApproval(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	a, err := h.quotes.RequestApproval(c.Request.Context(), s.Token)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromApproval(a))
}

func (h *QuoteHandler) Complete(c *gin.Context) {
	h.draft(c, h.quotes.Complete)
}

func (h *QuoteHandler) Reset(c *gin.Context) {
	h.draft(c, h.quotes.Reset)
}

func (h *QuoteHandler) draft(c *gin.Context, op func(ctx context.Context, token string) (entities.QuoteDraft, error)) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	d, err := op(c.Request.Context(), s.Token)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

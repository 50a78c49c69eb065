package handlers

import (
	"context"
	"errors"
	"net/http"

	"cablequote/internal/domain/entities"
	"cablequote/internal/domain/pricing"
	"cablequote/internal/usecase"
	"cablequote/pkg"
	logx "cablequote/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errNoSession      = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or expired session", http.StatusUnauthorized)
)

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logx.Error().Err(err).Str("code", appErr.Code).Str("path", c.FullPath()).Msg("[http][handler] request failed")
	}
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return errNoSession
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Your role cannot perform this action", http.StatusForbidden)

	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApprovalNotFound):
		return pkg.NewDomainErrorSimple("APPROVAL_NOT_FOUND", "Approval request not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrItemNotInQuote):
		return pkg.NewDomainErrorSimple("ITEM_NOT_IN_QUOTE", "Item not in quote", http.StatusNotFound)

	case errors.Is(err, entities.ErrStepIncomplete):
		return pkg.NewDomainErrorSimple("STEP_INCOMPLETE", "Complete the current step before continuing", http.StatusConflict)
	case errors.Is(err, entities.ErrStepLocked):
		return pkg.NewDomainErrorSimple("STEP_LOCKED", "Operation not allowed at the current step", http.StatusConflict)
	case errors.Is(err, entities.ErrAlreadyLastStep), errors.Is(err, entities.ErrAlreadyFirstStep):
		return pkg.NewDomainErrorSimple("STEP_OUT_OF_RANGE", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrCustomerNotSelected):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_SELECTED", "Select a customer first", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteEmpty):
		return pkg.NewDomainErrorSimple("QUOTE_EMPTY", "Quote has no items", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotReady):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_READY", "Quote is not at the generate step", http.StatusConflict)
	case errors.Is(err, usecase.ErrApprovalAlreadyDecided):
		return pkg.NewDomainErrorSimple("APPROVAL_ALREADY_DECIDED", "Approval request already decided", http.StatusConflict)

	case errors.Is(err, entities.ErrInvalidQuantity), errors.Is(err, pricing.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be positive", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnsupportedFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FORMAT", "Format must be pdf or xlsx", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, entities.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidApprovalID),
		errors.Is(err, usecase.ErrInvalidApprovalStatus),
		errors.Is(err, usecase.ErrInvalidMetalPrice),
		errors.Is(err, pricing.ErrInvalidDiscount),
		errors.Is(err, pricing.ErrInvalidPrice):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)

	case errors.Is(err, usecase.ErrExportFailed):
		return pkg.NewDomainError("EXPORT_FAILED", "Document export failed, please retry", err, http.StatusInternalServerError)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("REQUEST_CANCELLED", "Request cancelled", err, http.StatusRequestTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"cablequote/internal/domain/entities"
	"cablequote/internal/domain/pricing"
	"cablequote/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{usecase.ErrInvalidCredentials, "INVALID_CREDENTIALS", http.StatusUnauthorized},
		{usecase.ErrSessionNotFound, "UNAUTHORIZED", http.StatusUnauthorized},
		{usecase.ErrForbidden, "FORBIDDEN", http.StatusForbidden},
		{fmt.Errorf("load: %w", usecase.ErrProductNotFound), "PRODUCT_NOT_FOUND", http.StatusNotFound},
		{entities.ErrItemNotInQuote, "ITEM_NOT_IN_QUOTE", http.StatusNotFound},
		{entities.ErrAlreadyLastStep, "STEP_OUT_OF_RANGE", http.StatusConflict},
		{usecase.ErrQuoteNotReady, "QUOTE_NOT_READY", http.StatusConflict},
		{pricing.ErrInvalidQuantity, "INVALID_QUANTITY", http.StatusBadRequest},
		{pricing.ErrInvalidDiscount, "INVALID_REQUEST", http.StatusBadRequest},
		{entities.ErrUnsupportedFormat, "UNSUPPORTED_FORMAT", http.StatusBadRequest},
		{fmt.Errorf("%w: write: no space left", usecase.ErrExportFailed), "EXPORT_FAILED", http.StatusInternalServerError},
		{context.Canceled, "REQUEST_CANCELLED", http.StatusRequestTimeout},
		{errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			got := mapError(tc.err)
			if got.Code != tc.code || got.HTTPStatus != tc.status {
				t.Fatalf("mapError(%v) = %s/%d, want %s/%d", tc.err, got.Code, got.HTTPStatus, tc.code, tc.status)
			}
		})
	}
}

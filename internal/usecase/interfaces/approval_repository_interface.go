package interfaces

import (
	"context"
	"time"

	"cablequote/internal/domain/entities"
)

// IApprovalRepository persists quote approval requests.
//
// An empty status passed to List means every status. UpdateStatus only
// transitions pending requests and returns a zero ApprovalRequest when the
// id is unknown or already decided.

type IApprovalRepository interface {
	Create(ctx context.Context, a entities.ApprovalRequest) (entities.ApprovalRequest, error)
	GetByID(ctx context.Context, id string) (entities.ApprovalRequest, error)
	List(ctx context.Context, status entities.ApprovalStatus) ([]entities.ApprovalRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.ApprovalStatus, decidedBy string, at time.Time) (entities.ApprovalRequest, error)
}

type IMetalPriceRepository interface {
	Get(ctx context.Context) (entities.MetalPrices, error)
	Save(ctx context.Context, p entities.MetalPrices) (entities.MetalPrices, error)
}

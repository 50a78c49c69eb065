package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase/interfaces"
	logx "cablequote/pkg/logger"
	"cablequote/pkg/money"
)

var (
	ErrApprovalNotFound       = errors.New("approval request not found")
	ErrApprovalAlreadyDecided = errors.New("approval request already decided")
	ErrInvalidApprovalID      = errors.New("invalid approval id")
	ErrInvalidApprovalStatus  = errors.New("invalid approval status")
	ErrInvalidMetalPrice      = errors.New("metal prices must be positive")
)

// IAdminUseCase covers the admin panel: quote approvals and the daily metal
// price reference.
type IAdminUseCase interface {
	ListApprovals(ctx context.Context, status string) ([]entities.ApprovalRequest, error)
	Approve(ctx context.Context, id, decidedBy string) (entities.ApprovalRequest, error)
	Reject(ctx context.Context, id, decidedBy string) (entities.ApprovalRequest, error)
	MetalPrices(ctx context.Context) (entities.MetalPrices, error)
	UpdateMetalPrices(ctx context.Context, copper, aluminum float64, updatedBy string) (entities.MetalPrices, error)
}

type AdminUseCase struct {
	approvals interfaces.IApprovalRepository
	metals    interfaces.IMetalPriceRepository
	now       func() time.Time
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(approvals interfaces.IApprovalRepository, metals interfaces.IMetalPriceRepository) *AdminUseCase {
	return &AdminUseCase{
		approvals: approvals,
		metals:    metals,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ListApprovals accepts "" or "all" for every status.
func (u *AdminUseCase) ListApprovals(ctx context.Context, status string) ([]entities.ApprovalRequest, error) {
	st := entities.ApprovalStatus(strings.ToLower(strings.TrimSpace(status)))
	if st == filterAll {
		st = ""
	}
	if st != "" && !st.Valid() {
		return nil, ErrInvalidApprovalStatus
	}
	return u.approvals.List(ctx, st)
}

func (u *AdminUseCase) Approve(ctx context.Context, id, decidedBy string) (entities.ApprovalRequest, error) {
	return u.decide(ctx, id, entities.ApprovalStatusApproved, decidedBy)
}

func (u *AdminUseCase) Reject(ctx context.Context, id, decidedBy string) (entities.ApprovalRequest, error) {
	return u.decide(ctx, id, entities.ApprovalStatusRejected, decidedBy)
}

func (u *AdminUseCase) decide(ctx context.Context, id string, status entities.ApprovalStatus, decidedBy string) (entities.ApprovalRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ApprovalRequest{}, ErrInvalidApprovalID
	}

	current, err := u.approvals.GetByID(ctx, id)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if current.ID == "" {
		return entities.ApprovalRequest{}, ErrApprovalNotFound
	}
	if current.Status != entities.ApprovalStatusPending {
		return entities.ApprovalRequest{}, ErrApprovalAlreadyDecided
	}

	updated, err := u.approvals.UpdateStatus(ctx, id, status, decidedBy, u.now())
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	// Decided concurrently between the read and the conditional update.
	if updated.ID == "" {
		return entities.ApprovalRequest{}, ErrApprovalAlreadyDecided
	}

	logx.Info().Str("approval_id", id).Str("status", string(status)).Str("decided_by", decidedBy).Msg("[admin][usecase] approval decided")
	return updated, nil
}

func (u *AdminUseCase) MetalPrices(ctx context.Context) (entities.MetalPrices, error) {
	return u.metals.Get(ctx)
}

func (u *AdminUseCase) UpdateMetalPrices(ctx context.Context, copper, aluminum float64, updatedBy string) (entities.MetalPrices, error) {
	if copper <= 0 || aluminum <= 0 {
		return entities.MetalPrices{}, ErrInvalidMetalPrice
	}

	p := entities.MetalPrices{
		CopperPerLb:   money.Round2(copper),
		AluminumPerLb: money.Round2(aluminum),
		UpdatedBy:     updatedBy,
		UpdatedAt:     u.now(),
	}
	saved, err := u.metals.Save(ctx, p)
	if err != nil {
		return entities.MetalPrices{}, err
	}

	logx.Info().Float64("copper", saved.CopperPerLb).Float64("aluminum", saved.AluminumPerLb).Str("updated_by", updatedBy).Msg("[admin][usecase] metal prices updated")
	return saved, nil
}

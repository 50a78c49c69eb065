package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase/interfaces"
)

type ApprovalRepository struct {
	mu   sync.RWMutex
	byID map[string]entities.ApprovalRequest
}

var _ interfaces.IApprovalRepository = (*ApprovalRepository)(nil)

func NewApprovalRepository(seed []entities.ApprovalRequest) *ApprovalRepository {
	r := &ApprovalRepository{byID: make(map[string]entities.ApprovalRequest, len(seed))}
	for _, a := range seed {
		r.byID[a.ID] = a
	}
	return r
}

func (r *ApprovalRepository) Create(_ context.Context, a entities.ApprovalRequest) (entities.ApprovalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[a.ID]; ok {
		return entities.ApprovalRequest{}, fmt.Errorf("approval %s already exists", a.ID)
	}
	r.byID[a.ID] = a
	return a, nil
}

func (r *ApprovalRepository) GetByID(_ context.Context, id string) (entities.ApprovalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// List returns the newest requests first.
func (r *ApprovalRepository) List(_ context.Context, status entities.ApprovalStatus) ([]entities.ApprovalRequest, error) {
	r.mu.RLock()
	out := make([]entities.ApprovalRequest, 0, len(r.byID))
	for _, a := range r.byID {
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ApprovalRepository) UpdateStatus(_ context.Context, id string, status entities.ApprovalStatus, decidedBy string, at time.Time) (entities.ApprovalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok || a.Status != entities.ApprovalStatusPending {
		return entities.ApprovalRequest{}, nil
	}
	a.Status = status
	a.DecidedBy = decidedBy
	a.UpdatedAt = at
	r.byID[id] = a
	return a, nil
}

type MetalPriceRepository struct {
	mu     sync.RWMutex
	prices entities.MetalPrices
}

var _ interfaces.IMetalPriceRepository = (*MetalPriceRepository)(nil)

func NewMetalPriceRepository(initial entities.MetalPrices) *MetalPriceRepository {
	return &MetalPriceRepository{prices: initial}
}

func (r *MetalPriceRepository) Get(_ context.Context) (entities.MetalPrices, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prices, nil
}

func (r *MetalPriceRepository) Save(_ context.Context, p entities.MetalPrices) (entities.MetalPrices, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prices = p
	return p, nil
}

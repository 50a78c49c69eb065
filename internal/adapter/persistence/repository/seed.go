package repository

import (
	"context"
	"errors"
	"fmt"

	"cablequote/internal/adapter/persistence/seed"
	logx "cablequote/pkg/logger"
)

// Seed writes the reference catalog, directory and sample approvals.
// Items that already exist are left untouched, so it is safe to run on
// every start.
func Seed(
	ctx context.Context,
	products *ProductDynamoRepository,
	customers *CustomerDynamoRepository,
	approvals *ApprovalDynamoRepository,
) error {
	var written int
	for _, p := range seed.Products() {
		ok, err := products.Put(ctx, p)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.ID, err)
		}
		if ok {
			written++
		}
	}
	for _, c := range seed.Customers() {
		ok, err := customers.Put(ctx, c)
		if err != nil {
			return fmt.Errorf("seed customer %s: %w", c.ID, err)
		}
		if ok {
			written++
		}
	}
	for _, a := range seed.Approvals() {
		_, err := approvals.Create(ctx, a)
		if errors.Is(err, ErrApprovalExists) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed approval %s: %w", a.ID, err)
		}
		written++
	}

	logx.Info().Int("written", written).Msg("[seed][dynamodb] reference data seeded")
	return nil
}

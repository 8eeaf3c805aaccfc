package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ghuser/stockroom/pkg/auth"
	productdomain "github.com/ghuser/stockroom/services/product/domain"
)

// BulkDeleter is the bulk-delete coordinator. Unlike the Importer it fans
// requests out concurrently and reports fail-together: one aggregate error
// when any delete rejects, no partial-success accounting. Callers keep their
// selection on failure so the user can retry.
type BulkDeleter struct {
	svc *ProductService
}

// NewBulkDeleter returns a BulkDeleter that deletes through svc.
func NewBulkDeleter(svc *ProductService) *BulkDeleter {
	return &BulkDeleter{svc: svc}
}

// Delete issues one delete per id, all dispatched concurrently, and waits
// for every one to settle. No ordering guarantee exists among the deletes;
// the only guarantee is that Delete does not return before all have
// finished. If any fails, the first error observed is returned and the
// whole operation counts as failed.
func (b *BulkDeleter) Delete(ctx context.Context, actor auth.Actor, ids []uuid.UUID) error {
	if !actor.IsAdmin() {
		return productdomain.ErrPermissionDenied
	}
	if len(ids) == 0 {
		return nil
	}

	// Plain errgroup (no derived context): a sibling failure must not cancel
	// in-flight deletes, since the caller re-fetches afterwards either way.
	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			return b.svc.Delete(ctx, actor, id)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("bulk delete: %w", err)
	}
	return nil
}

package inventory

import (
	"context"
	"fmt"

	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/internal/resolver"
	"github.com/vrusch/ModSkl/pkg/ctxutil"
)

// ResolveDraft runs the pure resolver over fresh snapshots of the
// shared catalog and the warehouse's own records. Called on every
// keystroke of the add/edit form's brand and code fields.
func (s *Service) ResolveDraft(ctx context.Context, input ResolveInput) (resolver.Result, error) {
	warehouseID, ok := ctxutil.WarehouseIDFromCtx(ctx)
	if !ok {
		return resolver.Result{}, domain.ErrUnauthorized
	}

	// An unresolvable code needs no snapshots at all.
	if domain.CleanCode(input.Code) == "" {
		return resolver.Resolve(resolver.Input{
			Brand:     input.Brand,
			Code:      input.Code,
			Editing:   input.Editing,
			Prefilled: input.Prefilled,
		}), nil
	}

	catalog, err := s.catalog.List(ctx, s.catalogLimit)
	if err != nil {
		return resolver.Result{}, fmt.Errorf("list catalog: %w", err)
	}

	records, err := s.paints.ListAll(ctx, warehouseID, s.cfg.MaxRecordsPerWarehouse)
	if err != nil {
		return resolver.Result{}, fmt.Errorf("list paints: %w", err)
	}

	return resolver.Resolve(resolver.Input{
		Brand:     input.Brand,
		Code:      input.Code,
		Catalog:   catalog,
		Records:   records,
		Editing:   input.Editing,
		Prefilled: input.Prefilled,
	}), nil
}

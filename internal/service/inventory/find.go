package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vrusch/ModSkl/internal/adapter/postgres/paint"
	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/pkg/ctxutil"
)

// Find returns the warehouse's paints matching the filter plus the
// total count ignoring pagination.
func (s *Service) Find(ctx context.Context, input FindInput) ([]domain.Paint, int, error) {
	warehouseID, ok := ctxutil.WarehouseIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	paints, total, err := s.paints.List(ctx, warehouseID, paint.Filter{
		Search:    input.Search,
		Status:    input.Status,
		Type:      input.Type,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list paints: %w", err)
	}

	return paints, total, nil
}

// Get returns one paint by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Paint, error) {
	warehouseID, ok := ctxutil.WarehouseIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	p, err := s.paints.GetByID(ctx, warehouseID, id)
	if err != nil {
		return nil, fmt.Errorf("get paint: %w", err)
	}
	return p, nil
}

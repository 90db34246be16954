package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/internal/resolver"
	"github.com/vrusch/ModSkl/pkg/ctxutil"
)

// ToggleStatus flips a paint between the shelf and the shopping list.
// The target bucket must not already hold the same brand+code identity.
func (s *Service) ToggleStatus(ctx context.Context, id uuid.UUID) (*domain.Paint, error) {
	warehouseID, ok := ctxutil.WarehouseIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	existing, err := s.paints.GetByID(ctx, warehouseID, id)
	if err != nil {
		return nil, fmt.Errorf("get paint: %w", err)
	}

	target := domain.StatusOwned
	if existing.Status == domain.StatusOwned {
		target = domain.StatusWantToBuy
	}

	records, err := s.paints.ListAll(ctx, warehouseID, s.cfg.MaxRecordsPerWarehouse)
	if err != nil {
		return nil, fmt.Errorf("list paints: %w", err)
	}

	dup := resolver.CheckDuplicate(resolver.DuplicateInput{
		Brand:     existing.Brand,
		Code:      existing.Code,
		Status:    target,
		ExcludeID: existing.ID,
		Records:   records,
	})
	if dup.IsDuplicate {
		return nil, &domain.DuplicateError{
			ConflictingID:   dup.ConflictingID.String(),
			ConflictingCode: dup.ConflictingCode,
		}
	}

	updated, err := s.paints.UpdateStatus(ctx, warehouseID, id, target)
	if err != nil {
		return nil, fmt.Errorf("update paint status: %w", err)
	}

	s.publishEvent(warehouseID, domain.ChangeActionUpdate)

	s.log.InfoContext(ctx, "paint status toggled",
		slog.String("warehouse_id", warehouseID),
		slog.String("paint_id", id.String()),
		slog.String("status", target.String()),
	)

	return updated, nil
}

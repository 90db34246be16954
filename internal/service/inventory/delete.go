package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/pkg/ctxutil"
)

// Delete removes a paint from the warehouse. Hard delete; there is no
// soft-delete or merge in this model.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	warehouseID, ok := ctxutil.WarehouseIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.paints.Delete(ctx, warehouseID, id); err != nil {
		return fmt.Errorf("delete paint: %w", err)
	}

	s.publishEvent(warehouseID, domain.ChangeActionDelete)

	s.log.InfoContext(ctx, "paint deleted",
		slog.String("warehouse_id", warehouseID),
		slog.String("paint_id", id.String()),
	)

	return nil
}

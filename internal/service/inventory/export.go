package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/pkg/ctxutil"
)

// Export returns the warehouse's full inventory, newest first, for a
// JSON backup download.
func (s *Service) Export(ctx context.Context) ([]domain.Paint, error) {
	warehouseID, ok := ctxutil.WarehouseIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	paints, err := s.paints.ListAll(ctx, warehouseID, s.cfg.ExportMaxRecords)
	if err != nil {
		return nil, fmt.Errorf("list paints: %w", err)
	}
	return paints, nil
}

// ShoppingList renders the want-to-buy bucket as a plain-text checklist,
// one "[ ] Brand Code - Name" line per paint.
func (s *Service) ShoppingList(ctx context.Context) (string, error) {
	warehouseID, ok := ctxutil.WarehouseIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	paints, err := s.paints.ListAll(ctx, warehouseID, s.cfg.ExportMaxRecords)
	if err != nil {
		return "", fmt.Errorf("list paints: %w", err)
	}

	var b strings.Builder
	for _, p := range paints {
		if p.Status != domain.StatusWantToBuy {
			continue
		}
		b.WriteString("[ ] ")
		b.WriteString(p.Brand)
		b.WriteString(" ")
		b.WriteString(p.Code)
		if p.Name != "" {
			b.WriteString(" - ")
			b.WriteString(p.Name)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/internal/resolver"
	"github.com/vrusch/ModSkl/pkg/ctxutil"
)

// Save creates a new paint or updates an existing one. The duplicate
// invariant (one record per brand+code identity per status bucket) is
// checked here against a fresh snapshot before any write. After a
// successful write the record is offered to the shared catalog.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.Paint, error) {
	warehouseID, ok := ctxutil.WarehouseIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	brand := domain.TitleCase(strings.TrimSpace(input.Brand))
	code := strings.TrimSpace(input.Code)
	name := domain.TitleCase(strings.TrimSpace(input.Name))
	paintType := strings.TrimSpace(input.Type)

	records, err := s.paints.ListAll(ctx, warehouseID, s.cfg.MaxRecordsPerWarehouse)
	if err != nil {
		return nil, fmt.Errorf("list paints: %w", err)
	}

	dup := resolver.CheckDuplicate(resolver.DuplicateInput{
		Brand:     brand,
		Code:      code,
		Status:    input.Status,
		ExcludeID: input.ID,
		Records:   records,
	})
	if dup.IsDuplicate {
		return nil, &domain.DuplicateError{
			ConflictingID:   dup.ConflictingID.String(),
			ConflictingCode: dup.ConflictingCode,
		}
	}

	var saved *domain.Paint
	var action domain.ChangeAction

	if input.ID == uuid.Nil {
		if len(records) >= s.cfg.MaxRecordsPerWarehouse {
			return nil, domain.NewValidationError("warehouse", "record limit reached")
		}

		now := time.Now().UTC()
		saved, err = s.paints.Create(ctx, &domain.Paint{
			ID:          uuid.New(),
			WarehouseID: warehouseID,
			Brand:       brand,
			Code:        code,
			Name:        name,
			Type:        paintType,
			Status:      input.Status,
			Hex:         input.Hex,
			Note:        trimOrNil(input.Note),
			Thinner:     trimOrNil(input.Thinner),
			Ratio:       trimOrNil(input.Ratio),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return nil, fmt.Errorf("create paint: %w", err)
		}
		action = domain.ChangeActionCreate
	} else {
		existing, getErr := s.paints.GetByID(ctx, warehouseID, input.ID)
		if getErr != nil {
			return nil, fmt.Errorf("get paint: %w", getErr)
		}

		existing.Brand = brand
		existing.Code = code
		existing.Name = name
		existing.Type = paintType
		existing.Status = input.Status
		existing.Hex = input.Hex
		existing.Note = trimOrNil(input.Note)
		existing.Thinner = trimOrNil(input.Thinner)
		existing.Ratio = trimOrNil(input.Ratio)

		saved, err = s.paints.Update(ctx, existing)
		if err != nil {
			return nil, fmt.Errorf("update paint: %w", err)
		}
		action = domain.ChangeActionUpdate
	}

	s.crowdsource(ctx, saved)
	s.publishEvent(warehouseID, action)

	s.log.InfoContext(ctx, "paint saved",
		slog.String("warehouse_id", warehouseID),
		slog.String("paint_id", saved.ID.String()),
		slog.String("brand", saved.Brand),
		slog.String("code", saved.Code),
		slog.String("action", action.String()),
	)

	return saved, nil
}

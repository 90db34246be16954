package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/pkg/ctxutil"
)

// Import restores a JSON backup. Records whose brand+code identity
// already exists in the same status bucket are skipped, not merged.
// Writes run in per-chunk transactions: one bad chunk rolls back
// together and is reported line by line, the rest still lands.
func (s *Service) Import(ctx context.Context, input ImportInput) (*ImportResult, error) {
	warehouseID, ok := ctxutil.WarehouseIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.paints.Count(ctx, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("count paints: %w", err)
	}
	if count+len(input.Items) > s.cfg.MaxRecordsPerWarehouse {
		return nil, domain.NewValidationError("items", "importing these items would exceed the record limit")
	}

	existing, err := s.paints.ListAll(ctx, warehouseID, s.cfg.MaxRecordsPerWarehouse)
	if err != nil {
		return nil, fmt.Errorf("list paints: %w", err)
	}

	// Identity is MatchKey + status, same rule the save path enforces.
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[identityKey(p.Brand, p.Code, p.Status)] = true
	}

	result := &ImportResult{}

	chunkSize := s.cfg.ImportChunkSize
	if chunkSize <= 0 {
		chunkSize = 100
	}

	for chunkStart := 0; chunkStart < len(input.Items); chunkStart += chunkSize {
		chunkEnd := chunkStart + chunkSize
		if chunkEnd > len(input.Items) {
			chunkEnd = len(input.Items)
		}
		chunk := input.Items[chunkStart:chunkEnd]

		var chunkImported int
		var chunkSkipped int
		var chunkErrors []ImportError
		// Keys added in this chunk, removed again if the tx rolls back.
		var chunkSeenKeys []string

		txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			for i, item := range chunk {
				lineNumber := chunkStart + i + 1

				brand := domain.TitleCase(strings.TrimSpace(item.Brand))
				code := strings.TrimSpace(item.Code)

				if brand == "" || domain.CleanCode(code) == "" {
					chunkErrors = append(chunkErrors, ImportError{
						LineNumber: lineNumber,
						Brand:      item.Brand,
						Code:       item.Code,
						Reason:     "missing brand or code",
					})
					chunkSkipped++
					continue
				}

				status := item.Status
				if !status.IsValid() {
					status = domain.StatusOwned
				}

				key := identityKey(brand, code, status)
				if seen[key] {
					chunkErrors = append(chunkErrors, ImportError{
						LineNumber: lineNumber,
						Brand:      item.Brand,
						Code:       item.Code,
						Reason:     "already in inventory",
					})
					chunkSkipped++
					continue
				}
				seen[key] = true
				chunkSeenKeys = append(chunkSeenKeys, key)

				now := time.Now().UTC()
				created, createErr := s.paints.Create(txCtx, &domain.Paint{
					ID:          uuid.New(),
					WarehouseID: warehouseID,
					Brand:       brand,
					Code:        code,
					Name:        domain.TitleCase(strings.TrimSpace(item.Name)),
					Type:        strings.TrimSpace(item.Type),
					Status:      status,
					Hex:         item.Hex,
					Note:        trimOrNil(item.Note),
					Thinner:     trimOrNil(item.Thinner),
					Ratio:       trimOrNil(item.Ratio),
					CreatedAt:   now,
					UpdatedAt:   now,
				})
				if createErr != nil {
					return fmt.Errorf("create paint: %w", createErr)
				}

				s.crowdsource(txCtx, created)
				chunkImported++
			}
			return nil
		})

		if txErr != nil {
			for _, key := range chunkSeenKeys {
				delete(seen, key)
			}
			for i, item := range chunk {
				result.Errors = append(result.Errors, ImportError{
					LineNumber: chunkStart + i + 1,
					Brand:      item.Brand,
					Code:       item.Code,
					Reason:     "chunk transaction failed: " + txErr.Error(),
				})
			}
			result.Skipped += len(chunk)
		} else {
			result.Imported += chunkImported
			result.Skipped += chunkSkipped
			result.Errors = append(result.Errors, chunkErrors...)
		}
	}

	if result.Imported > 0 {
		s.publishEvent(warehouseID, domain.ChangeActionCreate)
	}

	s.log.InfoContext(ctx, "backup imported",
		slog.String("warehouse_id", warehouseID),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

// identityKey is the duplicate-detection identity: the comparison key
// plus the status bucket.
func identityKey(brand, code string, status domain.PaintStatus) string {
	return domain.MatchKey(brand, code) + "|" + status.String()
}

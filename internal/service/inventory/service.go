// Package inventory implements the personal paint collection logic:
// saving with duplicate detection, status toggles, filtered listing,
// keystroke resolution, and JSON backup import/export.
package inventory

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/vrusch/ModSkl/internal/adapter/postgres/paint"
	"github.com/vrusch/ModSkl/internal/config"
	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/internal/watch"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type paintRepo interface {
	GetByID(ctx context.Context, warehouseID string, id uuid.UUID) (*domain.Paint, error)
	List(ctx context.Context, warehouseID string, f paint.Filter) ([]domain.Paint, int, error)
	ListAll(ctx context.Context, warehouseID string, limit int) ([]domain.Paint, error)
	Count(ctx context.Context, warehouseID string) (int, error)
	Create(ctx context.Context, p *domain.Paint) (*domain.Paint, error)
	Update(ctx context.Context, p *domain.Paint) (*domain.Paint, error)
	UpdateStatus(ctx context.Context, warehouseID string, id uuid.UUID, status domain.PaintStatus) (*domain.Paint, error)
	Delete(ctx context.Context, warehouseID string, id uuid.UUID) error
}

type catalogReader interface {
	List(ctx context.Context, limit int) ([]domain.CatalogEntry, error)
}

// catalogPublisher is the crowdsourcing hook: every successfully saved
// paint is offered to the shared catalog after the save commits.
type catalogPublisher interface {
	Publish(ctx context.Context, e domain.CatalogEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type changeNotifier interface {
	Publish(e watch.Event)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the inventory business logic.
type Service struct {
	log       *slog.Logger
	paints    paintRepo
	catalog   catalogReader
	publisher catalogPublisher
	tx        txManager
	notify    changeNotifier
	cfg       config.InventoryConfig

	// catalogLimit caps the catalog snapshot loaded for resolution.
	catalogLimit int
	// publishEnabled gates the crowdsourcing hook.
	publishEnabled bool
}

// NewService creates a new Inventory service.
func NewService(
	logger *slog.Logger,
	paints paintRepo,
	catalog catalogReader,
	publisher catalogPublisher,
	tx txManager,
	notify changeNotifier,
	invCfg config.InventoryConfig,
	catCfg config.CatalogConfig,
) *Service {
	return &Service{
		log:            logger.With("service", "inventory"),
		paints:         paints,
		catalog:        catalog,
		publisher:      publisher,
		tx:             tx,
		notify:         notify,
		cfg:            invCfg,
		catalogLimit:   catCfg.MaxEntries,
		publishEnabled: catCfg.PublishEnabled,
	}
}

// publishEvent notifies watchers of a committed mutation.
func (s *Service) publishEvent(warehouseID string, action domain.ChangeAction) {
	if s.notify == nil {
		return
	}
	s.notify.Publish(watch.Event{
		Collection:  watch.CollectionPaints,
		WarehouseID: warehouseID,
		Action:      action.String(),
	})
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// crowdsource offers a saved paint to the shared catalog. Failures are
// logged, never surfaced: the user's save already succeeded.
func (s *Service) crowdsource(ctx context.Context, p *domain.Paint) {
	if !s.publishEnabled || s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, p.CatalogEntry()); err != nil {
		s.log.WarnContext(ctx, "catalog crowdsource failed",
			slog.String("brand", p.Brand),
			slog.String("code", p.Code),
			slog.Any("error", err),
		)
	}
}

// Package catalog implements the shared crowd-sourced catalog logic:
// lookup for the SPA, the crowdsourcing publish hook, and the
// administrative bulk import.
package catalog

import (
	"context"
	"log/slog"

	"github.com/vrusch/ModSkl/internal/config"
	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/internal/watch"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type catalogRepo interface {
	GetByKey(ctx context.Context, storageKey string) (*domain.CatalogEntry, error)
	List(ctx context.Context, limit int) ([]domain.CatalogEntry, error)
	Search(ctx context.Context, query string, limit int) ([]domain.CatalogEntry, error)
	Count(ctx context.Context) (int, error)
	Upsert(ctx context.Context, e domain.CatalogEntry) error
	UpsertBatch(ctx context.Context, entries []domain.CatalogEntry) (int, error)
}

type changeNotifier interface {
	Publish(e watch.Event)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

const (
	DefaultSearchLimit = 50
	MaxSearchLimit     = 500
)

// Service implements the catalog business logic.
type Service struct {
	log     *slog.Logger
	entries catalogRepo
	notify  changeNotifier
	cfg     config.CatalogConfig
}

// NewService creates a new Catalog service.
func NewService(
	logger *slog.Logger,
	entries catalogRepo,
	notify changeNotifier,
	cfg config.CatalogConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "catalog"),
		entries: entries,
		notify:  notify,
		cfg:     cfg,
	}
}

// publishEvent notifies watchers of a catalog change. Catalog events
// carry no warehouse id; the catalog is shared.
func (s *Service) publishEvent(action domain.ChangeAction) {
	if s.notify == nil {
		return
	}
	s.notify.Publish(watch.Event{
		Collection: watch.CollectionCatalog,
		Action:     action.String(),
	})
}

// clampLimit ensures a limit is within (0, max], defaulting from 0 to defaultVal.
func clampLimit(limit, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > max {
		return max
	}
	return limit
}

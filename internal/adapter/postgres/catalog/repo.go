// Package catalog implements the shared catalog repository using
// PostgreSQL. The catalog is keyed by storage key with merge-on-write
// semantics: upserts update fields, they never duplicate an entry.
package catalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vrusch/ModSkl/internal/adapter/postgres"
	"github.com/vrusch/ModSkl/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const catalogColumns = "storage_key, brand, code, name, type, hex, updated_at"

// upsertSQL merges an entry into the catalog. Identifying fields always
// win; descriptive fields only overwrite when the new value is
// non-empty, so a sparse crowdsourced write cannot blank out data a
// previous contributor supplied.
const upsertSQL = `
INSERT INTO catalog_entries (storage_key, brand, code, name, type, hex, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
ON CONFLICT (storage_key) DO UPDATE SET
    brand      = EXCLUDED.brand,
    code       = EXCLUDED.code,
    name       = COALESCE(NULLIF(EXCLUDED.name, ''), catalog_entries.name),
    type       = COALESCE(NULLIF(EXCLUDED.type, ''), catalog_entries.type),
    hex        = COALESCE(NULLIF(EXCLUDED.hex, ''), catalog_entries.hex),
    updated_at = now()`

// Repo provides shared catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByKey returns a catalog entry by storage key.
// Returns domain.ErrNotFound if absent.
func (r *Repo) GetByKey(ctx context.Context, storageKey string) (*domain.CatalogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+catalogColumns+` FROM catalog_entries WHERE storage_key = $1`,
		storageKey,
	)

	e, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "catalog_entry", storageKey)
	}
	return e, nil
}

// List returns catalog entries ordered by brand then code, capped at
// limit. The whole catalog is small enough to ship to clients as one
// snapshot.
func (r *Repo) List(ctx context.Context, limit int) ([]domain.CatalogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+catalogColumns+` FROM catalog_entries ORDER BY brand, code LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list catalog_entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search performs ILIKE '%...%' over brand, code, and name.
// Empty query returns an empty result without a DB query.
func (r *Repo) Search(ctx context.Context, query string, limit int) ([]domain.CatalogEntry, error) {
	if query == "" {
		return []domain.CatalogEntry{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	pat := "%" + query + "%"
	sql, args, err := qb.Select("storage_key", "brand", "code", "name", "type", "hex", "updated_at").
		From("catalog_entries").
		Where(squirrel.Or{
			squirrel.ILike{"brand": pat},
			squirrel.ILike{"code": pat},
			squirrel.ILike{"name": pat},
		}).
		OrderBy("brand", "code").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search catalog query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search catalog_entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Count returns the number of catalog entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM catalog_entries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count catalog_entries: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert merges one entry into the catalog. Applying the same entry
// twice leaves exactly one row for its storage key.
func (r *Repo) Upsert(ctx context.Context, e domain.CatalogEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, upsertSQL, e.StorageKey, e.Brand, e.Code, e.Name, e.Type, e.Hex)
	if err != nil {
		return postgres.MapError(err, "catalog_entry", e.StorageKey)
	}
	return nil
}

// UpsertBatch merges entries in a single database round trip using a
// pgx batch. Returns the number of statements executed. Callers chunk
// large imports; a batch here maps 1:1 to one import chunk.
func (r *Repo) UpsertBatch(ctx context.Context, entries []domain.CatalogEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(upsertSQL, e.StorageKey, e.Brand, e.Code, e.Name, e.Type, e.Hex)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for i := range entries {
		if _, err := results.Exec(); err != nil {
			return i, postgres.MapError(err, "catalog_entry", entries[i].StorageKey)
		}
	}
	return len(entries), nil
}

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.CatalogEntry, error) {
	var e domain.CatalogEntry
	err := row.Scan(&e.StorageKey, &e.Brand, &e.Code, &e.Name, &e.Type, &e.Hex, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEntries(rows pgx.Rows) ([]domain.CatalogEntry, error) {
	entries := []domain.CatalogEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog rows: %w", err)
	}
	return entries, nil
}

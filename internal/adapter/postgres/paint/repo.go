// Package paint implements the personal inventory repository using
// PostgreSQL. Every operation is scoped by warehouse_id; a paint from
// another warehouse behaves as if it does not exist.
package paint

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vrusch/ModSkl/internal/adapter/postgres"
	"github.com/vrusch/ModSkl/internal/domain"
)

// qb builds queries with PostgreSQL $n placeholders.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var paintColumns = []string{
	"id", "warehouse_id", "brand", "code", "name", "type", "status",
	"hex", "note", "thinner", "ratio", "created_at", "updated_at",
}

// Repo provides paint persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new paint repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a paint by primary key. Returns domain.ErrNotFound if
// the paint does not exist or belongs to another warehouse.
func (r *Repo) GetByID(ctx context.Context, warehouseID string, id uuid.UUID) (*domain.Paint, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(paintColumns...).
		From("paints").
		Where(squirrel.Eq{"id": id, "warehouse_id": warehouseID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get paint query: %w", err)
	}

	p, err := scanPaint(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "paint", id.String())
	}
	return p, nil
}

// List returns paints for a warehouse matching the filter, plus the
// total count ignoring limit/offset. An empty warehouse yields an empty
// slice and count 0.
func (r *Repo) List(ctx context.Context, warehouseID string, f Filter) ([]domain.Paint, int, error) {
	f.normalize()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := r.buildWhere(warehouseID, f)

	countSQL, countArgs, err := qb.Select("count(*)").From("paints").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count paints query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count paints: %w", err)
	}

	sql, args, err := qb.Select(paintColumns...).
		From("paints").
		Where(where).
		OrderBy(f.SortBy+" "+f.SortOrder, "id "+f.SortOrder).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list paints query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list paints: %w", err)
	}
	defer rows.Close()

	paints, err := scanPaints(rows)
	if err != nil {
		return nil, 0, err
	}
	return paints, total, nil
}

// ListAll returns every paint in the warehouse newest first, capped at
// limit. Used for export and for resolver snapshots.
func (r *Repo) ListAll(ctx context.Context, warehouseID string, limit int) ([]domain.Paint, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(paintColumns...).
		From("paints").
		Where(squirrel.Eq{"warehouse_id": warehouseID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list all paints query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list all paints: %w", err)
	}
	defer rows.Close()

	return scanPaints(rows)
}

// Count returns the number of paints in a warehouse.
func (r *Repo) Count(ctx context.Context, warehouseID string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx, `SELECT count(*) FROM paints WHERE warehouse_id = $1`, warehouseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count paints: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new paint and returns the persisted row with
// store-assigned timestamps.
func (r *Repo) Create(ctx context.Context, p *domain.Paint) (*domain.Paint, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("paints").
		Columns("id", "warehouse_id", "brand", "code", "name", "type", "status",
			"hex", "note", "thinner", "ratio").
		Values(p.ID, p.WarehouseID, p.Brand, p.Code, p.Name, p.Type, p.Status.String(),
			p.Hex, p.Note, p.Thinner, p.Ratio).
		Suffix("RETURNING " + allColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create paint query: %w", err)
	}

	created, err := scanPaint(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "paint", p.ID.String())
	}
	return created, nil
}

// Update rewrites all mutable fields of a paint. Returns
// domain.ErrNotFound if the paint does not exist in this warehouse.
func (r *Repo) Update(ctx context.Context, p *domain.Paint) (*domain.Paint, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("paints").
		Set("brand", p.Brand).
		Set("code", p.Code).
		Set("name", p.Name).
		Set("type", p.Type).
		Set("status", p.Status.String()).
		Set("hex", p.Hex).
		Set("note", p.Note).
		Set("thinner", p.Thinner).
		Set("ratio", p.Ratio).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID, "warehouse_id": p.WarehouseID}).
		Suffix("RETURNING " + allColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update paint query: %w", err)
	}

	updated, err := scanPaint(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "paint", p.ID.String())
	}
	return updated, nil
}

// UpdateStatus flips a paint between the shelf and the shopping list.
// Returns domain.ErrNotFound if the paint does not exist in this warehouse.
func (r *Repo) UpdateStatus(ctx context.Context, warehouseID string, id uuid.UUID, status domain.PaintStatus) (*domain.Paint, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("paints").
		Set("status", status.String()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "warehouse_id": warehouseID}).
		Suffix("RETURNING " + allColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update paint status query: %w", err)
	}

	updated, err := scanPaint(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "paint", id.String())
	}
	return updated, nil
}

// Delete removes a paint. Returns domain.ErrNotFound if the paint does
// not exist or belongs to another warehouse.
func (r *Repo) Delete(ctx context.Context, warehouseID string, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM paints WHERE id = $1 AND warehouse_id = $2`, id, warehouseID)
	if err != nil {
		return postgres.MapError(err, "paint", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("paint %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

func (r *Repo) buildWhere(warehouseID string, f Filter) squirrel.And {
	where := squirrel.And{squirrel.Eq{"warehouse_id": warehouseID}}

	if f.Search != nil && *f.Search != "" {
		pat := "%" + *f.Search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"brand": pat},
			squirrel.ILike{"code": pat},
			squirrel.ILike{"name": pat},
		})
	}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": f.Status.String()})
	}
	if f.Type != nil && *f.Type != "" {
		where = append(where, squirrel.Eq{"type": *f.Type})
	}

	return where
}

func allColumns() string {
	cols := paintColumns[0]
	for _, c := range paintColumns[1:] {
		cols += ", " + c
	}
	return cols
}

func scanPaint(row pgx.Row) (*domain.Paint, error) {
	var (
		p      domain.Paint
		status string
	)
	err := row.Scan(
		&p.ID, &p.WarehouseID, &p.Brand, &p.Code, &p.Name, &p.Type, &status,
		&p.Hex, &p.Note, &p.Thinner, &p.Ratio, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = domain.PaintStatus(status)
	return &p, nil
}

func scanPaints(rows pgx.Rows) ([]domain.Paint, error) {
	paints := []domain.Paint{}
	for rows.Next() {
		p, err := scanPaint(rows)
		if err != nil {
			return nil, fmt.Errorf("scan paint row: %w", err)
		}
		paints = append(paints, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate paint rows: %w", err)
	}
	return paints, nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Paint is one record in a warehouse's personal inventory.
type Paint struct {
	ID          uuid.UUID
	WarehouseID string
	Brand       string
	Code        string
	Name        string
	Type        string
	Status      PaintStatus
	Hex         *string
	Note        *string
	Thinner     *string
	Ratio       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MatchKey returns the comparison key for this record.
func (p *Paint) MatchKey() string {
	return MatchKey(p.Brand, p.Code)
}

// CatalogEntry converts the record into its shared-catalog form.
// Only the identifying fields travel; personal data (status, notes,
// thinner ratios) stays in the warehouse.
func (p *Paint) CatalogEntry() CatalogEntry {
	e := CatalogEntry{
		StorageKey: StorageKey(p.Brand, p.Code),
		Brand:      p.Brand,
		Code:       p.Code,
		Name:       p.Name,
		Type:       p.Type,
	}
	if p.Hex != nil {
		e.Hex = *p.Hex
	}
	return e
}

package domain

import "time"

// CatalogEntry is one row of the shared, crowd-sourced paint catalog.
// The catalog carries no personal data; it only maps brand+code pairs
// to a name, type, and color swatch.
type CatalogEntry struct {
	StorageKey string
	Brand      string
	Code       string
	Name       string
	Type       string
	Hex        string
	UpdatedAt  time.Time
}

// MatchKey returns the comparison key for this catalog entry.
func (e *CatalogEntry) MatchKey() string {
	return MatchKey(e.Brand, e.Code)
}

// StandardBrands are the manufacturers offered in the brand picker.
// Anything else is entered free-form.
var StandardBrands = []string{
	"AK Interactive",
	"Ammo Mig",
	"Gunze",
	"Hataka",
	"MRP",
	"Tamiya",
	"Vallejo",
}

// StandardTypes are the recognized paint chemistry categories. A type
// outside this list is treated as custom and kept verbatim.
var StandardTypes = []string{
	"Akryl",
	"Lacquer",
	"Email (Syntetika)",
	"Sprej",
	"Tmel",
	"Lak",
	"Ředidlo",
	"Wash",
	"Pigment",
}

func IsStandardBrand(brand string) bool {
	for _, b := range StandardBrands {
		if b == brand {
			return true
		}
	}
	return false
}

func IsStandardType(typ string) bool {
	for _, t := range StandardTypes {
		if t == typ {
			return true
		}
	}
	return false
}

package models

// CatalogueEntry is the canonical, publish-ready representation of one
// sellable item. It is only ever constructed from a raw inventory item
// that passed validation: sellable type and a parseable non-negative
// price. Partially valid entries are never built.
type CatalogueEntry struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	PriceMinorUnits int64  `json:"price_minor_units"`
	Artist          string `json:"artist"`
	ImageURL        string `json:"image_url"`
}

// Key returns the identity pair used for duplicate detection against
// the destination catalogue. Comparison is exact and case-sensitive.
func (e CatalogueEntry) Key() ProductKey {
	return ProductKey{Name: e.Name, Artist: e.Artist}
}

// DestinationProduct is an existing product on the destination
// platform, fetched fresh each run and used only for identity
// comparison. This system never mutates destination products.
type DestinationProduct struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
}

// ProductKey identifies a product by its (name, artist) pair.
type ProductKey struct {
	Name   string
	Artist string
}

// ItemType tags a raw inventory item. Only artworks and editions are
// sellable; everything else is filtered out before normalization.
type ItemType string

const (
	TypeArtwork ItemType = "ARTWORK"
	TypeEdition ItemType = "EDITION"
	TypeOther   ItemType = "OTHER"
)

// Sellable reports whether items of this type may be published.
func (t ItemType) Sellable() bool {
	return t == TypeArtwork || t == TypeEdition
}

package sam

import (
	"context"

	"artsync/internal/config"
	"artsync/internal/models"

	"go.uber.org/zap"
)

// RawInventoryItem is one source-side record, as returned by whichever
// SAM schema is in use. Records are read-only and re-fetched every run.
type RawInventoryItem interface {
	// ItemID returns the source identifier, used for logging.
	ItemID() string
}

// Adapter fetches raw inventory records for one SAM API schema and
// maps them into catalogue entries. The two schemas differ in both
// endpoints and normalization rules, so the mapping is pluggable and
// selected by configuration at deployment time.
type Adapter interface {
	FetchItems(ctx context.Context) ([]RawInventoryItem, error)
	// Normalize returns nil when the item is not publishable: wrong
	// type, no price, or an unparseable or negative price. That is a
	// filter outcome, not an error.
	Normalize(item RawInventoryItem) *models.CatalogueEntry
}

// NewAdapter returns the adapter for the configured source schema.
func NewAdapter(schema config.SourceSchema, client *Client, logger *zap.Logger) Adapter {
	if schema == config.SchemaCatalogue {
		return NewCatalogueAdapter(client, logger)
	}
	return NewStoreAdapter(client, logger)
}

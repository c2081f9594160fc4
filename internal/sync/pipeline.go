package sync

import (
	"context"
	"fmt"

	"artsync/internal/models"
	"artsync/internal/services/sam"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Destination is the destination catalogue surface the pipeline needs:
// the existing product list for duplicate detection, and product
// creation for publishing.
type Destination interface {
	ListProducts(ctx context.Context) ([]models.DestinationProduct, error)
	CreateProduct(ctx context.Context, entry models.CatalogueEntry) (string, error)
}

// Summary reports what one batch run did.
type Summary struct {
	Fetched    int
	Normalized int
	Duplicates int
	Published  int
	Failed     int
}

// Pipeline runs one-way catalogue reconciliation: fetch source items,
// normalize them, drop entries already present on the destination, and
// publish the rest. Nothing persists between runs; the destination
// catalogue itself is the ledger of what has been synced.
type Pipeline struct {
	source sam.Adapter
	dest   Destination
	logger *zap.Logger
}

func New(source sam.Adapter, dest Destination, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		source: source,
		dest:   dest,
		logger: logger,
	}
}

// Run executes one batch. A failure in the source listing or the
// destination listing aborts the run; per-item publish failures are
// logged and skipped.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.New().String()
	log := p.logger.With(zap.String("run_id", runID))
	log.Info("starting catalogue sync")

	items, err := p.source.FetchItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("source listing failed: %w", err)
	}

	var entries []models.CatalogueEntry
	for _, item := range items {
		entry := p.source.Normalize(item)
		if entry == nil {
			log.Debug("item not publishable", zap.String("item_id", item.ItemID()))
			continue
		}
		entries = append(entries, *entry)
	}

	existing, err := p.dest.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("destination listing failed: %w", err)
	}

	pending := Dedupe(entries, existing)

	summary := &Summary{
		Fetched:    len(items),
		Normalized: len(entries),
		Duplicates: len(entries) - len(pending),
	}

	for _, entry := range pending {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		log.Info("publishing product",
			zap.String("name", entry.Name),
			zap.String("artist", entry.Artist),
		)

		id, err := p.dest.CreateProduct(ctx, entry)
		if err != nil {
			log.Error("publish failed",
				zap.String("name", entry.Name),
				zap.Error(err),
			)
			summary.Failed++
			continue
		}

		log.Info("published product",
			zap.String("name", entry.Name),
			zap.String("product_id", id),
		)
		summary.Published++
	}

	log.Info("catalogue sync finished",
		zap.Int("fetched", summary.Fetched),
		zap.Int("normalized", summary.Normalized),
		zap.Int("duplicates", summary.Duplicates),
		zap.Int("published", summary.Published),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// Dedupe returns the entries whose (name, artist) pair does not appear
// among the existing destination products, preserving input order.
// Entries with an empty name or artist cannot be meaningfully matched
// or displayed and are always excluded.
func Dedupe(entries []models.CatalogueEntry, existing []models.DestinationProduct) []models.CatalogueEntry {
	seen := make(map[models.ProductKey]struct{}, len(existing))
	for _, product := range existing {
		seen[models.ProductKey{Name: product.Name, Artist: product.Artist}] = struct{}{}
	}

	var pending []models.CatalogueEntry
	for _, entry := range entries {
		if entry.Name == "" || entry.Artist == "" {
			continue
		}
		if _, ok := seen[entry.Key()]; ok {
			continue
		}
		pending = append(pending, entry)
	}
	return pending
}

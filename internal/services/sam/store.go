package sam

import (
	"context"
	"fmt"
	"strings"

	"artsync/internal/models"

	"go.uber.org/zap"
)

// StoreAdapter maps the flat store-items schema. The listing already
// carries price and image data, so no detail calls are needed.
type StoreAdapter struct {
	client *Client
	logger *zap.Logger
}

func NewStoreAdapter(client *Client, logger *zap.Logger) *StoreAdapter {
	return &StoreAdapter{
		client: client,
		logger: logger,
	}
}

func (i StoreItem) ItemID() string {
	return fmt.Sprintf("%d", i.ID)
}

func (a *StoreAdapter) FetchItems(ctx context.Context) ([]RawInventoryItem, error) {
	items, err := a.client.GetStoreItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch store items: %w", err)
	}

	raw := make([]RawInventoryItem, len(items))
	for i, item := range items {
		raw[i] = item
	}

	a.logger.Info("fetched store items", zap.Int("count", len(raw)))
	return raw, nil
}

// Normalize converts a store item into a catalogue entry, or nil when
// the item is not sellable or has no usable price.
func (a *StoreAdapter) Normalize(item RawInventoryItem) *models.CatalogueEntry {
	storeItem, ok := item.(StoreItem)
	if !ok {
		return nil
	}

	itemType := models.ItemType(strings.ToUpper(storeItem.Type))
	if !itemType.Sellable() {
		return nil
	}

	if storeItem.SaleAmount == nil || *storeItem.SaleAmount < 0 {
		return nil
	}

	desc := stripTags(storeItem.StoryNarrative)
	if storeItem.Medium != "" && storeItem.ArtworkSize != "" {
		desc = desc + fmt.Sprintf(" (%s, %s)", storeItem.Medium, storeItem.ArtworkSize)
	}

	imageURL := ""
	if len(storeItem.Images) > 0 && len(storeItem.Images[0].Variants) > 0 {
		imageURL = storeItem.Images[0].Variants[0].URL
	}

	return &models.CatalogueEntry{
		Name:            cleanTitle(storeItem.StoryTitle),
		Description:     desc,
		PriceMinorUnits: priceMinorUnits(*storeItem.SaleAmount),
		Artist:          joinName(storeItem.Firstname, storeItem.Surname),
		ImageURL:        imageURL,
	}
}

package sam

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"artsync/internal/models"

	"go.uber.org/zap"
)

// editionPattern matches a trailing n/total suffix on a catalogue
// number, e.g. "Red Gum 12/50".
var editionPattern = regexp.MustCompile(`(\d+)/(\d+)\s*$`)

// CatalogueAdapter maps the richer inventory schema: a search call
// returns summaries, then each candidate needs a detail fetch for
// price and image data. Type filtering happens before the detail
// fetch to avoid unnecessary calls.
type CatalogueAdapter struct {
	client *Client
	logger *zap.Logger

	// RequireStock restricts the search to in-stock items.
	RequireStock bool
}

func NewCatalogueAdapter(client *Client, logger *zap.Logger) *CatalogueAdapter {
	return &CatalogueAdapter{
		client:       client,
		logger:       logger,
		RequireStock: true,
	}
}

func (d *InventoryDetail) ItemID() string {
	return d.ID
}

func (a *CatalogueAdapter) FetchItems(ctx context.Context) ([]RawInventoryItem, error) {
	summaries, err := a.client.SearchInventory(ctx, a.RequireStock)
	if err != nil {
		return nil, fmt.Errorf("failed to search inventory: %w", err)
	}

	var raw []RawInventoryItem
	for _, summary := range summaries {
		if !models.ItemType(strings.ToUpper(summary.Type)).Sellable() {
			continue
		}

		detail, err := a.client.GetInventoryItem(ctx, summary.ID)
		if err != nil {
			// A failed detail fetch drops the item, not the batch.
			a.logger.Warn("skipping item: detail fetch failed",
				zap.String("item_id", summary.ID),
				zap.Error(err),
			)
			continue
		}
		raw = append(raw, detail)
	}

	a.logger.Info("fetched inventory items",
		zap.Int("listed", len(summaries)),
		zap.Int("fetched", len(raw)),
	)
	return raw, nil
}

// Normalize converts an inventory detail record into a catalogue
// entry, or nil when the item is not sellable or has no usable price.
func (a *CatalogueAdapter) Normalize(item RawInventoryItem) *models.CatalogueEntry {
	detail, ok := item.(*InventoryDetail)
	if !ok {
		return nil
	}

	itemType := models.ItemType(strings.ToUpper(detail.Type))
	if !itemType.Sellable() {
		return nil
	}

	if len(detail.Prices) == 0 {
		return nil
	}
	price, err := strconv.ParseFloat(detail.Prices[0].RetailPrice, 64)
	if err != nil || math.IsNaN(price) || price < 0 {
		return nil
	}

	desc := stripTags(detail.Narrative)
	if detail.Category != "" {
		desc = fmt.Sprintf("Category: %s\n%s", detail.Category, desc)
	}
	if itemType == models.TypeEdition {
		if m := editionPattern.FindStringSubmatch(detail.CatalogueNumber); m != nil {
			desc = desc + fmt.Sprintf("\nEdition: %s/%s", m[1], m[2])
		}
	}

	artist := ""
	if len(detail.Artists) > 0 {
		artist = detail.Artists[0].Name
	}

	imageURL := ""
	if len(detail.Images) > 0 && detail.Images[0].Path != "" {
		imageURL = resolveImageURL(a.client.BaseURL(), detail.Images[0].Path)
	}

	return &models.CatalogueEntry{
		Name:            cleanTitle(detail.CatalogueNumber),
		Description:     desc,
		PriceMinorUnits: priceMinorUnits(price),
		Artist:          artist,
		ImageURL:        imageURL,
	}
}

// resolveImageURL joins a source-relative image path onto the API base URL.
func resolveImageURL(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

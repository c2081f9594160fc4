package sam

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inventoryDetail() *InventoryDetail {
	return &InventoryDetail{
		ID:              "inv-1",
		Type:            "ARTWORK",
		CatalogueNumber: "Coastal Light, II",
		Narrative:       "<p>Morning light on the coast.</p>",
		Category:        "Landscape",
		Prices:          []PriceEntry{{RetailPrice: "200", Currency: "AUD"}},
		Artists:         []ArtistRef{{Name: "Jane Doe"}},
		Images:          []InventoryImage{{Path: "/media/inv-1.jpg"}},
	}
}

func newCatalogueAdapter(baseURL string) *CatalogueAdapter {
	client := NewClient(baseURL, "test-key", "", "", zap.NewNop())
	return NewCatalogueAdapter(client, zap.NewNop())
}

func TestCatalogueAdapter_Normalize(t *testing.T) {
	adapter := newCatalogueAdapter("https://sam.example.com")

	entry := adapter.Normalize(inventoryDetail())
	require.NotNil(t, entry)

	assert.Equal(t, "Coastal Light II", entry.Name)
	assert.Equal(t, "Category: Landscape\nMorning light on the coast.", entry.Description)
	assert.Equal(t, int64(20000), entry.PriceMinorUnits)
	assert.Equal(t, "Jane Doe", entry.Artist)
	assert.Equal(t, "https://sam.example.com/media/inv-1.jpg", entry.ImageURL)
}

func TestCatalogueAdapter_Normalize_RejectsBadPrices(t *testing.T) {
	adapter := newCatalogueAdapter("https://sam.example.com")

	detail := inventoryDetail()
	detail.Prices = nil
	assert.Nil(t, adapter.Normalize(detail), "no price entries")

	detail = inventoryDetail()
	detail.Prices = []PriceEntry{{RetailPrice: "abc"}}
	assert.Nil(t, adapter.Normalize(detail), "unparseable price")

	detail = inventoryDetail()
	detail.Prices = []PriceEntry{{RetailPrice: "NaN"}}
	assert.Nil(t, adapter.Normalize(detail), "NaN price")

	detail = inventoryDetail()
	detail.Prices = []PriceEntry{{RetailPrice: "-10"}}
	assert.Nil(t, adapter.Normalize(detail), "negative price")
}

func TestCatalogueAdapter_Normalize_RejectsNonSellableType(t *testing.T) {
	adapter := newCatalogueAdapter("https://sam.example.com")

	detail := inventoryDetail()
	detail.Type = "OTHER"
	assert.Nil(t, adapter.Normalize(detail))
}

func TestCatalogueAdapter_Normalize_EditionSuffix(t *testing.T) {
	adapter := newCatalogueAdapter("https://sam.example.com")

	detail := inventoryDetail()
	detail.Type = "EDITION"
	detail.CatalogueNumber = "Harbour Print 12/50"

	entry := adapter.Normalize(detail)
	require.NotNil(t, entry)
	assert.Equal(t, "Harbour Print 12/50", entry.Name)
	assert.True(t, strings.HasSuffix(entry.Description, "\nEdition: 12/50"))
}

func TestCatalogueAdapter_Normalize_NoEditionSuffixForArtwork(t *testing.T) {
	adapter := newCatalogueAdapter("https://sam.example.com")

	detail := inventoryDetail()
	detail.CatalogueNumber = "Harbour View 12/50"

	entry := adapter.Normalize(detail)
	require.NotNil(t, entry)
	assert.NotContains(t, entry.Description, "Edition:")
}

func TestCatalogueAdapter_Normalize_AbsoluteImagePassesThrough(t *testing.T) {
	adapter := newCatalogueAdapter("https://sam.example.com")

	detail := inventoryDetail()
	detail.Images = []InventoryImage{{Path: "https://cdn.example.com/a.jpg"}}

	entry := adapter.Normalize(detail)
	require.NotNil(t, entry)
	assert.Equal(t, "https://cdn.example.com/a.jpg", entry.ImageURL)
}

func TestCatalogueAdapter_FetchItems(t *testing.T) {
	var detailCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/inventory/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("inStock"))
		json.NewEncoder(w).Encode(SearchResponse{
			Items: []InventorySummary{
				{ID: "inv-1", Type: "ARTWORK", InStock: true},
				{ID: "inv-2", Type: "OTHER", InStock: true},
				{ID: "inv-3", Type: "EDITION", InStock: true},
			},
			Total: 3,
		})
	})
	mux.HandleFunc("/inventory/items/", func(w http.ResponseWriter, r *http.Request) {
		detailCalls.Add(1)
		id := strings.TrimPrefix(r.URL.Path, "/inventory/items/")
		if id == "inv-3" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		detail := inventoryDetail()
		detail.ID = id
		json.NewEncoder(w).Encode(detail)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	adapter := newCatalogueAdapter(server.URL)

	items, err := adapter.FetchItems(context.Background())
	require.NoError(t, err)

	// inv-2 is filtered before its detail call; inv-3's failed detail
	// fetch drops the item without aborting the batch.
	require.Len(t, items, 1)
	assert.Equal(t, "inv-1", items[0].ItemID())
	assert.Equal(t, int32(2), detailCalls.Load())
}

func TestClient_LoginExchange(t *testing.T) {
	var loginCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		loginCalls.Add(1)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "gallery", user)
		assert.Equal(t, "secret", pass)
		json.NewEncoder(w).Encode(LoginResponse{Token: "session-token"})
	})
	mux.HandleFunc("/store/items", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(StoreItemsResponse{})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL, "", "gallery", "secret", zap.NewNop())

	_, err := client.GetStoreItems(context.Background())
	require.NoError(t, err)
	_, err = client.GetStoreItems(context.Background())
	require.NoError(t, err)

	// Token is exchanged once and reused.
	assert.Equal(t, int32(1), loginCalls.Load())
}

func TestClient_StaticKeySkipsLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("login should not be called with a static key")
	})
	mux.HandleFunc("/store/items", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer static-key", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(StoreItemsResponse{})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL, "static-key", "gallery", "secret", zap.NewNop())

	_, err := client.GetStoreItems(context.Background())
	require.NoError(t, err)
}

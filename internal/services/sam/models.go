package sam

// Store schema: the flat store-items listing returned by
// GET /store/items. Field names follow the SAM API's casing.

type StoreItemsResponse struct {
	Artworks []StoreItem `json:"artworks"`
}

type StoreItem struct {
	ID             int64        `json:"ID"`
	Type           string       `json:"Type"`
	StoryTitle     string       `json:"StoryTitle"`
	StoryNarrative string       `json:"StoryNarrative"`
	SaleAmount     *float64     `json:"SaleAmount"`
	Firstname      string       `json:"Firstname"`
	Surname        string       `json:"Surname"`
	Medium         string       `json:"Medium"`
	ArtworkSize    string       `json:"ArtworkSize"`
	Images         []StoreImage `json:"Images"`
}

type StoreImage struct {
	Variants []StoreImageVariant `json:"variants"`
}

type StoreImageVariant struct {
	URL string `json:"URL"`
}

// Catalogue schema: the richer inventory API. A search call returns
// summaries; price and image data require a per-item detail fetch.

type SearchResponse struct {
	Items []InventorySummary `json:"items"`
	Total int                `json:"total"`
}

type InventorySummary struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	CatalogueNumber string `json:"catalogueNumber"`
	InStock         bool   `json:"inStock"`
}

type InventoryDetail struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	CatalogueNumber string           `json:"catalogueNumber"`
	Narrative       string           `json:"narrative"`
	Category        string           `json:"category"`
	Prices          []PriceEntry     `json:"prices"`
	Artists         []ArtistRef      `json:"artists"`
	Images          []InventoryImage `json:"images"`
}

type PriceEntry struct {
	RetailPrice string `json:"retailPrice"`
	Currency    string `json:"currency"`
}

type ArtistRef struct {
	Name string `json:"name"`
}

type InventoryImage struct {
	// Path is relative to the SAM base URL.
	Path string `json:"path"`
}

// Auth

type LoginResponse struct {
	Token string `json:"token"`
}

// Customer and order creation, used by the order webhook flow.

type CustomerPayload struct {
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Email     string            `json:"email"`
	Addresses []CustomerAddress `json:"addresses"`
}

type CustomerAddress struct {
	Type     string `json:"type"` // SHIPPING or BILLING
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

const (
	AddressShipping = "SHIPPING"
	AddressBilling  = "BILLING"
)

type CreateCustomerResponse struct {
	ID string `json:"id"`
}

type OrderPayload struct {
	CustomerID    string      `json:"customerId"`
	PaymentMethod string      `json:"paymentMethod"`
	Lines         []OrderLine `json:"lines"`
}

type OrderLine struct {
	Product         string `json:"product"`
	Quantity        int    `json:"quantity"`
	PriceMinorUnits int64  `json:"price"`
}

type CreateOrderResponse struct {
	ID string `json:"id"`
}

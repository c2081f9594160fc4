package webflow

// Product listing, used for duplicate detection.

type ProductListResponse struct {
	Items []ProductListItem `json:"items"`
}

type ProductListItem struct {
	Product ProductSummary `json:"product"`
}

type ProductSummary struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
}

// Product creation. Webflow wraps both the product and its SKU in
// "fields" envelopes.

type CreateProductRequest struct {
	Product ProductEnvelope `json:"product"`
	SKU     SKUEnvelope     `json:"sku"`
}

type ProductEnvelope struct {
	Fields ProductFields `json:"fields"`
}

type ProductFields struct {
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	SKUProperties []SKUProperty `json:"sku-properties"`
	Artist        string        `json:"artist"`
	Shippable     bool          `json:"shippable"`
	Archived      bool          `json:"_archived"`
	Draft         bool          `json:"_draft"`
}

type SKUProperty struct {
	ID   *string            `json:"id"`
	Name string             `json:"name"`
	Enum []SKUPropertyValue `json:"enum"`
}

type SKUPropertyValue struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
	Slug string  `json:"slug"`
}

type SKUEnvelope struct {
	Fields SKUFields `json:"fields"`
}

type SKUFields struct {
	Name      string            `json:"name"`
	Slug      string            `json:"slug"`
	SKUValues map[string]string `json:"sku-values"`
	MainImage string            `json:"main-image,omitempty"`
	Price     Price             `json:"price"`
	Archived  bool              `json:"_archived"`
	Draft     bool              `json:"_draft"`
}

type Price struct {
	Unit  string `json:"unit"`
	Value int64  `json:"value"`
}

type CreateProductResponse struct {
	Product struct {
		ID string `json:"_id"`
	} `json:"product"`
}

// Webhook subscription.

type WebhookRegistration struct {
	TriggerType string `json:"triggerType"`
	URL         string `json:"url"`
}

type WebhookRegistrationResponse struct {
	ID string `json:"_id"`
}

// TriggerNewOrder is the trigger type for new-order notifications.
const TriggerNewOrder = "ecomm_new_order"

// OrderEvent is the inbound new-order notification payload.

type OrderEvent struct {
	OrderID         string       `json:"orderId"`
	CustomerInfo    CustomerInfo `json:"customerInfo"`
	ShippingAddress OrderAddress `json:"shippingAddress"`
	BillingAddress  OrderAddress `json:"billingAddress"`
	PurchasedItems  []OrderItem  `json:"purchasedItems"`
	PaymentMethod   string       `json:"paymentMethod"`
}

type CustomerInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type OrderAddress struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postalCode"`
	Country  string `json:"country"`
}

type OrderItem struct {
	ProductName string `json:"productName"`
	Count       int    `json:"count"`
	RowTotal    Price  `json:"rowTotal"`
}

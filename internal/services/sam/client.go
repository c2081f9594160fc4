package sam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Client talks to the SAM inventory API. Authentication is either a
// static bearer key or a token obtained through a basic-auth login
// exchange, depending on which credentials are configured.
type Client struct {
	baseURL    string
	apiKey     string
	username   string
	password   string
	httpClient *http.Client
	logger     *zap.Logger

	mu    sync.Mutex
	token string
}

func NewClient(baseURL, apiKey, username, password string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// BaseURL returns the configured API base URL. Catalogue-schema image
// paths are resolved against it.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// bearerToken returns the token to use for API calls, performing the
// login exchange on first use when no static key is configured.
func (c *Client) bearerToken(ctx context.Context) (string, error) {
	if c.apiKey != "" {
		return c.apiKey, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" {
		return c.token, nil
	}

	token, err := c.login(ctx)
	if err != nil {
		return "", err
	}
	c.token = token
	return token, nil
}

// login exchanges the configured basic-auth credentials for a bearer token.
func (c *Client) login(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("login failed: %d - %s", resp.StatusCode, string(body))
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if loginResp.Token == "" {
		return "", fmt.Errorf("login response contained no token")
	}

	return loginResp.Token, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	token, err := c.bearerToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	token, err := c.bearerToken(ctx)
	if err != nil {
		return err
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(body))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// GetStoreItems fetches the flat store-items listing (store schema).
func (c *Client) GetStoreItems(ctx context.Context) ([]StoreItem, error) {
	var itemsResp StoreItemsResponse
	if err := c.get(ctx, "/store/items?ignoreCategories=true", &itemsResp); err != nil {
		return nil, err
	}
	return itemsResp.Artworks, nil
}

// SearchInventory fetches inventory summaries (catalogue schema),
// optionally restricted to in-stock items.
func (c *Client) SearchInventory(ctx context.Context, inStockOnly bool) ([]InventorySummary, error) {
	q := url.Values{}
	if inStockOnly {
		q.Set("inStock", "true")
	}
	path := "/inventory/search"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var searchResp SearchResponse
	if err := c.get(ctx, path, &searchResp); err != nil {
		return nil, err
	}
	return searchResp.Items, nil
}

// GetInventoryItem fetches detail-level data (price, images, artists)
// for a single inventory item.
func (c *Client) GetInventoryItem(ctx context.Context, id string) (*InventoryDetail, error) {
	var detail InventoryDetail
	if err := c.get(ctx, "/inventory/items/"+url.PathEscape(id), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreateCustomer creates a customer and returns its identifier.
func (c *Client) CreateCustomer(ctx context.Context, customer CustomerPayload) (string, error) {
	var created CreateCustomerResponse
	if err := c.post(ctx, "/customers", customer, &created); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("customer creation returned no id")
	}

	c.logger.Info("created customer",
		zap.String("customer_id", created.ID),
		zap.String("email", customer.Email),
	)
	return created.ID, nil
}

// CreateOrder creates an order referencing an existing customer and
// returns the new order identifier.
func (c *Client) CreateOrder(ctx context.Context, order OrderPayload) (string, error) {
	var created CreateOrderResponse
	if err := c.post(ctx, "/orders", order, &created); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("order creation returned no id")
	}

	c.logger.Info("created order",
		zap.String("order_id", created.ID),
		zap.String("customer_id", order.CustomerID),
	)
	return created.ID, nil
}

package webflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"artsync/internal/config"
	"artsync/internal/models"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const acceptVersion = "1.0.0"

// PublishError carries the HTTP status and body of a failed
// destination API call.
type PublishError struct {
	StatusCode int
	Body       string
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("API request failed: %d - %s", e.StatusCode, e.Body)
}

// RateLimited reports whether the error indicates throttling.
func (e *PublishError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests ||
		strings.Contains(strings.ToLower(e.Body), "rate limit")
}

// Client talks to the Webflow e-commerce API for one site.
type Client struct {
	baseURL    string
	siteID     string
	token      string
	currency   string
	httpClient *http.Client
	logger     *zap.Logger

	// limiter paces product creation so successive publishes respect
	// the destination rate limit.
	limiter    *rate.Limiter
	retryMax   int
	retryDelay time.Duration
}

func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	interval := cfg.PublishInterval
	if interval <= 0 {
		interval = time.Second
	}
	retryMax := cfg.PublishRetryMax
	if retryMax < 1 {
		retryMax = 1
	}

	return &Client{
		baseURL:  cfg.WebflowBaseURL,
		siteID:   cfg.WebflowSiteID,
		token:    cfg.WebflowToken,
		currency: cfg.Currency,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:     logger,
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		retryMax:   retryMax,
		retryDelay: cfg.PublishRetryDelay,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept-Version", acceptVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
	}
	return req, nil
}

// ListProducts fetches the site's existing products. The destination
// catalogue is the only durable sync state: whatever is already listed
// there is treated as already synced.
func (c *Client) ListProducts(ctx context.Context) ([]models.DestinationProduct, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/sites/"+c.siteID+"/products", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &PublishError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var listResp ProductListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	products := make([]models.DestinationProduct, len(listResp.Items))
	for i, item := range listResp.Items {
		products[i] = models.DestinationProduct{
			Name:   item.Product.Name,
			Artist: item.Product.Artist,
		}
	}
	return products, nil
}

// CreateProduct publishes one catalogue entry as a product with a
// single SKU and returns the new product id. Rate-limited responses
// are retried with exponential backoff up to the configured attempt
// cap; all other failures are returned immediately. The call is not
// idempotent: publishing the same entry twice creates two products.
func (c *Client) CreateProduct(ctx context.Context, entry models.CatalogueEntry) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	payload := c.buildProductRequest(entry)
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal product: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryDelay
	policy.RandomizationFactor = 0

	operation := func() (string, error) {
		id, err := c.doCreateProduct(ctx, jsonData)
		if err != nil {
			var pubErr *PublishError
			if errors.As(err, &pubErr) && pubErr.RateLimited() {
				c.logger.Warn("publish rate limited, backing off",
					zap.String("name", entry.Name),
					zap.Int("status", pubErr.StatusCode),
				)
				return "", err
			}
			return "", backoff.Permanent(err)
		}
		return id, nil
	}

	return backoff.RetryWithData(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.retryMax-1)), ctx))
}

func (c *Client) doCreateProduct(ctx context.Context, jsonData []byte) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/sites/"+c.siteID+"/products", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", &PublishError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var created CreateProductResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return created.Product.ID, nil
}

func (c *Client) buildProductRequest(entry models.CatalogueEntry) CreateProductRequest {
	slug := Slugify(entry.Name)

	return CreateProductRequest{
		Product: ProductEnvelope{
			Fields: ProductFields{
				Name:        entry.Name,
				Slug:        slug,
				Description: entry.Description,
				SKUProperties: []SKUProperty{
					{
						Name: "Original",
						Enum: []SKUPropertyValue{
							{Name: "Original", Slug: "original"},
						},
					},
				},
				Artist:    entry.Artist,
				Shippable: true,
			},
		},
		SKU: SKUEnvelope{
			Fields: SKUFields{
				Name:      entry.Name,
				Slug:      slug,
				SKUValues: map[string]string{},
				MainImage: entry.ImageURL,
				Price: Price{
					Unit:  c.currency,
					Value: entry.PriceMinorUnits,
				},
			},
		},
	}
}

// RegisterWebhook subscribes the given public URL to a site event and
// returns the subscription id. Called once at server startup.
func (c *Client) RegisterWebhook(ctx context.Context, triggerType, publicURL string) (string, error) {
	jsonData, err := json.Marshal(WebhookRegistration{
		TriggerType: triggerType,
		URL:         publicURL,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal registration: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/sites/"+c.siteID+"/webhooks", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", &PublishError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var created WebhookRegistrationResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Info("registered webhook",
		zap.String("trigger", triggerType),
		zap.String("url", publicURL),
		zap.String("webhook_id", created.ID),
	)
	return created.ID, nil
}

// Package shopworks submits push-order documents to the ShopWorks OnSite
// order-management API.
package shopworks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/clients"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/models"
)

// Client pushes orders to one OnSite installation.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	retrier    *clients.Retrier
	log        *logrus.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Logger  *logrus.Logger
}

// New creates a ShopWorks push client.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		retrier:    clients.NewRetrier(nil),
		log:        opts.Logger,
	}
}

// PushResult is the receiving system's answer to a push.
type PushResult struct {
	Success    bool   `json:"success"`
	ExtOrderID string `json:"extOrderId"`
	OrderID    string `json:"orderId,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Enabled reports whether a push target is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// PushOrder submits one order document. The transformation upstream is
// deterministic, so ExtOrderID doubles as the idempotency key: resubmitting
// the same quote replaces nothing on the receiving side.
func (c *Client) PushOrder(ctx context.Context, order *models.PushOrder) (*PushResult, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("shopworks push is not configured")
	}

	payload, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("encode push order: %w", err)
	}

	requestID := uuid.NewString()
	resp, err := c.retrier.DoHTTP(ctx, "push order", func(ctx context.Context) (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders/push", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Api-Key", c.apiKey)
		req.Header.Set("X-Request-ID", requestID)
		req.Header.Set("X-Idempotency-Key", order.ExtOrderID)
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read push response: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"extOrderId": order.ExtOrderID,
		"requestId":  requestID,
		"status":     resp.StatusCode,
		"lines":      len(order.LinesOE),
	}).Info("Pushed order to ShopWorks")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("shopworks push: status %d: %s", resp.StatusCode, string(body))
	}

	result := &PushResult{Success: true, ExtOrderID: order.ExtOrderID}
	if len(body) > 0 {
		// A non-JSON body is fine; the status code already said yes.
		_ = json.Unmarshal(body, result)
	}
	return result, nil
}

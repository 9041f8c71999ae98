// Package caspio is a minimal client for the Caspio table-records REST API
// (v2). The proxy's only persistence is Caspio tables, so every repository
// goes through this client.
package caspio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/clients"
)

// Client talks to one Caspio account's table-record endpoints. Token
// acquisition happens outside this client; it only attaches the bearer token
// it was given.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	pageSize    int
	rateLimiter *rate.Limiter
	retrier     *clients.Retrier
	log         *logrus.Logger
}

// Options configures a Client.
type Options struct {
	AccountDomain string // e.g. c3eku948.caspio.com
	AccessToken   string
	PageSize      int
	RateLimit     int // requests per second
	Timeout       time.Duration
	Logger        *logrus.Logger
}

// New creates a Caspio client.
func New(opts Options) *Client {
	if opts.PageSize <= 0 {
		opts.PageSize = 1000
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	return &Client{
		httpClient:  &http.Client{Timeout: opts.Timeout},
		baseURL:     "https://" + opts.AccountDomain + "/rest/v2",
		accessToken: opts.AccessToken,
		pageSize:    opts.PageSize,
		rateLimiter: rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
		retrier:     clients.NewRetrier(nil),
		log:         opts.Logger,
	}
}

// Query restricts a table-record operation.
type Query struct {
	Where   string
	Select  string
	OrderBy string
	Limit   int
}

func (q Query) values(pageNumber, pageSize int) url.Values {
	params := url.Values{}
	if q.Where != "" {
		params.Set("q.where", q.Where)
	}
	if q.Select != "" {
		params.Set("q.select", q.Select)
	}
	if q.OrderBy != "" {
		params.Set("q.orderBy", q.OrderBy)
	}
	if q.Limit > 0 {
		params.Set("q.limit", strconv.Itoa(q.Limit))
	}
	if pageNumber > 0 {
		params.Set("q.pageNumber", strconv.Itoa(pageNumber))
		params.Set("q.pageSize", strconv.Itoa(pageSize))
	}
	return params
}

// recordsEnvelope is Caspio's response wrapper.
type recordsEnvelope struct {
	Result          json.RawMessage `json:"Result"`
	RecordsAffected int             `json:"RecordsAffected"`
}

// GetRecords fetches all records of a table matching the query and decodes
// them into out (a pointer to a slice). Pagination is walked until a short
// page; Caspio caps a single page at 1000 rows.
func (c *Client) GetRecords(ctx context.Context, table string, q Query, out interface{}) error {
	var all []json.RawMessage
	for page := 1; ; page++ {
		body, err := c.doRequest(ctx, http.MethodGet, c.recordsPath(table), q.values(page, c.pageSize), nil)
		if err != nil {
			return err
		}
		var envelope recordsEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return fmt.Errorf("parse caspio response for %s: %w", table, err)
		}
		var rows []json.RawMessage
		if len(envelope.Result) > 0 {
			if err := json.Unmarshal(envelope.Result, &rows); err != nil {
				return fmt.Errorf("parse caspio rows for %s: %w", table, err)
			}
		}
		all = append(all, rows...)
		if len(rows) < c.pageSize || (q.Limit > 0 && len(all) >= q.Limit) {
			break
		}
	}
	if q.Limit > 0 && len(all) > q.Limit {
		all = all[:q.Limit]
	}

	merged, err := json.Marshal(all)
	if err != nil {
		return err
	}
	return json.Unmarshal(merged, out)
}

// InsertRecord inserts one record into a table.
func (c *Client) InsertRecord(ctx context.Context, table string, record interface{}) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record for %s: %w", table, err)
	}
	params := url.Values{"response": []string{"rows"}}
	_, err = c.doRequest(ctx, http.MethodPost, c.recordsPath(table), params, payload)
	return err
}

// UpdateRecords updates all records matching where and returns the affected
// row count.
func (c *Client) UpdateRecords(ctx context.Context, table, where string, record interface{}) (int, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return 0, fmt.Errorf("encode record for %s: %w", table, err)
	}
	params := url.Values{"q.where": []string{where}}
	body, err := c.doRequest(ctx, http.MethodPut, c.recordsPath(table), params, payload)
	if err != nil {
		return 0, err
	}
	var envelope recordsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return 0, fmt.Errorf("parse caspio response for %s: %w", table, err)
	}
	return envelope.RecordsAffected, nil
}

// DeleteRecords deletes all records matching where and returns the affected
// row count.
func (c *Client) DeleteRecords(ctx context.Context, table, where string) (int, error) {
	params := url.Values{"q.where": []string{where}}
	body, err := c.doRequest(ctx, http.MethodDelete, c.recordsPath(table), params, nil)
	if err != nil {
		return 0, err
	}
	var envelope recordsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return 0, fmt.Errorf("parse caspio response for %s: %w", table, err)
	}
	return envelope.RecordsAffected, nil
}

func (c *Client) recordsPath(table string) string {
	return "/tables/" + url.PathEscape(table) + "/records"
}

func (c *Client) doRequest(ctx context.Context, method, path string, params url.Values, payload []byte) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	resp, err := c.retrier.DoHTTP(ctx, method+" "+path, func(ctx context.Context) (*http.Response, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read caspio response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("Caspio request failed")
		return nil, fmt.Errorf("caspio %s %s: status %d: %s", method, path, resp.StatusCode, truncate(string(body), 200))
	}
	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

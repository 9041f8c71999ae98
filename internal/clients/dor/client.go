// Package dor queries the Washington Department of Revenue address-rates API.
// The API's text output format is a single line of key=value pairs; parsing
// is a pair of regexes, as fragile as that sounds, which is why every caller
// sits behind a cache and a fallback table.
package dor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"
)

// Client fetches combined sales-tax rates by address or ZIP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a DOR client against the given AddressRates endpoint.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// RateResponse is a parsed AddressRates answer.
type RateResponse struct {
	Rate         float64
	LocationCode string
	ResultCode   int
}

var (
	rateRe     = regexp.MustCompile(`Rate=([0-9.]+)`)
	locationRe = regexp.MustCompile(`LocationCode=([0-9]+)`)
	resultRe   = regexp.MustCompile(`ResultCode=([0-9]+)`)
)

// LookupRate queries the rate for an address. Only zip is mandatory; address
// and city sharpen the match. ResultCode 0 and 1 are address-level and
// ZIP-level answers; anything above 2 means the DOR could not place the
// address and the caller should fall back.
func (c *Client) LookupRate(ctx context.Context, address, city, zip string) (*RateResponse, error) {
	params := url.Values{}
	params.Set("output", "text")
	params.Set("addr", address)
	params.Set("city", city)
	params.Set("zip", zip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dor lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dor lookup: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return nil, fmt.Errorf("dor lookup: %w", err)
	}
	return ParseRateResponse(string(body))
}

// ParseRateResponse extracts the rate fields from the text-format body.
func ParseRateResponse(body string) (*RateResponse, error) {
	rateMatch := rateRe.FindStringSubmatch(body)
	if rateMatch == nil {
		return nil, fmt.Errorf("dor response has no rate: %q", body)
	}
	rate, err := strconv.ParseFloat(rateMatch[1], 64)
	if err != nil {
		return nil, fmt.Errorf("dor rate unparseable: %q", rateMatch[1])
	}

	out := &RateResponse{Rate: rate}
	if m := locationRe.FindStringSubmatch(body); m != nil {
		out.LocationCode = m[1]
	}
	if m := resultRe.FindStringSubmatch(body); m != nil {
		out.ResultCode, _ = strconv.Atoi(m[1])
	}
	if out.ResultCode > 2 {
		return nil, fmt.Errorf("dor could not resolve address (ResultCode=%d)", out.ResultCode)
	}
	return out, nil
}

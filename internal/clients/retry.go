// Package clients holds the outbound HTTP clients for Caspio, ShopWorks, and
// the WA Department of Revenue, plus the retry policy they share.
package clients

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

// RetryConfig defines retry behavior for outbound API calls.
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	BackoffFactor  float64
	Jitter         float64 // random jitter factor (0-1)
	RetryableCodes []int
}

// DefaultRetryConfig returns the retry policy used against both vendor APIs.
// Caspio rate-limits aggressively on the free tier, so 429 must be retryable.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     15 * time.Second,
		BackoffFactor:  2.0,
		Jitter:         0.1,
		RetryableCodes: []int{
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
	}
}

// Retrier executes HTTP operations with exponential backoff.
type Retrier struct {
	config *RetryConfig
}

// NewRetrier creates a retrier, falling back to the default policy when
// config is nil.
func NewRetrier(config *RetryConfig) *Retrier {
	if config == nil {
		config = DefaultRetryConfig()
	}
	return &Retrier{config: config}
}

func (r *Retrier) retryable(statusCode int, err error) bool {
	if err != nil && statusCode == 0 {
		// Network-level failure, always worth another attempt.
		return true
	}
	for _, code := range r.config.RetryableCodes {
		if statusCode == code {
			return true
		}
	}
	return false
}

func (r *Retrier) backoff(attempt int, retryAfter time.Duration) time.Duration {
	if retryAfter > 0 {
		return retryAfter
	}
	backoff := float64(r.config.InitialBackoff) * math.Pow(r.config.BackoffFactor, float64(attempt))
	if r.config.Jitter > 0 {
		backoff += backoff * r.config.Jitter * (rand.Float64()*2 - 1)
	}
	if backoff > float64(r.config.MaxBackoff) {
		backoff = float64(r.config.MaxBackoff)
	}
	return time.Duration(backoff)
}

// ParseRetryAfter extracts the Retry-After duration from a response, if any.
func ParseRetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}
	retryAfter := resp.Header.Get("Retry-After")
	if retryAfter == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}
	return 0
}

// DoHTTP runs fn until it succeeds, the response is non-retryable, retries
// are exhausted, or the context is done. The caller owns the returned
// response body.
func (r *Retrier) DoHTTP(ctx context.Context, operation string, fn func(ctx context.Context) (*http.Response, error)) (*http.Response, error) {
	var lastResp *http.Response
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		resp, err := fn(ctx)
		lastResp, lastErr = resp, err

		statusCode := 0
		var retryAfter time.Duration
		if err == nil {
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return resp, nil
			}
			statusCode = resp.StatusCode
			retryAfter = ParseRetryAfter(resp)
		}

		if !r.retryable(statusCode, err) || attempt >= r.config.MaxRetries {
			break
		}
		if resp != nil {
			resp.Body.Close()
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt, retryAfter)):
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%s: %w", operation, lastErr)
	}
	return lastResp, nil
}

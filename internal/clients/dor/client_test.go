package dor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRateResponse(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantErr      bool
		wantRate     float64
		wantLocation string
	}{
		{
			name:         "address level match",
			body:         "LocationCode=2724 Rate=0.094 ResultCode=0 debughint=addr",
			wantRate:     0.094,
			wantLocation: "2724",
		},
		{
			name:         "zip level match",
			body:         "LocationCode=1726 Rate=0.101 ResultCode=2",
			wantRate:     0.101,
			wantLocation: "1726",
		},
		{
			name:    "address not found",
			body:    "LocationCode=-1 Rate=-1 ResultCode=3",
			wantErr: true,
		},
		{
			name:    "no rate in body",
			body:    "Invalid ZIP",
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ParseRateResponse(tt.body)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRate, resp.Rate)
			assert.Equal(t, tt.wantLocation, resp.LocationCode)
		})
	}
}

func TestLookupRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text", r.URL.Query().Get("output"))
		assert.Equal(t, "98354", r.URL.Query().Get("zip"))
		w.Write([]byte("LocationCode=2724 Rate=0.094 ResultCode=0"))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	resp, err := client.LookupRate(context.Background(), "2025 Freeman Rd E", "Milton", "98354")
	require.NoError(t, err)
	assert.Equal(t, 0.094, resp.Rate)
	assert.Equal(t, "2724", resp.LocationCode)
	assert.Equal(t, 0, resp.ResultCode)
}

func TestLookupRateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	_, err := client.LookupRate(context.Background(), "", "", "98354")
	assert.Error(t, err)
}

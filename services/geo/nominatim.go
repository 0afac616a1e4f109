package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ReverseGeocoder turns coordinates into an address
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (Address, error)
}

type nominatimResponse struct {
	Address *Address `json:"address"`
}

// NominatimClient queries an OpenStreetMap Nominatim reverse endpoint
type NominatimClient struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

// NewNominatimClient creates a reverse geocoder. Nominatim's usage policy
// requires an identifying User-Agent.
func NewNominatimClient(endpoint, userAgent string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		endpoint:  endpoint,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Reverse looks up the address of a coordinate pair. A response without an
// address object yields an empty Address, not an error.
func (n *NominatimClient) Reverse(ctx context.Context, lat, lng float64) (Address, error) {
	u, err := url.Parse(n.endpoint)
	if err != nil {
		return Address{}, fmt.Errorf("invalid reverse geocode url: %w", err)
	}
	q := u.Query()
	q.Set("format", "json")
	q.Set("lat", formatFloat(lat))
	q.Set("lon", formatFloat(lng))
	q.Set("addressdetails", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Address{}, fmt.Errorf("failed to build reverse geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("%w: reverse geocode request: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Address{}, fmt.Errorf("%w: reverse geocode returned status %d", ErrLookupFailed, resp.StatusCode)
	}

	var result nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Address{}, fmt.Errorf("%w: failed to decode reverse geocode response: %v", ErrLookupFailed, err)
	}

	if result.Address == nil {
		return Address{}, nil
	}
	return *result.Address, nil
}

package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// IPLocation is the subset of an ipapi.co response we use
type IPLocation struct {
	IP          string  `json:"ip"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	CountryName string  `json:"country_name"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Error       bool    `json:"error,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

// IPLocator approximates a location from a network address
type IPLocator interface {
	Locate(ctx context.Context, ip string) (IPLocation, error)
}

// IPAPIClient queries ipapi.co (or a compatible service)
type IPAPIClient struct {
	baseURL string
	client  *http.Client
}

func NewIPAPIClient(baseURL string, timeout time.Duration) *IPAPIClient {
	return &IPAPIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Locate looks up ip. Empty, private and loopback addresses use the service's
// own-address endpoint.
func (c *IPAPIClient) Locate(ctx context.Context, ip string) (IPLocation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.lookupURL(ip), nil)
	if err != nil {
		return IPLocation{}, fmt.Errorf("failed to build ip lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return IPLocation{}, fmt.Errorf("%w: ip lookup request: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return IPLocation{}, fmt.Errorf("%w: ip lookup returned status %d", ErrLookupFailed, resp.StatusCode)
	}

	var loc IPLocation
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return IPLocation{}, fmt.Errorf("%w: failed to decode ip lookup response: %v", ErrLookupFailed, err)
	}
	if loc.Error {
		return IPLocation{}, fmt.Errorf("%w: ip lookup error: %s", ErrLookupFailed, loc.Reason)
	}
	return loc, nil
}

func (c *IPAPIClient) lookupURL(ip string) string {
	if !isPublicIP(ip) {
		return c.baseURL + "/json/"
	}
	return c.baseURL + "/" + ip + "/json/"
}

func isPublicIP(ip string) bool {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return false
	}
	return !(parsed.IsPrivate() || parsed.IsLoopback() || parsed.IsUnspecified() || parsed.IsLinkLocalUnicast())
}

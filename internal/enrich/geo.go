package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Location is a resolved geographic position. Fields degrade to
// UnknownLabel independently of each other.
type Location struct {
	City    string
	Country string
}

// GeoClient resolves city/country for an address via an ipapi.co style
// HTTP endpoint. Lookups are best-effort: any transport, status or
// decoding failure yields UnknownLabel fields, never an error.
type GeoClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewGeoClient creates a GeoClient against baseURL. The timeout bounds
// the whole lookup so a slow upstream cannot stall a click worker.
func NewGeoClient(baseURL string, timeout time.Duration, logger *zap.Logger) *GeoClient {
	return &GeoClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type geoResponse struct {
	City    string `json:"city"`
	Country string `json:"country_name"`
}

// Lookup resolves the location for ip. An empty ip queries the
// service for the caller's own egress address, which is what the
// service sees when no client address was forwarded.
func (g *GeoClient) Lookup(ctx context.Context, ip string) Location {
	unknown := Location{City: UnknownLabel, Country: UnknownLabel}

	url := g.baseURL + "/json"
	if ip != "" {
		url = fmt.Sprintf("%s/%s/json", g.baseURL, ip)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		g.logger.Debug("geo: build request failed", zap.Error(err))
		return unknown
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Debug("geo: lookup failed", zap.Error(err))
		return unknown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Debug("geo: unexpected status", zap.Int("status", resp.StatusCode))
		return unknown
	}

	var body geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		g.logger.Debug("geo: decode failed", zap.Error(err))
		return unknown
	}

	loc := Location{City: body.City, Country: body.Country}
	if loc.City == "" {
		loc.City = UnknownLabel
	}
	if loc.Country == "" {
		loc.Country = UnknownLabel
	}
	return loc
}

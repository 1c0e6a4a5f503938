// Package enrich derives device and geographic labels from the raw
// request context of a redirect. It never returns errors: every failure
// degrades to the "Unknown" sentinel so a click record can always be
// written.
package enrich

import (
	"context"

	"go.uber.org/zap"
)

// Visitor carries the labels stored on a click record.
type Visitor struct {
	Device  string
	City    string
	Country string
}

// GeoLookup resolves an address to a location, degrading to Unknown
// fields on failure.
type GeoLookup interface {
	Lookup(ctx context.Context, ip string) Location
}

// Enricher combines User-Agent parsing with a geo lookup.
type Enricher struct {
	geo    GeoLookup
	logger *zap.Logger
}

// NewEnricher creates an Enricher backed by geo.
func NewEnricher(geo GeoLookup, logger *zap.Logger) *Enricher {
	return &Enricher{geo: geo, logger: logger}
}

// Enrich derives device and location labels for one click. The geo
// call blocks up to the client's timeout; callers must not be on a
// response path.
func (e *Enricher) Enrich(ctx context.Context, rawUA, clientIP string) Visitor {
	loc := e.geo.Lookup(ctx, clientIP)
	return Visitor{
		Device:  DeviceLabel(rawUA),
		City:    loc.City,
		Country: loc.Country,
	}
}

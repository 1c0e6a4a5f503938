package model

import "time"

// Click is one recorded traversal of a short link. Rows are append-only:
// nothing in the application updates or deduplicates them.
type Click struct {
	ID      uint      `json:"id"`
	URLID   uint      `json:"url_id"`
	City    string    `json:"city"`
	Device  string    `json:"device"`
	Country string    `json:"country"`
	Created time.Time `json:"created_at"`
}

// ClickEvent is the raw request context captured on the redirect path,
// before enrichment. ClientIP may be empty when the request carried no
// forwarded address; the geo lookup then resolves the egress address.
type ClickEvent struct {
	URLID     uint
	UserAgent string
	ClientIP  string
}

// URLAnalytics is the dashboard aggregate for a single link.
type URLAnalytics struct {
	URLObject
	TotalClicks  int64   `json:"total_clicks"`
	ClickDetails []Click `json:"click_details"`
}

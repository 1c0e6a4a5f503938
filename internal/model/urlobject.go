package model

import "time"

// URLObject is a stored mapping from a short code to its destination.
// ShortURL holds the bare code; the shareable address is BaseURL + "/" + ShortURL.
type URLObject struct {
	ID          uint      `json:"id"`
	OriginalURL string    `json:"original_url"`
	ShortURL    string    `json:"short_url"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title,omitempty"`
	QRCode      string    `json:"qr_code"`
	Created     time.Time `json:"created_at"`
}

package util

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// shortCodeBytes is the entropy behind a short code; 3 bytes encode to
// 6 hex characters, matching the shape of existing codes in the wild.
const shortCodeBytes = 3

// qrSize is the edge length in pixels of generated QR images.
const qrSize = 300

// GenerateShortCode returns a random 6-character hex short code.
func GenerateShortCode() (string, error) {
	buf := make([]byte, shortCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate short code: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// QRCodeDataURL renders url as a PNG QR code (high error correction)
// and returns it as a base64 data URL the dashboard can embed directly.
func QRCodeDataURL(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.High, qrSize)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

package enrich

import "github.com/mileusna/useragent"

// UnknownLabel is the sentinel stored whenever a field cannot be derived.
const UnknownLabel = "Unknown"

// DeviceLabel extracts an operating-system name from a raw User-Agent
// string. Anything unparseable collapses to UnknownLabel.
func DeviceLabel(rawUA string) string {
	if rawUA == "" {
		return UnknownLabel
	}
	ua := useragent.Parse(rawUA)
	if ua.OS == "" {
		return UnknownLabel
	}
	return ua.OS
}

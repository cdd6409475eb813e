package services

import "strings"

// ensureProtocol turns bare host links into absolute https URLs. Empty
// input stays empty so optional fields remain optional.
func ensureProtocol(url string) string {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return trimmed
	}
	return "https://" + trimmed
}

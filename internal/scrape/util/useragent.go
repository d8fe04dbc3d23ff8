package util

import browser "github.com/EDDYCJY/fake-useragent"

const fallbackUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// BrowserUA returns a desktop browser user agent. When override is set (from
// config) it wins; otherwise a random real one, with a fixed fallback in case
// the UA list cannot be refreshed.
func BrowserUA(override string) string {
	if override != "" {
		return override
	}
	if ua := browser.Computer(); ua != "" {
		return ua
	}
	return fallbackUA
}

// Package identity derives display identity (brand name, logo URL) from a
// raw website URL. This package sits at the bottom of the dependency graph:
// nothing here fails, and unparseable input degrades to best-effort string
// handling.
package identity

import (
	"fmt"
	"net/url"
	"strings"
)

// faviconService is the public favicon lookup, parameterized by hostname at
// a fixed pixel size.
const faviconService = "https://www.google.com/s2/favicons?domain=%s&sz=128"

// DeriveBrand extracts a short brand name from a website URL.
// "https://www.example.com/page" yields "example". Input without a parseable
// hostname is lower-cased and truncated at the first dot, so "not a url"
// comes back unchanged (lower-cased).
func DeriveBrand(rawURL string) string {
	if host := Hostname(rawURL); host != "" {
		host = strings.TrimPrefix(host, "www.")
		labels := strings.Split(host, ".")
		if len(labels) >= 2 {
			return labels[0]
		}
		return host
	}

	lower := strings.ToLower(rawURL)
	if i := strings.Index(lower, "."); i >= 0 {
		return lower[:i]
	}
	return lower
}

// DeriveLogoURL returns a favicon-service URL for the site's hostname, or
// the empty string when the input has no parseable hostname.
func DeriveLogoURL(rawURL string) string {
	host := Hostname(rawURL)
	if host == "" {
		return ""
	}
	return fmt.Sprintf(faviconService, host)
}

// Hostname returns the lower-cased hostname of rawURL, or "" when rawURL is
// not an absolute URL with a host component.
func Hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

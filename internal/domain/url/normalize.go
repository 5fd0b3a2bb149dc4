// Package url provides URL parsing and classification for the browser shell.
package url

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformedURL is returned by ParseWindowURL for input that cannot be
// loaded into a content surface.
var ErrMalformedURL = errors.New("malformed url")

// knownSchemes are prefixes treated as explicit URLs.
var knownSchemes = []string{"http://", "https://", "file://", "about:"}

func hasKnownScheme(input string) bool {
	lower := strings.ToLower(input)
	for _, s := range knownSchemes {
		if strings.HasPrefix(lower, s) {
			return true
		}
	}
	return false
}

// Normalize adds https:// prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	if input == "" || hasKnownScheme(input) {
		return input
	}
	if strings.Contains(input, ".") && !strings.Contains(input, " ") {
		return "https://" + input
	}
	return input
}

// LooksLikeURL checks if the input appears to be a URL rather than a search query.
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if hasKnownScheme(input) {
		return true
	}
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}

// ParseWindowURL validates an address for a new content surface.
// It must be absolute; http and https additionally need a host.
func ParseWindowURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedURL, err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("%w: missing scheme in %q", ErrMalformedURL, raw)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return nil, fmt.Errorf("%w: missing host in %q", ErrMalformedURL, raw)
		}
	case "file", "about", "data":
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrMalformedURL, u.Scheme)
	}
	return u, nil
}

// ExtractDomain extracts the host from a URL string with "www." stripped.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

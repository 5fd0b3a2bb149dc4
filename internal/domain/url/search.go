package url

import (
	"net/url"
	"strings"
)

// ParseBangShortcut extracts a bang shortcut from input.
// Input must start with "!" followed by shortcut key and a space.
// Returns (shortcutKey, query, found).
//
// Examples:
//
//	"!g golang"      → ("g", "golang", true)
//	"!gh repo name"  → ("gh", "repo name", true)
//	"!g"             → ("", "", false)
//	"test !g"        → ("", "", false)
func ParseBangShortcut(input string) (shortcut, query string, found bool) {
	if !strings.HasPrefix(input, "!") {
		return "", "", false
	}

	spaceIdx := strings.Index(input, " ")
	if spaceIdx == -1 || spaceIdx == 1 {
		return "", "", false
	}

	shortcut = input[1:spaceIdx]
	query = strings.TrimSpace(input[spaceIdx+1:])
	if query == "" {
		return "", "", false
	}
	return shortcut, query, true
}

// BuildSearchURL resolves omnibox input into a URL.
// Bang shortcuts win, then URL-like input, then the default search template.
// Templates carry a single %s which receives the query-escaped text.
func BuildSearchURL(input string, shortcutURLs map[string]string, defaultSearch string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if key, query, found := ParseBangShortcut(input); found {
		if tmpl, ok := shortcutURLs[key]; ok {
			return fillTemplate(tmpl, query)
		}
	}

	if LooksLikeURL(input) {
		return Normalize(input)
	}

	if defaultSearch != "" {
		return fillTemplate(defaultSearch, input)
	}
	return input
}

func fillTemplate(tmpl, query string) string {
	return strings.Replace(tmpl, "%s", url.QueryEscape(query), 1)
}

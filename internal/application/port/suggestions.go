package port

import "context"

// SuggestionProvider fetches query completions from a remote service.
type SuggestionProvider interface {
	Suggest(ctx context.Context, query string) ([]string, error)
}

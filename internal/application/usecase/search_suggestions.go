package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/logging"
)

// GetSearchSuggestionsUseCase fetches query completions for the launcher.
type GetSearchSuggestionsUseCase struct {
	provider port.SuggestionProvider
	settings SettingsFunc
}

// NewGetSearchSuggestionsUseCase creates a new suggestions use case.
func NewGetSearchSuggestionsUseCase(provider port.SuggestionProvider, settings SettingsFunc) *GetSearchSuggestionsUseCase {
	return &GetSearchSuggestionsUseCase{
		provider: provider,
		settings: settings,
	}
}

// Execute returns at most MaxSuggestions completions for query.
// A blank query returns an empty list without calling the provider.
func (uc *GetSearchSuggestionsUseCase) Execute(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}

	settings := uc.settings.get()
	if !settings.SuggestionsEnabled || uc.provider == nil {
		return nil, ErrSuggestionsDisabled
	}

	suggestions, err := uc.provider.Suggest(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch suggestions: %w", err)
	}

	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
		if settings.MaxSuggestions > 0 && len(out) == settings.MaxSuggestions {
			break
		}
	}

	logging.FromContext(ctx).Debug().
		Str("query", query).
		Int("count", len(out)).
		Msg("fetched search suggestions")

	return out, nil
}

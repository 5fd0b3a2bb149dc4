package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/meikai/internal/domain/url"
	"github.com/bnema/meikai/internal/logging"
)

// ResolveInputUseCase turns omnibox text into a loadable URL.
type ResolveInputUseCase struct {
	settings SettingsFunc
}

// NewResolveInputUseCase creates a new input resolver.
func NewResolveInputUseCase(settings SettingsFunc) *ResolveInputUseCase {
	return &ResolveInputUseCase{settings: settings}
}

// Execute resolves bang shortcuts, URL-like input and plain search text,
// in that order. The result always passes ParseWindowURL.
func (uc *ResolveInputUseCase) Execute(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidURL)
	}

	settings := uc.settings.get()
	resolved := url.BuildSearchURL(input, settings.SearchShortcuts, settings.DefaultSearch)

	if _, err := url.ParseWindowURL(resolved); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	logging.FromContext(ctx).Debug().
		Str("input", input).
		Str("url", resolved).
		Msg("resolved omnibox input")

	return resolved, nil
}

package usecase_test

import (
	"testing"

	"github.com/bnema/meikai/internal/application/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInputUseCase(t *testing.T) {
	settings := usecase.DefaultShellSettings()
	settings.SearchShortcuts = map[string]string{"gh": "https://github.com/search?q=%s"}
	uc := usecase.NewResolveInputUseCase(usecase.StaticSettings(settings))

	tests := []struct {
		input string
		want  string
	}{
		{"example.com", "https://example.com"},
		{"http://localhost:8080", "http://localhost:8080"},
		{"!gh meikai", "https://github.com/search?q=meikai"},
		{"rust borrow checker", "https://www.google.com/search?q=rust+borrow+checker"},
		{"  golang  ", "https://www.google.com/search?q=golang"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := uc.Execute(testContext(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveInputUseCase_Empty(t *testing.T) {
	uc := usecase.NewResolveInputUseCase(nil)

	_, err := uc.Execute(testContext(), "  ")
	require.ErrorIs(t, err, usecase.ErrInvalidURL)
}

func TestResolveInputUseCase_NoSearchEngine(t *testing.T) {
	settings := usecase.DefaultShellSettings()
	settings.DefaultSearch = ""
	uc := usecase.NewResolveInputUseCase(usecase.StaticSettings(settings))

	_, err := uc.Execute(testContext(), "plain words")
	require.ErrorIs(t, err, usecase.ErrInvalidURL)
}

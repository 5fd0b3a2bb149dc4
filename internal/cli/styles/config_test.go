package styles_test

import (
	"errors"
	"testing"

	"github.com/bnema/meikai/internal/cli/styles"
	"github.com/bnema/meikai/internal/domain/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRenderer_RenderPaths(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderPaths("/tmp/meikai/config.toml", false, "/tmp/meikai/config.schema.json", "/tmp/meikai/logs")
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "config.schema.json")
	require.Contains(t, out, "/tmp/meikai/logs")
	require.Contains(t, out, "created on first run")

	out = r.RenderPaths("/tmp/meikai/config.toml", true, "/tmp/meikai/config.schema.json", "/tmp/meikai/logs")
	assert.NotContains(t, out, "created on first run")
}

func TestConfigRenderer_Messages(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderWritten("schema", "/tmp/x/config.schema.json"), "config.schema.json")
	assert.Contains(t, r.RenderExists("/tmp/x/config.toml"), "--force")
	assert.Contains(t, r.RenderError(errors.New("bad key")), "bad key")
}

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme())
	info := build.Info{
		Version:   "v0.1.0",
		Commit:    "abc1234def",
		BuildDate: "2026-01-01",
		GoVersion: "go1.25.3",
	}

	out := r.Render(styles.AboutInfo{Build: info, Native: true})
	for _, want := range []string{"meikai", "v0.1.0", "abc1234def", "2026-01-01", "go1.25.3", "WebKitGTK", build.RepoURL()} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "webkit_cgo")

	out = r.Render(styles.AboutInfo{Build: info})
	assert.Contains(t, out, "-tags webkit_cgo")
}

func TestNewThemeFromPalette_FallsBack(t *testing.T) {
	theme := styles.NewThemeFromPalette(styles.Palette{Accent: "#ff0000"})

	assert.Equal(t, "#ff0000", string(theme.Accent))
	assert.Equal(t, styles.DefaultDarkPalette().Text, string(theme.Text))
	assert.Equal(t, theme.Accent, theme.Success)
}

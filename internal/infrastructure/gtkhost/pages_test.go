package gtkhost

import (
	"testing"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPage_TitleBar(t *testing.T) {
	html, err := renderPage(port.SurfaceSpec{
		Label:        "titlebar-1",
		WindowLabel:  "window-1",
		Kind:         port.SurfaceTitleBar,
		URL:          "https://example.com/?q=<b>",
		ContentLabel: "content-1",
	}, "Meikai Browser")
	require.NoError(t, err)

	assert.Contains(t, html, "<title>window-1</title>")
	assert.Contains(t, html, `"contentLabel":"content-1"`)
	assert.Contains(t, html, "window.__meikaiResolve")
	assert.Contains(t, html, `meikai.on("url-changed"`)
	assert.NotContains(t, html, "<b>", "page data must be escaped")
}

func TestRenderPage_Panel(t *testing.T) {
	html, err := renderPage(port.SurfaceSpec{
		Label:       "main-panel",
		WindowLabel: "main",
		Kind:        port.SurfacePanel,
	}, "Meikai Browser")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Meikai Browser</h1>")
	assert.Contains(t, html, `meikai.invoke("resolveInput"`)
	assert.Contains(t, html, `meikai.invoke("getSearchSuggestions"`)
	assert.Contains(t, html, `meikai.invoke("getQuickLinks"`)
	assert.Contains(t, html, `meikai.invoke("toggleStar"`)
	assert.Contains(t, html, `meikai.on("bookmarks-changed"`)
}

func TestRenderPage_ContentHasNoPage(t *testing.T) {
	_, err := renderPage(port.SurfaceSpec{Kind: port.SurfaceContent}, "x")
	assert.Error(t, err)
}

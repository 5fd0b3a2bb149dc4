package styles

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders the config file, schema and log locations. A
// missing config file gets a first-run hint.
func (r *ConfigRenderer) RenderPaths(configPath string, exists bool, schemaPath, logDir string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	out := fmt.Sprintf(
		"\n  %s Config %s\n  %s Schema %s\n  %s Logs   %s\n",
		iconStyle.Render(IconConfig), pathStyle.Render(configPath),
		iconStyle.Render(IconSchema), pathStyle.Render(schemaPath),
		iconStyle.Render(IconLogs), pathStyle.Render(logDir),
	)
	if !exists {
		out += fmt.Sprintf("  %s %s\n",
			iconStyle.Render(IconInfo),
			r.theme.Subtle.Render("Config file will be created on first run with all defaults."),
		)
	}
	return out
}

// RenderWritten renders the success message after a file was written.
func (r *ConfigRenderer) RenderWritten(what, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Wrote %s to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(what),
		r.theme.Subtle.Render(path),
	)
}

// RenderExists renders the refusal to overwrite an existing file.
func (r *ConfigRenderer) RenderExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	return fmt.Sprintf(
		"\n  %s %s already exists, use --force to overwrite\n",
		iconStyle.Render(IconWarning),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

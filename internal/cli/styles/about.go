package styles

import (
	"strings"

	"github.com/bnema/meikai/internal/domain/build"
	"github.com/charmbracelet/lipgloss"
)

// meikaiMark is drawn left of the build facts.
const meikaiMark = `╭─────╮
│ ▚ ▞ │
│ ▐▀▌ │
│ ▌ ▐ │
╰─────╯`

// AboutInfo is what `meikai about` reports.
type AboutInfo struct {
	Build build.Info
	// Native reports whether the GTK/WebKit backend is compiled in.
	Native bool
}

type aboutRow struct {
	icon  string
	key   string
	value string
}

// AboutRenderer prints the mark next to an aligned table of build facts.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render lays out the mark and the fact table side by side.
func (r *AboutRenderer) Render(info AboutInfo) string {
	mark := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		Margin(1, 3, 0, 2).
		Render(meikaiMark)

	facts := []string{r.theme.Title.Render("meikai") + " " + r.theme.Subtle.Render(info.Build.Short())}
	facts = append(facts, r.table(r.rows(info))...)
	facts = append(facts, "", r.theme.Subtle.Render(build.RepoURL()))

	return lipgloss.JoinHorizontal(lipgloss.Top, mark, strings.Join(facts, "\n"))
}

func (r *AboutRenderer) rows(info AboutInfo) []aboutRow {
	backend := r.theme.SuccessStyle.Render("GTK4 + WebKitGTK 6")
	if !info.Native {
		backend = r.theme.WarningStyle.Render("not compiled in (-tags webkit_cgo)")
	}
	return []aboutRow{
		{IconVersion, "version", r.theme.Highlight.Render(info.Build.Version)},
		{IconGitBranch, "commit", r.theme.Highlight.Render(info.Build.Commit)},
		{IconCalendar, "built", r.theme.Highlight.Render(info.Build.BuildDate)},
		{IconGo, "go", r.theme.Highlight.Render(info.Build.GoVersion)},
		{IconGlobe, "backend", backend},
		{IconHeart, "authors", r.theme.Normal.Render(strings.Join(build.Contributors(), ", "))},
	}
}

// table pads keys to a common width so values line up.
func (r *AboutRenderer) table(rows []aboutRow) []string {
	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row.key))
	}
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	key := r.theme.Subtle.Width(width + 1)

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, icon.Render(row.icon)+" "+key.Render(row.key)+" "+row.value)
	}
	return out
}

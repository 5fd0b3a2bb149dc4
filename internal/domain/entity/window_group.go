// Package entity defines domain entities for the browser shell.
package entity

import "strings"

// Label prefixes for the three members of a window group.
const (
	WindowLabelPrefix   = "window-"
	TitleBarLabelPrefix = "titlebar-"
	ContentLabelPrefix  = "content-"
)

// LogicalWindowID identifies one window group for its whole lifetime.
// IDs are generated at creation and never reused.
type LogicalWindowID string

// TargetKind tells which member of a window group a label addresses.
type TargetKind int

const (
	// TargetUnknown is a label that matches no known prefix.
	TargetUnknown TargetKind = iota
	// TargetWindow addresses the top-level window.
	TargetWindow
	// TargetTitleBar addresses the title-bar surface.
	TargetTitleBar
	// TargetContent addresses the content surface.
	TargetContent
)

// String returns a human-readable representation of the target kind.
func (k TargetKind) String() string {
	switch k {
	case TargetWindow:
		return "window"
	case TargetTitleBar:
		return "titlebar"
	case TargetContent:
		return "content"
	default:
		return "unknown"
	}
}

// ParseTargetKind converts the wire name of a target kind.
// Empty or unrecognised names return TargetUnknown.
func ParseTargetKind(s string) TargetKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "window":
		return TargetWindow
	case "titlebar", "title-bar":
		return TargetTitleBar
	case "content":
		return TargetContent
	default:
		return TargetUnknown
	}
}

// WindowGroup is one window plus its title-bar and content surfaces.
// All labels are derived from the ID; nothing else is stored.
type WindowGroup struct {
	ID LogicalWindowID
}

// NewWindowGroup returns the group derived from id.
func NewWindowGroup(id LogicalWindowID) WindowGroup {
	return WindowGroup{ID: id}
}

// WindowLabel returns the label of the top-level window.
func (g WindowGroup) WindowLabel() string {
	return WindowLabelPrefix + string(g.ID)
}

// TitleBarLabel returns the label of the title-bar surface.
func (g WindowGroup) TitleBarLabel() string {
	return TitleBarLabelPrefix + string(g.ID)
}

// ContentLabel returns the label of the content surface.
func (g WindowGroup) ContentLabel() string {
	return ContentLabelPrefix + string(g.ID)
}

// Label returns the label of the given member.
func (g WindowGroup) Label(kind TargetKind) string {
	switch kind {
	case TargetTitleBar:
		return g.TitleBarLabel()
	case TargetContent:
		return g.ContentLabel()
	default:
		return g.WindowLabel()
	}
}

// LabelRef is a parsed label.
type LabelRef struct {
	Kind  TargetKind
	ID    LogicalWindowID
	Label string
}

// Group returns the window group the label belongs to.
// ok is false when the label matched no known prefix.
func (r LabelRef) Group() (WindowGroup, bool) {
	if r.Kind == TargetUnknown || r.ID == "" {
		return WindowGroup{}, false
	}
	return NewWindowGroup(r.ID), true
}

// ParseLabel splits a label into its kind and logical window ID.
func ParseLabel(label string) LabelRef {
	for _, p := range []struct {
		prefix string
		kind   TargetKind
	}{
		{WindowLabelPrefix, TargetWindow},
		{TitleBarLabelPrefix, TargetTitleBar},
		{ContentLabelPrefix, TargetContent},
	} {
		if id, ok := strings.CutPrefix(label, p.prefix); ok && id != "" {
			return LabelRef{Kind: p.kind, ID: LogicalWindowID(id), Label: label}
		}
	}
	return LabelRef{Kind: TargetUnknown, Label: label}
}

// ParentOf returns the window label owning any member label.
// A label matching no known prefix is returned unchanged and treated
// as a window label already.
func ParentOf(label string) string {
	ref := ParseLabel(label)
	group, ok := ref.Group()
	if !ok {
		return label
	}
	return group.WindowLabel()
}

// ResolveTarget maps a label to the label of the requested member.
// When kind is TargetUnknown the kind is inferred from the label prefix.
// Labels outside the naming scheme resolve to themselves.
func ResolveTarget(label string, kind TargetKind) string {
	group, ok := ParseLabel(label).Group()
	if !ok {
		return label
	}
	if kind == TargetUnknown {
		return label
	}
	return group.Label(kind)
}

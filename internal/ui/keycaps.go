package ui

import (
	"strings"

	"github.com/chatter/shortkey/internal/shortcut"
)

// capGlyphs shortens long key names on key caps.
var capGlyphs = map[string]string{
	"arrowup":    "↑",
	"arrowdown":  "↓",
	"arrowleft":  "←",
	"arrowright": "→",
	"escape":     "Esc",
}

// ShortcutRow is one line of a shortcut listing.
type ShortcutRow struct {
	Keys       []string
	Feature    string
	Disabled   bool
	Disallowed shortcut.Suppression
}

// RowFor describes a live handle for display.
func RowFor(h *shortcut.Handle, feature string, alternate bool) ShortcutRow {
	return ShortcutRow{
		Keys:       shortcut.Label(h.Spec(), alternate),
		Feature:    feature,
		Disabled:   !h.Enabled(),
		Disallowed: h.Suppression(),
	}
}

// CapText returns the text printed on the cap for a label token.
func CapText(token string) string {
	if glyph, ok := capGlyphs[strings.ToLower(token)]; ok {
		return glyph
	}

	return token
}

// KeyCaps renders label tokens as a row of caps separated by spaces.
func (s *Styles) KeyCaps(tokens []string, disabled bool) string {
	style := s.KeyCap
	if disabled {
		style = s.DisabledKeyCap
	}

	caps := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		caps = append(caps, style.Render(CapText(tok)))
	}

	return strings.Join(caps, " ")
}

// ShortcutLine renders caps, the feature and any state markers.
func (s *Styles) ShortcutLine(r ShortcutRow) string {
	var b strings.Builder

	if len(r.Keys) == 0 {
		b.WriteString(s.Dim.Render("(unbound)"))
	} else {
		b.WriteString(s.KeyCaps(r.Keys, r.Disabled))
	}

	b.WriteString(" ")

	if r.Disabled {
		b.WriteString(s.Disabled.Render(r.Feature))
		b.WriteString(s.Dim.Render(" (disabled)"))
	} else {
		b.WriteString(s.Feature.Render(r.Feature))
	}

	if !r.Disallowed.IsZero() {
		b.WriteString(s.Disallowed.Render(" not in " + r.Disallowed.String()))
	}

	return b.String()
}

package shortcut

import (
	"slices"
	"strings"
)

// Modifier words recognised in a spec, with the flag each one sets.
// "command" is the macOS Command key and maps to Meta; it is never
// translated to Ctrl.
const (
	wordCtrl    = "ctrl"
	wordAlt     = "alt"
	wordShift   = "shift"
	wordCommand = "command"
)

// Descriptor is the canonical, matchable form of a shortcut.
// An empty Key never matches any event.
type Descriptor struct {
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
}

// Resolve picks the spelling of spec for the platform and parses it.
func Resolve(spec Spec, alternate bool) Descriptor {
	return Parse(spec.For(alternate))
}

// Parse converts a single spec string into a Descriptor. It never fails:
// text that is not a modifier word is kept as the key, and an empty result
// yields an inert descriptor.
func Parse(s string) Descriptor {
	key := strings.ToLower(s)
	tokens := strings.Fields(key)

	var d Descriptor

	strip := func(word string, flag *bool) {
		if slices.Contains(tokens, word) {
			*flag = true
			key = strings.Replace(key, word, "", 1)
		}
	}

	strip(wordCtrl, &d.Ctrl)
	strip(wordAlt, &d.Alt)
	strip(wordShift, &d.Shift)
	strip(wordCommand, &d.Meta)

	d.Key = strings.TrimSpace(key)

	return d
}

// IsZero reports whether d is the never-matching sentinel.
func (d Descriptor) IsZero() bool {
	return d.Key == ""
}

// Matches reports whether d matches the event exactly: same key (compared
// case-insensitively) and the same four modifier flags.
func (d Descriptor) Matches(ev *KeyEvent) bool {
	if d.Key == "" || ev == nil {
		return false
	}

	return d == ev.Descriptor()
}

// String renders d in "ctrl+shift+a" form for logs and listings.
func (d Descriptor) String() string {
	if d.Key == "" {
		return "<none>"
	}

	var b strings.Builder

	for _, m := range []struct {
		on   bool
		name string
	}{
		{d.Ctrl, wordCtrl},
		{d.Alt, wordAlt},
		{d.Shift, wordShift},
		{d.Meta, "meta"},
	} {
		if m.on {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}

	b.WriteString(d.Key)

	return b.String()
}

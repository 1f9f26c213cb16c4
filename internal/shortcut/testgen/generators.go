// Package testgen provides rapid generators for shortcut specs and key events.
package testgen

import (
	"strings"

	"pgregory.net/rapid"
)

// Modifiers are the modifier words a spec may contain, in canonical order.
var Modifiers = []string{"Ctrl", "Alt", "Shift", "Command"}

// KeyName generates a non-modifier key value as a browser would report it,
// e.g. "a", "Enter", "ArrowUp", "F5".
func KeyName() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.StringMatching(`[a-z0-9]`),
		rapid.SampledFrom([]string{
			"Enter", "Escape", "Tab", "Backspace", "Delete", "Space",
			"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight",
			"Home", "End", "PageUp", "PageDown",
			"F1", "F5", "F12",
		}),
	)
}

// Combo is a generated shortcut together with the flags it should parse to.
type Combo struct {
	Spec  string
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
}

// ComboOption transforms a Combo generator.
type ComboOption func(*rapid.Generator[Combo]) *rapid.Generator[Combo]

// Shortcut generates a well-formed spec string: a random subset of modifier
// words in random order followed by one key, with random casing.
//
// Examples:
//
//	Shortcut()             // {Spec: "Ctrl A", Key: "a", Ctrl: true}
//	Shortcut(WithNoisyCase) // {Spec: "cOMMAND shift l", Key: "l", ...}
func Shortcut(opts ...ComboOption) *rapid.Generator[Combo] {
	gen := rapid.Custom(func(t *rapid.T) Combo {
		var c Combo

		flags := []*bool{&c.Ctrl, &c.Alt, &c.Shift, &c.Meta}

		var words []string

		for i, m := range Modifiers {
			if rapid.Bool().Draw(t, "use_"+strings.ToLower(m)) {
				*flags[i] = true
				words = append(words, m)
			}
		}

		words = rapid.Permutation(words).Draw(t, "order")

		key := KeyName().Draw(t, "key")
		c.Key = strings.ToLower(key)
		c.Spec = strings.Join(append(words, key), " ")

		return c
	})

	for _, opt := range opts {
		gen = opt(gen)
	}

	return gen
}

// WithNoisyCase randomizes the casing of every character of the spec.
func WithNoisyCase(gen *rapid.Generator[Combo]) *rapid.Generator[Combo] {
	return rapid.Custom(func(t *rapid.T) Combo {
		c := gen.Draw(t, "combo")

		var b strings.Builder

		for i, r := range c.Spec {
			s := string(r)
			if rapid.Bool().Draw(t, "upper_"+string(rune('a'+i%26))) {
				s = strings.ToUpper(s)
			} else {
				s = strings.ToLower(s)
			}

			b.WriteString(s)
		}

		c.Spec = b.String()

		return c
	})
}

// WithExtraSpaces pads the spec with leading, trailing and repeated spaces.
func WithExtraSpaces(gen *rapid.Generator[Combo]) *rapid.Generator[Combo] {
	return rapid.Custom(func(t *rapid.T) Combo {
		c := gen.Draw(t, "combo")
		pad := strings.Repeat(" ", rapid.IntRange(1, 3).Draw(t, "pad"))
		c.Spec = pad + strings.Join(strings.Fields(c.Spec), pad) + pad

		return c
	})
}

// AnySpec generates arbitrary, possibly malformed spec text.
func AnySpec() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.String(),
		rapid.StringMatching(`( |ctrl|alt|shift|command|[a-z]){0,6}`),
	)
}

// Package help renders the status bar and the floating shortcut reference.
package help

import (
	"cmp"
	"slices"

	"charm.land/bubbles/v2/key"
)

// Category groups bindings in the floating help.
type Category string

const (
	CategoryNavigation Category = "Navigation"
	CategoryPage       Category = "Page"
	CategoryModal      Category = "Modal"
)

// HelpBinding is the display information for one binding.
type HelpBinding struct {
	Binding  key.Binding
	Category Category
	Order    int  // lower = higher priority for inline status bar
	Pinned   bool // if true, always shown in status bar (never truncated)
}

// sortBindings orders bindings by Order, keeping input order for ties.
func sortBindings(bs []HelpBinding) {
	slices.SortStableFunc(bs, func(a, b HelpBinding) int {
		return cmp.Compare(a.Order, b.Order)
	})
}

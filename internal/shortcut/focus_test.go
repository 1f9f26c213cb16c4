package shortcut

import "testing"

func TestSuppression_ZeroNeverSuppresses(t *testing.T) {
	var s Suppression
	if !s.IsZero() {
		t.Error("zero policy should report IsZero")
	}

	for el := ElementNone; el <= ElementOther; el++ {
		if s.Suppresses(el) {
			t.Errorf("zero policy suppressed %v", el)
		}
	}
}

func TestSuppression_PerElement(t *testing.T) {
	tests := []struct {
		opts FocusOptions
		el   Element
	}{
		{FocusOptions{Input: true}, ElementInput},
		{FocusOptions{Textarea: true}, ElementTextarea},
		{FocusOptions{Select: true}, ElementSelect},
		{FocusOptions{Button: true}, ElementButton},
	}

	for _, tt := range tests {
		s := SuppressOn(tt.opts)
		for el := ElementNone; el <= ElementOther; el++ {
			want := el == tt.el
			if got := s.Suppresses(el); got != want {
				t.Errorf("%+v.Suppresses(%v) = %v, want %v", tt.opts, el, got, want)
			}
		}
	}
}

func TestElement_String(t *testing.T) {
	if ElementTextarea.String() != "textarea" {
		t.Errorf("unexpected name %q", ElementTextarea.String())
	}
	if Element(42).String() != "other" {
		t.Errorf("out-of-range element should read as other")
	}
}

func TestSuppression_String(t *testing.T) {
	tests := []struct {
		s    Suppression
		want string
	}{
		{Suppression{}, ""},
		{SuppressAll(), "any"},
		{SuppressOn(FocusOptions{Input: true}), "input"},
		{SuppressOn(FocusOptions{Select: true, Input: true}), "input, select"},
	}

	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

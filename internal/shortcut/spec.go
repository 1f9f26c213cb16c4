package shortcut

// Spec is a human-authored shortcut before platform resolution: either one
// spelling used on every platform, or a (primary, alternate) pair where the
// alternate form is used on macOS.
type Spec struct {
	primary   string
	alternate string
	pair      bool
}

// Keys returns a Spec that uses s verbatim on every platform.
func Keys(s string) Spec {
	return Spec{primary: s}
}

// PlatformKeys returns a Spec that uses primary by default and mac on the
// alternate platform.
func PlatformKeys(primary, mac string) Spec {
	return Spec{primary: primary, alternate: mac, pair: true}
}

// IsPair reports whether the spec carries a platform-specific variant.
func (s Spec) IsPair() bool {
	return s.pair
}

// Primary returns the default-platform spelling.
func (s Spec) Primary() string {
	return s.primary
}

// Alternate returns the alternate-platform spelling. For a single spec this
// is the same as Primary.
func (s Spec) Alternate() string {
	if !s.pair {
		return s.primary
	}

	return s.alternate
}

// For picks the spelling for the given platform.
func (s Spec) For(alternate bool) string {
	if alternate {
		return s.Alternate()
	}

	return s.primary
}

// String returns the spec as it would be written in a config file.
func (s Spec) String() string {
	if !s.pair {
		return s.primary
	}

	return s.primary + " | " + s.alternate
}

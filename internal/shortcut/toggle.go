package shortcut

// ToggleAll reads the state of every handle and then writes one new state to
// all of them: if all are disabled they are enabled, otherwise all are
// disabled. It returns the state written.
func ToggleAll(hs ...*Handle) bool {
	allDisabled := true

	for _, h := range hs {
		if h.enabled {
			allDisabled = false
			break
		}
	}

	for _, h := range hs {
		h.SetEnabled(allDisabled)
	}

	return allDisabled
}

// Flip inverts each handle's state independently.
func Flip(hs ...*Handle) {
	states := make([]bool, len(hs))
	for i, h := range hs {
		states[i] = !h.enabled
	}

	for i, h := range hs {
		h.SetEnabled(states[i])
	}
}

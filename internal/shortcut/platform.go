package shortcut

import "runtime"

// IsAlternatePlatform reports whether the running OS uses the alternate
// (macOS) key conventions.
func IsAlternatePlatform() bool {
	return runtime.GOOS == "darwin"
}

// Package config loads shortkey settings from a TOML file, SHORTKEY_*
// environment variables and command-line flags using viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/chatter/shortkey/internal/logger"
	"github.com/chatter/shortkey/internal/shortcut"
)

// ErrInvalidPlatform is returned when the platform setting is not one of
// auto, mac or other.
var ErrInvalidPlatform = errors.New("invalid platform")

// Platform values.
const (
	PlatformAuto  = "auto"
	PlatformMac   = "mac"
	PlatformOther = "other"
)

// Keys understood by the loader.
const (
	KeyLogLevel  = "log_level"
	KeyPlatform  = "platform"
	KeyShortcuts = "shortcuts"
)

// Config holds the resolved application configuration.
type Config struct {
	LogLevel string
	Platform string

	// Shortcuts maps action names to user-supplied specs. Entries that
	// could not be read are present as inert specs.
	Shortcuts map[string]shortcut.Spec

	// Warnings lists shortcut entries that were not a string or a pair of
	// strings.
	Warnings []string

	// File is the config file that was read, or "" when none was found.
	File string
}

// Alternate reports whether platform pairs should use their macOS form.
func (c Config) Alternate() bool {
	switch c.Platform {
	case PlatformMac:
		return true
	case PlatformOther:
		return false
	default:
		return shortcut.IsAlternatePlatform()
	}
}

// Spec returns the configured spec for action, or fallback when the config
// does not mention it.
func (c Config) Spec(action string, fallback shortcut.Spec) shortcut.Spec {
	if s, ok := c.Shortcuts[strings.ToLower(action)]; ok {
		return s
	}

	return fallback
}

// Loader reads the configuration. The same Loader can be asked to load
// again after the file changes.
type Loader struct {
	v    *viper.Viper
	file string
}

// NewLoader creates a loader. When file is empty the loader looks for
// config.toml in DefaultDir.
func NewLoader(file string) *Loader {
	v := viper.New()

	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyPlatform, PlatformAuto)

	v.SetConfigType("toml")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(DefaultDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHORTKEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, file: file}
}

// Viper exposes the underlying viper instance so flags can be bound to it.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Dir returns the directory holding the config file, whether or not the
// file exists yet.
func (l *Loader) Dir() string {
	if l.file != "" {
		return filepath.Dir(l.file)
	}

	if used := l.v.ConfigFileUsed(); used != "" {
		return filepath.Dir(used)
	}

	return DefaultDir()
}

// Load reads the config file (if any) and returns the resolved config.
// A missing default config file is not an error; a missing file named
// explicitly is.
func (l *Loader) Load() (Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	c := Config{
		LogLevel: l.v.GetString(KeyLogLevel),
		Platform: strings.ToLower(l.v.GetString(KeyPlatform)),
		File:     l.v.ConfigFileUsed(),
	}

	if err := logger.ParseLevel(c.LogLevel); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", KeyLogLevel, err)
	}

	switch c.Platform {
	case PlatformAuto, PlatformMac, PlatformOther:
	default:
		return Config{}, fmt.Errorf("%w: %q (use auto, mac, other)", ErrInvalidPlatform, c.Platform)
	}

	c.Shortcuts, c.Warnings = decodeShortcuts(l.v.GetStringMap(KeyShortcuts))

	return c, nil
}

// decodeShortcuts converts the [shortcuts] table. A value is either a
// string or a two-element array of strings; anything else becomes an inert
// spec and a warning.
func decodeShortcuts(raw map[string]any) (map[string]shortcut.Spec, []string) {
	specs := make(map[string]shortcut.Spec, len(raw))

	var warnings []string

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		spec, ok := decodeSpec(raw[name])
		if !ok {
			warnings = append(warnings, fmt.Sprintf("shortcut %q: expected a string or [primary, mac] pair, got %T", name, raw[name]))
		}

		specs[strings.ToLower(name)] = spec
	}

	return specs, warnings
}

func decodeSpec(v any) (shortcut.Spec, bool) {
	switch val := v.(type) {
	case string:
		return shortcut.Keys(val), true
	case []any:
		if len(val) != 2 {
			return shortcut.Keys(""), false
		}

		primary, ok1 := val[0].(string)
		mac, ok2 := val[1].(string)

		if !ok1 || !ok2 {
			return shortcut.Keys(""), false
		}

		return shortcut.PlatformKeys(primary, mac), true
	case []string:
		if len(val) != 2 {
			return shortcut.Keys(""), false
		}

		return shortcut.PlatformKeys(val[0], val[1]), true
	default:
		return shortcut.Keys(""), false
	}
}

// DefaultDir returns $XDG_CONFIG_HOME/shortkey, falling back to
// ~/.config/shortkey.
func DefaultDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".", ".shortkey")
		}

		dir = filepath.Join(home, ".config")
	}

	return filepath.Join(dir, "shortkey")
}

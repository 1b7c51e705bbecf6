// Package theme holds the light/dark preference, its persistence, and the
// palette each preference selects.
package theme

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Preference is the selected color scheme.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// Key is the store key the preference is saved under.
const Key = "theme"

// Opposite returns the other preference.
func (p Preference) Opposite() Preference {
	if p == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether p is Dark.
func (p Preference) IsDark() bool { return p == Dark }

func (p Preference) String() string { return string(p) }

// Load reads the saved preference. Only the exact value "dark" selects Dark;
// anything else, including a missing key or an unreadable store, is Light.
// Load never writes.
func Load(s Store) Preference {
	v, ok, err := s.Get(Key)
	if err != nil {
		log.Warn("theme: could not read preference, using light", "err", err)
		return Light
	}
	if ok && v == string(Dark) {
		return Dark
	}
	return Light
}

// Toggle returns the opposite of current after writing it to s. The write
// happens on every call; its error is returned alongside the new value.
func Toggle(s Store, current Preference) (Preference, error) {
	next := current.Opposite()
	if err := s.Set(Key, next.String()); err != nil {
		return next, fmt.Errorf("save theme %s: %w", next, err)
	}
	return next, nil
}

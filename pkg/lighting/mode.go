package lighting

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when parsing an unrecognised light mode name.
var ErrUnknownMode = errors.New("unknown light mode")

// Mode selects the lighting model and where the light comes from.
type Mode int

const (
	// ModeNormal lights the scene with a fixed Phong point light.
	ModeNormal Mode = iota
	// ModeFlashlight is a spotlight held at the camera, aimed at the scene centre.
	ModeFlashlight
	// ModeFreeFlashlight is a spotlight the user aims.
	ModeFreeFlashlight
)

var modeNames = [...]string{
	ModeNormal:         "normal",
	ModeFlashlight:     "flashlight",
	ModeFreeFlashlight: "free-flashlight",
}

// String returns the mode's config name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// IsSpot reports whether the mode shades with a spotlight.
func (m Mode) IsSpot() bool {
	return m == ModeFlashlight || m == ModeFreeFlashlight
}

// ParseMode parses a mode name, ignoring case.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if key == name {
			return Mode(i), nil
		}
	}
	if key == "free" {
		return ModeFreeFlashlight, nil
	}
	return ModeNormal, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(modeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

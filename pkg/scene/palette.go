// Package scene assembles the wheel, holds the user-facing controls and
// turns a controls snapshot into shaded, clipped drawables for one frame.
package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taigrr/wheelcut/pkg/lighting"
)

// ErrUnknownName is returned when a theme, light colour, compound or
// render mode name is not recognised.
var ErrUnknownName = errors.New("unknown name")

// Part identifies a wheel component for material and wire colour lookup.
type Part int

const (
	PartTire Part = iota
	PartBand
	PartRim
	PartFiller
	PartSidewall
	PartSpokes
	PartHubRing
	PartHub
	PartBolts
	PartFloor
	PartImported
	numParts
)

var partNames = [numParts]string{
	"tire", "band", "rim", "filler", "sidewall", "spokes", "hub-ring", "hub", "bolts", "floor", "imported",
}

func (p Part) String() string {
	if p < 0 || p >= numParts {
		return fmt.Sprintf("Part(%d)", int(p))
	}
	return partNames[p]
}

// Compound is the tyre compound, shown as the band colour.
type Compound int

const (
	CompoundSoft Compound = iota
	CompoundMedium
	CompoundHard
	numCompounds
)

var compoundNames = [numCompounds]string{"soft", "medium", "hard"}

func (c Compound) String() string { return enumString("Compound", int(c), compoundNames[:]) }

// Next returns the following compound, wrapping around.
func (c Compound) Next() Compound { return (c + 1) % numCompounds }

// ParseCompound parses a compound name.
func ParseCompound(s string) (Compound, error) {
	i, err := parseEnum("compound", s, compoundNames[:])
	return Compound(i), err
}

// Theme selects the background and floor material.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeBlack
	ThemeGarage
	ThemeLight
	numThemes
)

var themeNames = [numThemes]string{"dark", "black", "garage", "light"}

func (t Theme) String() string { return enumString("Theme", int(t), themeNames[:]) }

// Next returns the following theme, wrapping around.
func (t Theme) Next() Theme { return (t + 1) % numThemes }

// ParseTheme parses a theme name.
func ParseTheme(s string) (Theme, error) {
	i, err := parseEnum("theme", s, themeNames[:])
	return Theme(i), err
}

// LightColor is one of the selectable light tints.
type LightColor int

const (
	LightWhite LightColor = iota
	LightRed
	LightBlue
	LightYellow
	LightGreen
	LightPurple
	NumLightColors
)

var lightColorNames = [NumLightColors]string{"white", "red", "blue", "yellow", "green", "purple"}

func (c LightColor) String() string { return enumString("LightColor", int(c), lightColorNames[:]) }

// ParseLightColor parses a light colour name.
func ParseLightColor(s string) (LightColor, error) {
	i, err := parseEnum("light colour", s, lightColorNames[:])
	return LightColor(i), err
}

// RenderMode selects how meshes are drawn.
type RenderMode int

const (
	RenderSolid RenderMode = iota
	RenderWireframe
	RenderMixed
	numRenderModes
)

var renderModeNames = [numRenderModes]string{"solid", "wireframe", "mixed"}

func (m RenderMode) String() string { return enumString("RenderMode", int(m), renderModeNames[:]) }

// Solid reports whether faces are filled.
func (m RenderMode) Solid() bool { return m == RenderSolid || m == RenderMixed }

// Wire reports whether edges are drawn.
func (m RenderMode) Wire() bool { return m == RenderWireframe || m == RenderMixed }

// ParseRenderMode parses a render mode name.
func ParseRenderMode(s string) (RenderMode, error) {
	i, err := parseEnum("render mode", s, renderModeNames[:])
	return RenderMode(i), err
}

func enumString(kind string, i int, names []string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}
	return names[i]
}

func parseEnum(kind, s string, names []string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if key == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownName, kind, s)
}

// WireColors is the edge colour of a part in pure wireframe and in mixed mode.
type WireColors struct {
	Pure  lighting.RGB
	Mixed lighting.RGB
}

// ThemeStyle is the look of one theme.
type ThemeStyle struct {
	Title      string
	Background lighting.RGB
	Floor      lighting.Material
}

// Palette holds every fixed colour and material. It is built once and
// never modified.
type Palette struct {
	materials   [numParts]lighting.Material
	wires       [numParts]WireColors
	bands       [numCompounds]lighting.Material
	themes      [numThemes]ThemeStyle
	lightColors [NumLightColors]lighting.RGB
	planeColor  lighting.RGB
}

// Material returns the material of a part. The band follows the compound
// and the floor follows the theme.
func (p *Palette) Material(part Part, compound Compound, theme Theme) lighting.Material {
	switch part {
	case PartBand:
		return p.Band(compound)
	case PartFloor:
		return p.Theme(theme).Floor
	}
	if part < 0 || part >= numParts {
		return p.materials[PartImported]
	}
	return p.materials[part]
}

// Band returns the band material for a compound.
func (p *Palette) Band(c Compound) lighting.Material {
	if c < 0 || c >= numCompounds {
		c = CompoundSoft
	}
	return p.bands[c]
}

// Wire returns the wire colour of a part for the given render mode.
func (p *Palette) Wire(part Part, mode RenderMode) lighting.RGB {
	if part < 0 || part >= numParts {
		part = PartImported
	}
	if mode == RenderMixed {
		return p.wires[part].Mixed
	}
	return p.wires[part].Pure
}

// Theme returns the style of a theme; unknown values fall back to dark.
func (p *Palette) Theme(t Theme) ThemeStyle {
	if t < 0 || t >= numThemes {
		t = ThemeDark
	}
	return p.themes[t]
}

// LightColor returns the RGB tint; unknown values fall back to white.
func (p *Palette) LightColor(c LightColor) lighting.RGB {
	if c < 0 || c >= NumLightColors {
		c = LightWhite
	}
	return p.lightColors[c]
}

// PlaneColor is the fill colour of the cut-plane overlay.
func (p *Palette) PlaneColor() lighting.RGB {
	return p.planeColor
}

// DefaultPalette returns the built-in materials, themes and light colours.
func DefaultPalette() *Palette {
	gold := lighting.Material{Name: "gold rim", Ka: 0.3, Kd: 0.6, Ks: 0.9, Shininess: 120, Color: lighting.RGB{R: 0.80, G: 0.72, B: 0.28}}

	p := &Palette{
		materials: [numParts]lighting.Material{
			PartTire:     {Name: "tyre rubber", Ka: 0.2, Kd: 0.7, Ks: 0.1, Shininess: 5, Color: lighting.Gray(0.12)},
			PartRim:      gold,
			PartFiller:   {Name: "filler disc", Ka: 0.25, Kd: 0.5, Ks: 0.7, Shininess: 90, Color: lighting.RGB{R: 0.65, G: 0.58, B: 0.22}},
			PartSidewall: {Name: "sidewall marks", Ka: 0.3, Kd: 0.6, Ks: 0.2, Shininess: 15, Color: lighting.Gray(0.85)},
			PartSpokes:   gold,
			PartHubRing:  {Name: "hub ring", Ka: 0.3, Kd: 0.5, Ks: 0.85, Shininess: 110, Color: lighting.RGB{R: 0.70, G: 0.62, B: 0.20}},
			PartHub:      {Name: "dark hub", Ka: 0.2, Kd: 0.5, Ks: 0.8, Shininess: 80, Color: lighting.RGB{R: 0.25, G: 0.25, B: 0.30}},
			PartBolts:    {Name: "hub bolts", Ka: 0.2, Kd: 0.4, Ks: 0.9, Shininess: 100, Color: lighting.RGB{R: 0.50, G: 0.50, B: 0.55}},
			PartImported: {Name: "imported", Ka: 0.3, Kd: 0.6, Ks: 0.4, Shininess: 30, Color: lighting.Gray(0.7)},
		},
		bands: [numCompounds]lighting.Material{
			CompoundSoft:   {Name: "soft band", Ka: 0.3, Kd: 0.8, Ks: 0.3, Shininess: 20, Color: lighting.RGB{R: 0.90, G: 0.10, B: 0.10}},
			CompoundMedium: {Name: "medium band", Ka: 0.3, Kd: 0.8, Ks: 0.3, Shininess: 20, Color: lighting.RGB{R: 1.0, G: 0.85, B: 0.0}},
			CompoundHard:   {Name: "hard band", Ka: 0.4, Kd: 0.7, Ks: 0.4, Shininess: 25, Color: lighting.Gray(0.95)},
		},
		wires: [numParts]WireColors{
			PartTire:     {Pure: lighting.RGB{G: 1}, Mixed: lighting.RGB{G: 0.5}},
			PartBand:     {Pure: lighting.RGB{R: 1}, Mixed: lighting.RGB{R: 0.6}},
			PartRim:      {Pure: lighting.RGB{R: 1, G: 1}, Mixed: lighting.RGB{R: 0.6, G: 0.6}},
			PartFiller:   {Pure: lighting.RGB{R: 0.7, G: 0.6, B: 0.2}, Mixed: lighting.RGB{R: 0.5, G: 0.4, B: 0.15}},
			PartSidewall: {Pure: lighting.Gray(0.9), Mixed: lighting.Gray(0.6)},
			PartSpokes:   {Pure: lighting.RGB{R: 1, G: 1}, Mixed: lighting.RGB{R: 0.6, G: 0.6}},
			PartHubRing:  {Pure: lighting.RGB{R: 0.8, G: 0.7, B: 0.3}, Mixed: lighting.RGB{R: 0.5, G: 0.4, B: 0.2}},
			PartHub:      {Pure: lighting.Gray(0.5), Mixed: lighting.Gray(0.3)},
			PartBolts:    {Pure: lighting.Gray(0.6), Mixed: lighting.Gray(0.4)},
			PartFloor:    {Pure: lighting.Gray(0.3), Mixed: lighting.Gray(0.3)},
			PartImported: {Pure: lighting.RGB{R: 0, G: 1, B: 0.5}, Mixed: lighting.RGB{R: 0, G: 0.5, B: 0.25}},
		},
		themes: [numThemes]ThemeStyle{
			ThemeDark: {
				Title:      "DARK",
				Background: lighting.RGB{R: 0.15, G: 0.15, B: 0.18},
				Floor:      lighting.Material{Name: "dark floor", Ka: 0.2, Kd: 0.4, Ks: 0.1, Shininess: 5, Color: lighting.RGB{R: 0.12, G: 0.12, B: 0.15}},
			},
			ThemeBlack: {
				Title:      "BLACK STUDIO",
				Background: lighting.Gray(0.05),
				Floor:      lighting.Material{Name: "studio floor", Ka: 0.15, Kd: 0.3, Ks: 0.05, Shininess: 3, Color: lighting.Gray(0.05)},
			},
			ThemeGarage: {
				Title:      "GARAGE",
				Background: lighting.RGB{R: 0.25, G: 0.27, B: 0.30},
				Floor:      lighting.Material{Name: "garage floor", Ka: 0.25, Kd: 0.5, Ks: 0.15, Shininess: 8, Color: lighting.RGB{R: 0.18, G: 0.18, B: 0.20}},
			},
			ThemeLight: {
				Title:      "LIGHT",
				Background: lighting.Gray(0.9),
				Floor:      lighting.Material{Name: "concrete floor", Ka: 0.3, Kd: 0.6, Ks: 0.2, Shininess: 10, Color: lighting.Gray(0.5)},
			},
		},
		lightColors: [NumLightColors]lighting.RGB{
			LightWhite:  lighting.Gray(1),
			LightRed:    {R: 1.0, G: 0.3, B: 0.3},
			LightBlue:   {R: 0.4, G: 0.6, B: 1.0},
			LightYellow: {R: 1.0, G: 0.9, B: 0.5},
			LightGreen:  {R: 0.4, G: 1.0, B: 0.5},
			LightPurple: {R: 0.8, G: 0.4, B: 1.0},
		},
		planeColor: lighting.RGB{R: 1},
	}
	return p
}

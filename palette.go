package mandala

import (
	"errors"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrPaletteLookup reports a palette table miss after clamping. It should be
// unreachable; when it occurs the caller substitutes the default palette.
var ErrPaletteLookup = errors.New("mandala: palette lookup failed")

// Palette is a mood-indexed color and emotion bundle. Constructed once at
// startup and never mutated; PaletteFor returns copies by value.
type Palette struct {
	ID      int      // mood level 1..10
	Name    string   // display name
	Colors  [3]Color // ordered triple cycled across layers
	Emotion string   // emotion tag
}

// palettes maps mood levels 1..10 (index 0..9) to their color bundles.
// Low moods sit in dark desaturated ranges; high moods get warm saturated
// triples.
var palettes = [10]Palette{
	{1, "Midnight", [3]Color{hex("#1a1a2e"), hex("#16213e"), hex("#0f3460")}, "somber"},
	{2, "Storm", [3]Color{hex("#2c3e50"), hex("#34495e"), hex("#5d6d7e")}, "heavy"},
	{3, "Dusk Rose", [3]Color{hex("#6d597a"), hex("#b56576"), hex("#e56b6f")}, "wistful"},
	{4, "Sea Glass", [3]Color{hex("#355c7d"), hex("#6c5b7b"), hex("#c06c84")}, "quiet"},
	{5, "Sage", [3]Color{hex("#52796f"), hex("#84a98c"), hex("#cad2c5")}, "steady"},
	{6, "Golden Hour", [3]Color{hex("#f6bd60"), hex("#f28482"), hex("#f5cac3")}, "content"},
	{7, "Coral", [3]Color{hex("#ff9a8b"), hex("#ff6a88"), hex("#ff99ac")}, "cheerful"},
	{8, "Citrus", [3]Color{hex("#f9c80e"), hex("#f86624"), hex("#ea3546")}, "bright"},
	{9, "Aurora", [3]Color{hex("#7ae582"), hex("#25a18e"), hex("#00a5cf")}, "elated"},
	{10, "Prism", [3]Color{hex("#ff6f91"), hex("#ffc75f"), hex("#f9f871")}, "radiant"},
}

// defaultPalette is the substitute for an (unreachable) table miss.
var defaultPalette = palettes[4]

// PaletteFor returns the palette for a mood level. The input is clamped to
// [1, 10]; out-of-domain moods are a caller contract violation but never
// panic.
func PaletteFor(mood int) Palette {
	mood = clampInt(mood, LevelMin, LevelMax)
	return palettes[mood-1]
}

// DefaultPalette returns the fallback palette used on lookup failure.
func DefaultPalette() Palette {
	return defaultPalette
}

// hex parses a "#rrggbb" constant into a Color with full alpha.
// Panics on malformed input; only used for the static table above.
func hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("mandala: bad palette constant " + s)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// Lighten raises the HSL luminance of c by amount (clamped to white),
// preserving alpha.
func Lighten(c Color, amount float64) Color {
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	out := colorful.Hsl(h, s, clamp(l+amount, 0, 1))
	return Color{R: out.R, G: out.G, B: out.B, A: c.A}
}

// Darken lowers the HSL luminance of c by amount (clamped to black),
// preserving alpha.
func Darken(c Color, amount float64) Color {
	return Lighten(c, -amount)
}

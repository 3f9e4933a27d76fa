package mandala

import "math/rand/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// WithAlpha returns a copy of the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout
// the API. The coordinate system has its origin at the top-left, with Y
// increasing downward.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose min/max range. Sampling is always explicit
// about its randomness source so that generation stays reproducible.
type Range struct {
	Min, Max float64
}

// Sample returns a value in [Min, Max] drawn from rng.
func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// PatternStyle selects the shape family used for a generated scene.
// It is derived from the stress level: low stress reads as calm, high
// stress as intense.
type PatternStyle uint8

const (
	StyleCalm     PatternStyle = iota // stress <= 3: soft circles
	StyleModerate                     // stress 4-6: regular polygons
	StyleIntense                      // stress >= 7: spiked stars
)

// String returns the lowercase style name.
func (s PatternStyle) String() string {
	switch s {
	case StyleCalm:
		return "calm"
	case StyleModerate:
		return "moderate"
	case StyleIntense:
		return "intense"
	default:
		return "unknown"
	}
}

// styleForStress maps a stress level to its pattern style.
func styleForStress(stress int) PatternStyle {
	switch {
	case stress <= 3:
		return StyleCalm
	case stress <= 6:
		return StyleModerate
	default:
		return StyleIntense
	}
}

// ShapeKind distinguishes the geometry of a single scene element.
type ShapeKind uint8

const (
	ShapeCircle  ShapeKind = iota // filled circle
	ShapePolygon                  // regular convex polygon (Sides)
	ShapeStar                     // star with Points tips and InnerRatio waist
)

// String returns the lowercase shape name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapePolygon:
		return "polygon"
	case ShapeStar:
		return "star"
	default:
		return "unknown"
	}
}

// --- Numeric helpers ---

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampInt limits v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

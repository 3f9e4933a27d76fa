package mandala

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// minElementSize is the floor for every element size formula.
const minElementSize = 2.0

// intenseStressScaleDiv controls the static uniform scale applied to intense
// elements (1 + stress/intenseStressScaleDiv). Fixed at 30 so the combined
// static and breathing scale stays inside the breathing clamp band.
const intenseStressScaleDiv = 30.0

// intenseJitterFrac is the position jitter amplitude for intense elements,
// as a fraction of element size. Jitter is drawn from the generation's
// seeded rng, so identical biometrics place elements identically.
const intenseJitterFrac = 0.15

// elementBuilder constructs one element for a pattern style. Builders return
// an error instead of panicking; the layer builder skips failed elements and
// continues.
type elementBuilder func(b Biometrics, layer int, layerRadius float64, angle float64, pos Vec2, color Color, rng *rand.Rand) (Element, error)

// builderFor returns the element builder for a style. The switch is
// exhaustive over the closed PatternStyle set.
func builderFor(style PatternStyle) elementBuilder {
	switch style {
	case StyleCalm:
		return buildCalmElement
	case StyleModerate:
		return buildModerateElement
	case StyleIntense:
		return buildIntenseElement
	}
	return buildCalmElement
}

// buildCalmElement produces a soft circle.
func buildCalmElement(b Biometrics, layer int, layerRadius, angle float64, pos Vec2, color Color, rng *rand.Rand) (Element, error) {
	size := math.Max(minElementSize, (layerRadius*0.03+float64(layer)*0.005)*b.EnergyMultiplier())
	e := Element{
		Angle:       angle,
		Position:    pos,
		Shape:       ShapeCircle,
		Size:        size,
		Color:       color,
		StrokeColor: Darken(color, 0.15),
		Opacity:     0.7 + float64(layer)*0.02,
		Scale:       1,
	}
	return e, validateElement(e)
}

// buildModerateElement produces a regular polygon whose side count grows
// with layer depth.
func buildModerateElement(b Biometrics, layer int, layerRadius, angle float64, pos Vec2, color Color, rng *rand.Rand) (Element, error) {
	size := math.Max(minElementSize, (layerRadius*0.04+float64(layer)*0.008)*b.EnergyMultiplier())
	e := Element{
		Angle:          angle,
		Position:       pos,
		Shape:          ShapePolygon,
		Size:           size,
		Sides:          clampInt(4+layer/2, 3, 8),
		Color:          color,
		StrokeColor:    Darken(color, 0.15),
		Opacity:        0.6 + float64(layer)*0.03,
		RotationOffset: angle + float64(layer)*15*math.Pi/180,
		Scale:          1,
	}
	return e, validateElement(e)
}

// buildIntenseElement produces a spiked star with seeded position jitter
// and a stress-driven static scale.
func buildIntenseElement(b Biometrics, layer int, layerRadius, angle float64, pos Vec2, color Color, rng *rand.Rand) (Element, error) {
	size := math.Max(minElementSize, (layerRadius*0.05+float64(layer)*0.01)*b.EnergyMultiplier())
	jitter := Range{Min: -size * intenseJitterFrac, Max: size * intenseJitterFrac}
	pos.X += jitter.Sample(rng)
	pos.Y += jitter.Sample(rng)
	e := Element{
		Angle:          angle,
		Position:       pos,
		Shape:          ShapeStar,
		Size:           size,
		Points:         clampInt(6+layer, 5, 12),
		InnerRatio:     0.4,
		Color:          color,
		StrokeColor:    Darken(color, 0.15),
		Opacity:        0.5 + float64(layer)*0.04,
		RotationOffset: angle + float64(layer)*30*math.Pi/180,
		Scale:          1 + float64(b.Stress)/intenseStressScaleDiv,
	}
	return e, validateElement(e)
}

// validateElement rejects non-finite geometry so a single bad element never
// poisons the rest of its layer.
func validateElement(e Element) error {
	for _, v := range [...]float64{e.Position.X, e.Position.Y, e.Size, e.Opacity, e.RotationOffset, e.Scale} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("element at angle %.3f: non-finite geometry", e.Angle)
		}
	}
	if e.Size <= 0 {
		return fmt.Errorf("element at angle %.3f: non-positive size %.3f", e.Angle, e.Size)
	}
	return nil
}

// --- Point-ring geometry ---
//
// These produce local-space outlines centered on the origin; renderers
// transform and fan-triangulate them. Buffers follow the usual
// grow-to-high-water-mark reuse pattern.

// circleSegments is the fixed tessellation for circle outlines.
const circleSegments = 24

// circlePoints fills buf with a circle outline of the given radius.
func circlePoints(radius float64, buf []Vec2) []Vec2 {
	return polygonPoints(radius, circleSegments, 0, buf)
}

// polygonPoints fills buf with a regular polygon outline. The first vertex
// starts at rot radians from the positive X axis.
func polygonPoints(radius float64, sides int, rot float64, buf []Vec2) []Vec2 {
	if sides < 3 {
		sides = 3
	}
	if cap(buf) < sides {
		buf = make([]Vec2, sides)
	}
	buf = buf[:sides]
	for i := 0; i < sides; i++ {
		a := rot + 2*math.Pi*float64(i)/float64(sides)
		sin, cos := math.Sincos(a)
		buf[i] = Vec2{X: radius * cos, Y: radius * sin}
	}
	return buf
}

// starPoints fills buf with a star outline alternating between the outer
// radius and innerRatio*radius. A star with P tips has 2P vertices.
func starPoints(radius float64, points int, innerRatio, rot float64, buf []Vec2) []Vec2 {
	if points < 3 {
		points = 3
	}
	n := points * 2
	if cap(buf) < n {
		buf = make([]Vec2, n)
	}
	buf = buf[:n]
	inner := radius * innerRatio
	for i := 0; i < n; i++ {
		r := radius
		if i%2 == 1 {
			r = inner
		}
		a := rot + math.Pi*float64(i)/float64(points)
		sin, cos := math.Sincos(a)
		buf[i] = Vec2{X: r * cos, Y: r * sin}
	}
	return buf
}

// outlinePoints returns the local-space outline for an element, dispatching
// on its shape kind.
func outlinePoints(e Element, buf []Vec2) []Vec2 {
	switch e.Shape {
	case ShapeCircle:
		return circlePoints(e.Size, buf)
	case ShapePolygon:
		return polygonPoints(e.Size, e.Sides, 0, buf)
	case ShapeStar:
		return starPoints(e.Size, e.Points, e.InnerRatio, 0, buf)
	}
	return buf[:0]
}

package mandala

import "math"

// maxRadiusFactor maps the short viewport edge to the largest usable ring
// radius, leaving a margin so outer elements stay inside the container.
const maxRadiusFactor = 0.35

// Viewport maps container dimensions to the scene coordinate space.
// Dimensions are in scene units (typically CSS pixels or device pixels,
// whichever the renderer collaborator works in).
type Viewport struct {
	Width, Height float64
}

// Valid reports whether the viewport has positive, finite dimensions.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0 &&
		!math.IsInf(v.Width, 0) && !math.IsInf(v.Height, 0) &&
		!math.IsNaN(v.Width) && !math.IsNaN(v.Height)
}

// CenterPoint returns the scene center.
func (v Viewport) CenterPoint() Vec2 {
	return Vec2{X: v.Width / 2, Y: v.Height / 2}
}

// MaxRadius returns the largest ring radius that fits the viewport.
func (v Viewport) MaxRadius() float64 {
	return math.Min(v.Width, v.Height) * maxRadiusFactor
}

package mandala

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// makeTransform builds the affine matrix for an element placed at (tx, ty),
// rotated by rot radians, and uniformly scaled. Returns [a, b, c, d, tx, ty].
//
// Composition order: Scale -> Rotate -> Translate(tx, ty).
func makeTransform(tx, ty, rot, scale float64) [6]float64 {
	sin, cos := math.Sincos(rot)
	local := [6]float64{cos * scale, sin * scale, -sin * scale, cos * scale, 0, 0}
	return multiplyAffine([6]float64{1, 0, 0, 1, tx, ty}, local)
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// scaleAbout scales point p away from or toward pivot by factor s.
// Used for the breathing transform, which expands the whole composition
// around the scene center.
func scaleAbout(p, pivot Vec2, s float64) Vec2 {
	return Vec2{
		X: pivot.X + (p.X-pivot.X)*s,
		Y: pivot.Y + (p.Y-pivot.Y)*s,
	}
}

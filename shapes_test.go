package mandala

import (
	"math"
	"testing"
)

func testVec(angle, radius float64) Vec2 {
	return Vec2{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

func TestBuilderDispatch(t *testing.T) {
	b := DefaultBiometrics()
	rng := b.rng()

	cases := []struct {
		style PatternStyle
		want  ShapeKind
	}{
		{StyleCalm, ShapeCircle},
		{StyleModerate, ShapePolygon},
		{StyleIntense, ShapeStar},
	}
	for _, c := range cases {
		e, err := builderFor(c.style)(b, 0, 100, 0, testVec(0, 100), ColorWhite, rng)
		if err != nil {
			t.Fatalf("%v builder: %v", c.style, err)
		}
		if e.Shape != c.want {
			t.Errorf("%v builder shape = %v, want %v", c.style, e.Shape, c.want)
		}
	}
}

func TestElementSizeFloor(t *testing.T) {
	b := DefaultBiometrics()
	b.Energy = 1 // tiny multiplier forces the floor
	rng := b.rng()

	for _, style := range []PatternStyle{StyleCalm, StyleModerate, StyleIntense} {
		e, err := builderFor(style)(b, 0, 1, 0, testVec(0, 1), ColorWhite, rng)
		if err != nil {
			t.Fatalf("%v builder: %v", style, err)
		}
		if e.Size < minElementSize {
			t.Errorf("%v size = %v, below floor %v", style, e.Size, minElementSize)
		}
	}
}

func TestModeratePolygonSides(t *testing.T) {
	b := DefaultBiometrics()
	rng := b.rng()
	for layer := 0; layer < 12; layer++ {
		e, err := buildModerateElement(b, layer, 100, 0, testVec(0, 100), ColorWhite, rng)
		if err != nil {
			t.Fatal(err)
		}
		want := clampInt(4+layer/2, 3, 8)
		if e.Sides != want {
			t.Errorf("layer %d sides = %d, want %d", layer, e.Sides, want)
		}
		assertNear(t, "opacity", e.Opacity, 0.6+float64(layer)*0.03)
	}
}

func TestIntenseStarShape(t *testing.T) {
	b := DefaultBiometrics()
	b.Stress = 9
	rng := b.rng()
	for layer := 0; layer < 12; layer++ {
		e, err := buildIntenseElement(b, layer, 100, 0, testVec(0, 100), ColorWhite, rng)
		if err != nil {
			t.Fatal(err)
		}
		want := clampInt(6+layer, 5, 12)
		if e.Points != want {
			t.Errorf("layer %d points = %d, want %d", layer, e.Points, want)
		}
		assertNear(t, "innerRatio", e.InnerRatio, 0.4)
		assertNear(t, "scale", e.Scale, 1+9.0/intenseStressScaleDiv)
	}
}

func TestIntenseJitterIsSeeded(t *testing.T) {
	b := DefaultBiometrics()
	b.Stress = 9

	e1, err := buildIntenseElement(b, 2, 100, 1, testVec(1, 100), ColorWhite, b.rng())
	if err != nil {
		t.Fatal(err)
	}
	e2, err := buildIntenseElement(b, 2, 100, 1, testVec(1, 100), ColorWhite, b.rng())
	if err != nil {
		t.Fatal(err)
	}
	if e1.Position != e2.Position {
		t.Errorf("seeded jitter diverged: %+v vs %+v", e1.Position, e2.Position)
	}
}

func TestValidateElementRejectsNonFinite(t *testing.T) {
	e := Element{Size: math.NaN(), Scale: 1, Opacity: 1}
	if validateElement(e) == nil {
		t.Error("NaN size accepted")
	}
	e = Element{Size: 5, Scale: 1, Opacity: 1, Position: Vec2{X: math.Inf(1)}}
	if validateElement(e) == nil {
		t.Error("infinite position accepted")
	}
	e = Element{Size: 0, Scale: 1, Opacity: 1}
	if validateElement(e) == nil {
		t.Error("zero size accepted")
	}
}

func TestCirclePoints(t *testing.T) {
	pts := circlePoints(10, nil)
	if len(pts) != circleSegments {
		t.Fatalf("len = %d, want %d", len(pts), circleSegments)
	}
	for i, p := range pts {
		r := math.Hypot(p.X, p.Y)
		if math.Abs(r-10) > epsilon {
			t.Errorf("point %d radius = %v, want 10", i, r)
		}
	}
}

func TestStarPointsAlternateRadii(t *testing.T) {
	pts := starPoints(10, 6, 0.4, 0, nil)
	if len(pts) != 12 {
		t.Fatalf("len = %d, want 12", len(pts))
	}
	for i, p := range pts {
		r := math.Hypot(p.X, p.Y)
		want := 10.0
		if i%2 == 1 {
			want = 4.0
		}
		if math.Abs(r-want) > epsilon {
			t.Errorf("point %d radius = %v, want %v", i, r, want)
		}
	}
}

func TestPointBufferReuse(t *testing.T) {
	buf := make([]Vec2, 0, 64)
	out := polygonPoints(10, 6, 0, buf)
	if &out[:1][0] != &buf[:1][0] {
		t.Error("polygonPoints reallocated despite sufficient capacity")
	}
}

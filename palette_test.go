package mandala

import "testing"

func TestPaletteForIsTotal(t *testing.T) {
	for mood := -5; mood <= 15; mood++ {
		p := PaletteFor(mood)
		if p.ID < 1 || p.ID > 10 {
			t.Errorf("paletteFor(%d).ID = %d, out of [1,10]", mood, p.ID)
		}
		if p.Name == "" || p.Emotion == "" {
			t.Errorf("paletteFor(%d) has empty name or emotion", mood)
		}
	}
}

func TestPaletteForClamps(t *testing.T) {
	if got := PaletteFor(-3); got.ID != 1 {
		t.Errorf("paletteFor(-3).ID = %d, want 1", got.ID)
	}
	if got := PaletteFor(99); got.ID != 10 {
		t.Errorf("paletteFor(99).ID = %d, want 10", got.ID)
	}
}

func TestPaletteForIsStable(t *testing.T) {
	for mood := 1; mood <= 10; mood++ {
		a := PaletteFor(mood)
		b := PaletteFor(mood)
		if a != b {
			t.Errorf("paletteFor(%d) not stable: %+v vs %+v", mood, a, b)
		}
		if a.ID != mood {
			t.Errorf("paletteFor(%d).ID = %d", mood, a.ID)
		}
	}
}

func TestPaletteColorsInRange(t *testing.T) {
	for mood := 1; mood <= 10; mood++ {
		for i, c := range PaletteFor(mood).Colors {
			for _, v := range [...]float64{c.R, c.G, c.B, c.A} {
				if v < 0 || v > 1 {
					t.Errorf("palette %d color %d component %v out of [0,1]", mood, i, v)
				}
			}
		}
	}
}

func TestLightenMovesTowardWhite(t *testing.T) {
	c := PaletteFor(1).Colors[0] // a dark color
	l := Lighten(c, 0.3)
	if l.R+l.G+l.B <= c.R+c.G+c.B {
		t.Errorf("lighten did not brighten: %+v -> %+v", c, l)
	}
	if l.A != c.A {
		t.Errorf("lighten changed alpha: %v -> %v", c.A, l.A)
	}

	// Saturates at white rather than overflowing.
	w := Lighten(c, 10)
	for _, v := range [...]float64{w.R, w.G, w.B} {
		if v < 0 || v > 1+epsilon {
			t.Errorf("lighten overflowed: %+v", w)
		}
	}
}

func TestDarkenMovesTowardBlack(t *testing.T) {
	c := PaletteFor(10).Colors[0] // a bright color
	d := Darken(c, 0.3)
	if d.R+d.G+d.B >= c.R+c.G+c.B {
		t.Errorf("darken did not darken: %+v -> %+v", c, d)
	}
}

package mandala

import "testing"

func TestClampedLimitsEveryField(t *testing.T) {
	b := Biometrics{
		HeartRate:  500,
		SleepHours: -3,
		Steps:      1e9,
		Mood:       42,
		Stress:     0,
		Energy:     -7,
	}.Clamped()

	assertNear(t, "heartRate", b.HeartRate, HeartRateMax)
	assertNear(t, "sleepHours", b.SleepHours, SleepHoursMin)
	assertNear(t, "steps", b.Steps, StepsMax)
	if b.Mood != LevelMax {
		t.Errorf("mood = %d, want %d", b.Mood, LevelMax)
	}
	if b.Stress != LevelMin {
		t.Errorf("stress = %d, want %d", b.Stress, LevelMin)
	}
	if b.Energy != LevelMin {
		t.Errorf("energy = %d, want %d", b.Energy, LevelMin)
	}
}

func TestActivityLevelBounds(t *testing.T) {
	b := DefaultBiometrics()

	b.Steps = 0
	assertNear(t, "floor", b.ActivityLevel(), 0.4)

	b.Steps = 100000
	assertNear(t, "ceiling", b.ActivityLevel(), 1.2)

	b.Steps = 15000
	assertNear(t, "nominal", b.ActivityLevel(), 1.0)
}

func TestComplexityBoundsAndMonotonicity(t *testing.T) {
	b := DefaultBiometrics()
	prev := 0
	for sleep := 0.0; sleep <= 14.0; sleep += 0.25 {
		b.SleepHours = sleep
		c := b.Complexity()
		if c < 3 || c > 12 {
			t.Fatalf("complexity(%v) = %d, out of [3,12]", sleep, c)
		}
		if c < prev {
			t.Fatalf("complexity decreased at sleep=%v: %d -> %d", sleep, prev, c)
		}
		prev = c
	}
}

func TestElementsPerLayerBounds(t *testing.T) {
	for _, hr := range []float64{30, 70, 144, 220} {
		b := Biometrics{HeartRate: hr}
		for layer := 0; layer < 12; layer++ {
			n := b.ElementsPerLayer(layer)
			if n < 1 || n > 24 {
				t.Errorf("elementsPerLayer(hr=%v, layer=%d) = %d, out of [1,24]", hr, layer, n)
			}
		}
	}
}

func TestStyleThresholds(t *testing.T) {
	cases := []struct {
		stress int
		want   PatternStyle
	}{
		{1, StyleCalm}, {3, StyleCalm},
		{4, StyleModerate}, {6, StyleModerate},
		{7, StyleIntense}, {10, StyleIntense},
	}
	for _, c := range cases {
		b := Biometrics{Stress: c.stress}
		if got := b.Style(); got != c.want {
			t.Errorf("style(stress=%d) = %v, want %v", c.stress, got, c.want)
		}
	}
}

func TestPatchApply(t *testing.T) {
	b := DefaultBiometrics()
	hr := 95.0
	mood := 30 // clamps to 10
	got := b.Apply(Patch{HeartRate: &hr, Mood: &mood})

	assertNear(t, "heartRate", got.HeartRate, 95)
	if got.Mood != 10 {
		t.Errorf("mood = %d, want 10", got.Mood)
	}
	// Untouched fields keep their values.
	assertNear(t, "sleepHours", got.SleepHours, b.SleepHours)
	if got.Stress != b.Stress {
		t.Errorf("stress = %d, want %d", got.Stress, b.Stress)
	}
}

func TestSeededRngIsDeterministic(t *testing.T) {
	b := DefaultBiometrics()
	r1 := b.rng()
	r2 := b.rng()
	for i := 0; i < 16; i++ {
		if r1.Float64() != r2.Float64() {
			t.Fatal("identical biometrics produced diverging rng streams")
		}
	}

	b2 := b
	b2.Mood = 6
	r3 := b.rng()
	r4 := b2.rng()
	same := true
	for i := 0; i < 16; i++ {
		if r3.Float64() != r4.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different biometrics produced identical rng streams")
	}
}

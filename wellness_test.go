package mandala

import (
	"math"
	"testing"
)

// idealBiometrics saturates every sub-score.
func idealBiometrics() Biometrics {
	return Biometrics{
		HeartRate:  70,
		SleepHours: 9,
		Steps:      10000,
		Mood:       10,
		Stress:     1,
		Energy:     10,
	}
}

func TestScorePerfect(t *testing.T) {
	if got := Score(idealBiometrics()); got != 100 {
		t.Errorf("score(ideal) = %d, want 100", got)
	}
}

func TestScoreBounds(t *testing.T) {
	worst := Biometrics{HeartRate: 220, SleepHours: 0, Steps: 0, Mood: 1, Stress: 10, Energy: 1}
	got := Score(worst)
	if got < 0 || got > 100 {
		t.Errorf("score(worst) = %d, out of [0,100]", got)
	}
}

func TestScoreMonotonicity(t *testing.T) {
	base := DefaultBiometrics()

	prev := -1
	for mood := 1; mood <= 10; mood++ {
		b := base
		b.Mood = mood
		if s := Score(b); s < prev {
			t.Errorf("score decreased in mood at %d: %d -> %d", mood, prev, s)
		} else {
			prev = s
		}
	}

	prev = -1
	for energy := 1; energy <= 10; energy++ {
		b := base
		b.Energy = energy
		if s := Score(b); s < prev {
			t.Errorf("score decreased in energy at %d: %d -> %d", energy, prev, s)
		} else {
			prev = s
		}
	}

	prev = -1
	for sleep := 0.0; sleep <= 14; sleep += 0.5 {
		b := base
		b.SleepHours = sleep
		if s := Score(b); s < prev {
			t.Errorf("score decreased in sleep at %v: %d -> %d", sleep, prev, s)
		} else {
			prev = s
		}
	}

	prev = -1
	for steps := 0.0; steps <= 50000; steps += 1000 {
		b := base
		b.Steps = steps
		if s := Score(b); s < prev {
			t.Errorf("score decreased in steps at %v: %d -> %d", steps, prev, s)
		} else {
			prev = s
		}
	}

	// Stress hurts: score is non-increasing as stress rises.
	hi := math.MaxInt
	for stress := 1; stress <= 10; stress++ {
		b := base
		b.Stress = stress
		if s := Score(b); s > hi {
			t.Errorf("score increased in stress at %d: %d -> %d", stress, hi, s)
		} else {
			hi = s
		}
	}

	// Heart rate deviation hurts symmetrically.
	hi = math.MaxInt
	for dev := 0.0; dev <= 100; dev += 5 {
		b := base
		b.HeartRate = 70 + dev
		if s := Score(b); s > hi {
			t.Errorf("score increased with hr deviation %v: %d -> %d", dev, hi, s)
		} else {
			hi = s
		}
	}
}

func TestScoreBuckets(t *testing.T) {
	if got := ScoreBucket(0); got != 0 {
		t.Errorf("bucket(0) = %d, want 0", got)
	}
	if got := ScoreBucket(59); got != 5 {
		t.Errorf("bucket(59) = %d, want 5", got)
	}
	if got := ScoreBucket(100); got != 9 {
		t.Errorf("bucket(100) = %d, want 9 (clamped)", got)
	}
	for s := 0; s <= 100; s++ {
		if ScoreSubtitle(s) == "" {
			t.Fatalf("empty subtitle for score %d", s)
		}
	}
}

func TestPatternLabel(t *testing.T) {
	b := idealBiometrics()
	got := PatternLabel(b)
	want := PaletteFor(10).Name + " · " + scoreSubtitles[9]
	if got != want {
		t.Errorf("patternLabel = %q, want %q", got, want)
	}
}

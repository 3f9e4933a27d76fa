package mandala

import (
	"math"
	"math/rand/v2"
)

// Biometric field bounds. Values outside these ranges are clamped at
// consumption points rather than rejected.
const (
	HeartRateMin, HeartRateMax   = 30.0, 220.0
	SleepHoursMin, SleepHoursMax = 0.0, 14.0
	StepsMin, StepsMax           = 0.0, 50000.0
	LevelMin, LevelMax           = 1, 10 // mood, stress, energy
)

// Biometrics is the 6-field input vector driving generation. It is written
// only by the UI collaborator; the core reads it and never mutates it.
type Biometrics struct {
	HeartRate  float64 `yaml:"heartRate"`  // beats per minute
	SleepHours float64 `yaml:"sleepHours"` // hours slept last night
	Steps      float64 `yaml:"steps"`      // step count today
	Mood       int     `yaml:"mood"`       // 1 (low) to 10 (high)
	Stress     int     `yaml:"stress"`     // 1 (relaxed) to 10 (strained)
	Energy     int     `yaml:"energy"`     // 1 (drained) to 10 (charged)
}

// DefaultBiometrics returns a neutral mid-range starting record.
func DefaultBiometrics() Biometrics {
	return Biometrics{
		HeartRate:  70,
		SleepHours: 7,
		Steps:      5000,
		Mood:       5,
		Stress:     5,
		Energy:     5,
	}
}

// Clamped returns a copy with every field limited to its valid range.
func (b Biometrics) Clamped() Biometrics {
	b.HeartRate = clamp(b.HeartRate, HeartRateMin, HeartRateMax)
	b.SleepHours = clamp(b.SleepHours, SleepHoursMin, SleepHoursMax)
	b.Steps = clamp(b.Steps, StepsMin, StepsMax)
	b.Mood = clampInt(b.Mood, LevelMin, LevelMax)
	b.Stress = clampInt(b.Stress, LevelMin, LevelMax)
	b.Energy = clampInt(b.Energy, LevelMin, LevelMax)
	return b
}

// ActivityLevel is the steps-derived global scale factor in [0.4, 1.2].
func (b Biometrics) ActivityLevel() float64 {
	return clamp(b.Steps/15000, 0.4, 1.2)
}

// Complexity is the layer count in [3, 12], a non-decreasing step function
// of sleep hours.
func (b Biometrics) Complexity() int {
	return clampInt(int(math.Floor(b.SleepHours*1.5))+2, 3, 12)
}

// ElementsPerLayer returns the element count for the given layer index,
// in [1, 24]. The upper bound is a performance safeguard.
func (b Biometrics) ElementsPerLayer(layer int) int {
	base := int(math.Floor(b.HeartRate / 12))
	if base < 6 {
		base = 6
	}
	return clampInt(base+layer, 1, 24)
}

// Style returns the pattern style implied by the stress level.
func (b Biometrics) Style() PatternStyle {
	return styleForStress(b.Stress)
}

// EnergyMultiplier scales element sizes by the energy level, in (0, 1].
func (b Biometrics) EnergyMultiplier() float64 {
	return float64(clampInt(b.Energy, LevelMin, LevelMax)) / 10
}

// rng returns a PCG source seeded from the six fields, so any jitter drawn
// during generation is identical for identical biometrics.
func (b Biometrics) rng() *rand.Rand {
	hi := uint64(math.Float64bits(b.HeartRate)) ^
		uint64(math.Float64bits(b.SleepHours))<<1 ^
		uint64(math.Float64bits(b.Steps))<<2
	lo := uint64(b.Mood)<<16 | uint64(b.Stress)<<8 | uint64(b.Energy)
	return rand.New(rand.NewPCG(hi, lo))
}

// Patch is a partial biometrics update. Nil fields are left unchanged.
type Patch struct {
	HeartRate  *float64
	SleepHours *float64
	Steps      *float64
	Mood       *int
	Stress     *int
	Energy     *int
}

// Apply returns a copy of b with the patch's non-nil fields applied and
// the result clamped to valid ranges.
func (b Biometrics) Apply(p Patch) Biometrics {
	if p.HeartRate != nil {
		b.HeartRate = *p.HeartRate
	}
	if p.SleepHours != nil {
		b.SleepHours = *p.SleepHours
	}
	if p.Steps != nil {
		b.Steps = *p.Steps
	}
	if p.Mood != nil {
		b.Mood = *p.Mood
	}
	if p.Stress != nil {
		b.Stress = *p.Stress
	}
	if p.Energy != nil {
		b.Energy = *p.Energy
	}
	return b.Clamped()
}

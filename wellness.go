package mandala

import "math"

// Sub-score weights. They sum to 1.0, so a record that saturates every
// sub-score produces exactly 100.
const (
	weightHeartRate = 0.15
	weightSleep     = 0.25
	weightSteps     = 0.15
	weightMood      = 0.25
	weightEnergy    = 0.10
	weightStress    = 0.10
)

// Targets for the rate-based sub-scores.
const (
	restingHeartRate = 70.0    // bpm at which the heart rate sub-score peaks
	idealSleepHours  = 9.0     // hours for a full sleep sub-score
	idealSteps       = 10000.0 // steps for a full steps sub-score
)

// Score computes the 0-100 composite wellness score from weighted per-field
// sub-scores. Deterministic, no side effects.
func Score(b Biometrics) int {
	b = b.Clamped()

	hr := clamp(100-math.Abs(b.HeartRate-restingHeartRate)*1.5, 0, 100)
	sleep := clamp(b.SleepHours/idealSleepHours*100, 0, 100)
	steps := clamp(b.Steps/idealSteps*100, 0, 100)
	mood := clamp(float64(b.Mood)*10, 0, 100)
	energy := clamp(float64(b.Energy)*10, 0, 100)
	stress := clamp(float64(11-b.Stress)*10, 0, 100) // inverted: low stress scores high

	total := hr*weightHeartRate +
		sleep*weightSleep +
		steps*weightSteps +
		mood*weightMood +
		energy*weightEnergy +
		stress*weightStress

	return int(clamp(math.Round(total), 0, 100))
}

// scoreSubtitles are the 10-bucket display subtitles, indexed by score/10.
var scoreSubtitles = [10]string{
	"seeking balance",
	"gathering stillness",
	"slowly unwinding",
	"finding rhythm",
	"settling in",
	"gently flowing",
	"gaining momentum",
	"brightly centered",
	"in harmony",
	"in full bloom",
}

// ScoreBucket maps a 0-100 score to its subtitle bucket index in [0, 9].
func ScoreBucket(score int) int {
	return clampInt(score/10, 0, 9)
}

// ScoreSubtitle returns the display subtitle for a 0-100 score.
func ScoreSubtitle(score int) string {
	return scoreSubtitles[ScoreBucket(score)]
}

// PatternLabel describes the current composition for display collaborators:
// the mood palette name plus the wellness subtitle.
func PatternLabel(b Biometrics) string {
	return PaletteFor(b.Mood).Name + " · " + ScoreSubtitle(Score(b))
}

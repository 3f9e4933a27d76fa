package mandala

import "math"

// Evolution constants.
const (
	// rotationSpeedDiv converts heart rate to a base rotation speed in
	// radians per reference frame.
	rotationSpeedDiv = 3000.0

	// breathingAmplitude is the sinusoidal breathing contribution.
	breathingAmplitude = 0.02

	// pulseEnergyThreshold gates the aura pulse: the aura exists from
	// energy 6 but only pulses above 7.
	pulseEnergyThreshold = 7

	// pulsePeriodDiv is the elapsed-ms divisor for the pulse sine.
	pulsePeriodDiv = 500.0
)

// Breathing and pulse clamp bands.
var (
	breathingClamp = Range{Min: 0.5, Max: 2.0}
	pulseClamp     = Range{Min: 0.8, Max: 1.3}
)

// FrameDeltas is one frame of transform updates for a rendered scene.
// Rotations holds an absolute rotation offset per layer per element, indexed
// the same way as SceneGraph.Layers. The backing buffers are reused across
// ticks: consume the deltas before the next Tick or copy them.
type FrameDeltas struct {
	Rotations      [][]float64
	BreathingScale float64
	AuraPulse      float64

	// SceneAlpha is the crossfade alpha for the whole composition, set by
	// the engine while a newly installed scene fades in.
	SceneAlpha float64

	// Computed is false when the tick was throttled and the previous
	// deltas are being reported unchanged.
	Computed bool
}

// Evolver computes per-frame transform deltas as a pure function of elapsed
// time and current biometrics, with two pieces of internal state: the
// throttle accumulator and a measured-rate estimate.
type Evolver struct {
	// TargetFPS caps how often deltas are recomputed. Zero means 60.
	TargetFPS float64
	// MinFPS is the measured-rate floor below which evolution is skipped
	// entirely so the system can recover. Zero means 15.
	MinFPS float64

	lastComputeMs float64
	prevTickMs    float64
	haveTick      bool
	emaFPS        float64
	samples       int

	last   FrameDeltas
	rotBuf [][]float64
}

// NewEvolver returns an evolver with default throttling (60 Hz cap,
// 15 fps floor).
func NewEvolver() *Evolver {
	return &Evolver{TargetFPS: 60, MinFPS: 15}
}

// fpsWarmupSamples is how many ticks the rate estimate needs before the
// low-rate floor can trigger.
const fpsWarmupSamples = 10

// Tick produces the frame deltas for the given scene at elapsedMs. Calls
// arriving faster than the target interval, or while the measured rate is
// under the floor, skip computation and report the last deltas with
// Computed = false.
func (e *Evolver) Tick(s *SceneGraph, b Biometrics, elapsedMs float64) FrameDeltas {
	e.observeRate(elapsedMs)

	target := e.TargetFPS
	if target <= 0 {
		target = 60
	}
	interval := 1000 / target

	if e.last.Computed && elapsedMs-e.lastComputeMs < interval {
		return e.throttled()
	}
	if e.samples >= fpsWarmupSamples && e.emaFPS < e.minFPS() && e.last.Computed {
		return e.throttled()
	}

	b = b.Clamped()
	d := FrameDeltas{
		Rotations:      e.rotations(s, b, elapsedMs, target),
		BreathingScale: breathingScale(b, elapsedMs),
		AuraPulse:      auraPulse(s, b, elapsedMs),
		SceneAlpha:     1,
		Computed:       true,
	}

	e.lastComputeMs = elapsedMs
	e.last = d
	return d
}

// LastDeltas returns the most recently computed deltas.
func (e *Evolver) LastDeltas() FrameDeltas {
	return e.last
}

func (e *Evolver) minFPS() float64 {
	if e.MinFPS <= 0 {
		return 15
	}
	return e.MinFPS
}

func (e *Evolver) throttled() FrameDeltas {
	d := e.last
	d.Computed = false
	return d
}

// observeRate folds the gap since the previous tick into an exponential
// moving average of the call rate.
func (e *Evolver) observeRate(elapsedMs float64) {
	if !e.haveTick {
		e.haveTick = true
		e.prevTickMs = elapsedMs
		return
	}
	dt := elapsedMs - e.prevTickMs
	e.prevTickMs = elapsedMs
	if dt <= 0 {
		return
	}
	inst := 1000 / dt
	if e.samples == 0 {
		e.emaFPS = inst
	} else {
		e.emaFPS = e.emaFPS*0.9 + inst*0.1
	}
	e.samples++
}

// rotations fills the per-element rotation buffer. Speeds scale with heart
// rate and energy and grow with element index; even indices rotate forward,
// odd indices reverse, producing counter-rotating rings.
func (e *Evolver) rotations(s *SceneGraph, b Biometrics, elapsedMs, targetFPS float64) [][]float64 {
	if cap(e.rotBuf) < len(s.Layers) {
		e.rotBuf = make([][]float64, len(s.Layers))
	}
	e.rotBuf = e.rotBuf[:len(s.Layers)]

	// Speeds are radians per reference frame; convert elapsed time to
	// reference frames so rotation is a pure function of elapsedMs.
	refFrames := elapsedMs * targetFPS / 1000
	base := (b.HeartRate / rotationSpeedDiv) * (float64(b.Energy) / 10)

	for li := range s.Layers {
		elems := s.Layers[li].Elements
		row := e.rotBuf[li]
		if cap(row) < len(elems) {
			row = make([]float64, len(elems))
		}
		row = row[:len(elems)]
		for i := range elems {
			speed := base * (1 + float64(i)*0.1)
			if i%2 == 1 {
				speed = -speed
			}
			row[i] = elems[i].RotationOffset + speed*refFrames
		}
		e.rotBuf[li] = row
	}
	return e.rotBuf
}

// breathingScale computes the global breathing factor: a slow sine whose
// period lengthens and whose resting level sinks as stress rises.
func breathingScale(b Biometrics, elapsedMs float64) float64 {
	rate := 1000 + float64(b.Stress)*100
	intensity := 1 + 0.01*float64(11-b.Stress)
	phase := math.Sin(elapsedMs/rate) * breathingAmplitude
	return clamp(intensity+phase, breathingClamp.Min, breathingClamp.Max)
}

// auraPulse computes the aura scale factor. Inactive (1.0) without a
// pulsing aura or at energy <= 7.
func auraPulse(s *SceneGraph, b Biometrics, elapsedMs float64) float64 {
	if s.Aura == nil || !s.Aura.Pulsing || b.Energy <= pulseEnergyThreshold {
		return 1
	}
	pulse := math.Sin(elapsedMs/pulsePeriodDiv)*0.1 + 1
	return clamp(pulse, pulseClamp.Min, pulseClamp.Max)
}

package mandala

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// EngineConfig configures a new Engine. Zero values select defaults.
type EngineConfig struct {
	// Viewport is the initial scene coordinate space. An invalid viewport
	// is accepted; the first generation then produces the fallback scene.
	Viewport Viewport

	// Biometrics is the starting record. Zero value means
	// DefaultBiometrics.
	Biometrics Biometrics

	// Logger receives warnings about degraded generations. Nil means no
	// logging.
	Logger *zap.Logger

	// TargetFPS / MinFPS configure the evolver throttle (60 / 15 default).
	TargetFPS float64
	MinFPS    float64

	// LayersPerSlice bounds generation work per frame.
	LayersPerSlice int

	// CrossfadeSeconds is how long a newly installed scene takes to fade
	// in. Zero means 0.6; negative disables the crossfade.
	CrossfadeSeconds float64
}

// defaultCrossfadeSeconds is the scene fade-in duration.
const defaultCrossfadeSeconds = 0.6

// Engine is the application context tying the components together. It owns
// the biometrics record (single writer: the UI collaborator, through
// UpdateBiometrics), the current scene graph, the scheduler, and the
// evolver. All methods must be called from one update thread; there is no
// internal locking.
type Engine struct {
	log     *zap.Logger
	bio     Biometrics
	vp      Viewport
	gen     *Generator
	sched   *Scheduler
	evolver *Evolver
	presets map[string]Biometrics

	scene      *SceneGraph
	elapsedMs  float64
	fade       *gween.Tween
	fadeSec    float32
	sceneAlpha float64

	// OnSceneReady receives each newly installed scene graph.
	OnSceneReady func(*SceneGraph)
	// OnFrame receives the per-frame transform deltas.
	OnFrame func(FrameDeltas)
	// OnNotice receives one-line, non-blocking user notices (for example
	// when a degraded fallback scene was produced).
	OnNotice func(string)
}

// NewEngine creates an engine and requests the initial generation.
func NewEngine(cfg EngineConfig) *Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	bio := cfg.Biometrics
	if bio == (Biometrics{}) {
		bio = DefaultBiometrics()
	}
	bio = bio.Clamped()

	gen := NewGenerator(log)
	gen.LayersPerSlice = cfg.LayersPerSlice

	evolver := NewEvolver()
	if cfg.TargetFPS > 0 {
		evolver.TargetFPS = cfg.TargetFPS
	}
	if cfg.MinFPS > 0 {
		evolver.MinFPS = cfg.MinFPS
	}

	fadeSec := float32(cfg.CrossfadeSeconds)
	if cfg.CrossfadeSeconds == 0 {
		fadeSec = defaultCrossfadeSeconds
	} else if cfg.CrossfadeSeconds < 0 {
		fadeSec = 0
	}

	e := &Engine{
		log:        log,
		bio:        bio,
		vp:         cfg.Viewport,
		gen:        gen,
		evolver:    evolver,
		presets:    Presets(),
		fadeSec:    fadeSec,
		sceneAlpha: 1,
	}
	e.sched = NewScheduler(gen, e.installScene)
	e.requestGeneration("init")
	return e
}

// Biometrics returns the current (clamped) record.
func (e *Engine) Biometrics() Biometrics {
	return e.bio
}

// Scene returns the currently installed scene graph, or nil before the
// first generation completes.
func (e *Engine) Scene() *SceneGraph {
	return e.scene
}

// Viewport returns the current scene coordinate space.
func (e *Engine) Viewport() Viewport {
	return e.vp
}

// UpdateBiometrics applies a partial update and requests a regeneration.
func (e *Engine) UpdateBiometrics(p Patch) {
	e.bio = e.bio.Apply(p)
	e.requestGeneration("biometrics")
}

// SetBiometrics replaces the whole record and requests a regeneration.
func (e *Engine) SetBiometrics(b Biometrics) {
	e.bio = b.Clamped()
	e.requestGeneration("biometrics")
}

// OnResize maps new container dimensions into the scene coordinate space
// and requests a regeneration.
func (e *Engine) OnResize(width, height float64) {
	e.vp = Viewport{Width: width, Height: height}
	e.requestGeneration("resize")
}

// Update advances the engine by dtMs milliseconds: one scheduler slice, one
// evolver tick, and the callbacks. Call once per rendered frame.
func (e *Engine) Update(dtMs float64) {
	e.elapsedMs += dtMs
	e.sched.Step()

	if e.fade != nil {
		a, done := e.fade.Update(float32(dtMs) / 1000)
		e.sceneAlpha = float64(a)
		if done {
			e.fade = nil
		}
	}

	if e.scene == nil {
		return
	}
	d := e.evolver.Tick(e.scene, e.bio, e.elapsedMs)
	d.SceneAlpha = e.sceneAlpha
	if e.OnFrame != nil {
		e.OnFrame(d)
	}
}

// ElapsedMs returns the engine clock in milliseconds.
func (e *Engine) ElapsedMs() float64 {
	return e.elapsedMs
}

// WellnessScore returns the 0-100 composite score for the current record.
func (e *Engine) WellnessScore() int {
	return Score(e.bio)
}

// PatternLabel returns the display label (palette name plus subtitle) for
// the current record.
func (e *Engine) PatternLabel() string {
	return PatternLabel(e.bio)
}

// ApplyPreset bulk-applies a named biometric bundle.
func (e *Engine) ApplyPreset(name string) error {
	b, ok := e.presets[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	e.SetBiometrics(b)
	return nil
}

// RegisterPresets merges a preset table (for example one loaded from a
// YAML file) over the built-ins. Later entries win.
func (e *Engine) RegisterPresets(table map[string]Biometrics) {
	for name, b := range table {
		e.presets[name] = b.Clamped()
	}
}

// requestGeneration funnels every trigger through the scheduler so bursts
// coalesce.
func (e *Engine) requestGeneration(reason string) {
	e.sched.Request(GenRequest{Biometrics: e.bio, Viewport: e.vp, Reason: reason})
}

// installScene is the scheduler completion hook: the old graph is discarded
// and the new snapshot installed atomically, then the crossfade starts.
func (e *Engine) installScene(s *SceneGraph, err error) {
	e.scene = s
	if e.fadeSec > 0 {
		e.fade = gween.New(0, 1, e.fadeSec, ease.OutQuad)
		e.sceneAlpha = 0
	} else {
		e.sceneAlpha = 1
	}

	if err != nil {
		e.log.Warn("generation degraded", zap.Error(err))
		if e.OnNotice != nil {
			e.OnNotice("visualization degraded: " + err.Error())
		}
	}
	if e.OnSceneReady != nil {
		e.OnSceneReady(s)
	}
}

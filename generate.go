package mandala

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidViewport reports zero, negative, or non-finite viewport
// dimensions. Non-fatal: callers receive the fallback minimal scene.
var ErrInvalidViewport = errors.New("mandala: invalid viewport")

// defaultLayersPerSlice is how many layers a cooperative generation step
// builds before yielding back to the frame scheduler.
const defaultLayersPerSlice = 4

// Generator maps biometrics plus a viewport to a scene graph. Generation is
// deterministic for identical inputs (jitter is seeded from the biometrics)
// and best-effort: a failed element or layer is skipped, never fatal.
type Generator struct {
	// LayersPerSlice bounds the work done per cooperative step. Zero means
	// defaultLayersPerSlice.
	LayersPerSlice int

	log *zap.Logger
}

// NewGenerator creates a Generator. A nil logger disables logging.
func NewGenerator(log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{log: log}
}

// Generate builds a complete scene graph in one call. On an invalid viewport
// it returns the fallback minimal scene together with ErrInvalidViewport;
// the scene is always non-nil and drawable.
func (g *Generator) Generate(b Biometrics, vp Viewport) (*SceneGraph, error) {
	run, err := g.start(b, vp)
	if err != nil {
		return fallbackScene(vp), err
	}
	for !run.step(run.sliceSize) {
	}
	return run.finish(), nil
}

// start validates inputs and prepares an incremental generation run.
func (g *Generator) start(b Biometrics, vp Viewport) (*generationRun, error) {
	if !vp.Valid() {
		g.log.Warn("viewport invalid, using fallback scene",
			zap.Float64("width", vp.Width), zap.Float64("height", vp.Height))
		return nil, ErrInvalidViewport
	}

	b = b.Clamped()
	center := vp.CenterPoint()
	baseRadius := vp.MaxRadius() * b.ActivityLevel()
	complexity := b.Complexity()

	slice := g.LayersPerSlice
	if slice <= 0 {
		slice = defaultLayersPerSlice
	}

	return &generationRun{
		gen:        g,
		bio:        b,
		complexity: complexity,
		rng:        b.rng(),
		build:      builderFor(b.Style()),
		sliceSize:  slice,
		scene: &SceneGraph{
			ID:         uuid.New(),
			Center:     center,
			BaseRadius: baseRadius,
			Style:      b.Style(),
			Palette:    PaletteFor(b.Mood),
			Layers:     make([]Layer, 0, complexity),
		},
	}, nil
}

// generationRun is an in-flight generation. The scheduler advances it a few
// layers at a time so slow devices keep servicing input between slices.
type generationRun struct {
	gen        *Generator
	bio        Biometrics
	complexity int
	rng        *rand.Rand
	build      elementBuilder
	sliceSize  int

	scene *SceneGraph
	layer int // next layer index to build
}

// step builds up to maxLayers layers and reports whether the layer loop is
// complete. The run owns its scene exclusively until finish.
func (r *generationRun) step(maxLayers int) bool {
	for built := 0; r.layer < r.complexity && built < maxLayers; built++ {
		r.buildLayer(r.layer)
		r.layer++
	}
	return r.layer >= r.complexity
}

// buildLayer constructs one concentric ring. Individual element failures are
// skipped; a layer that loses every element is dropped entirely.
func (r *generationRun) buildLayer(layer int) {
	s := r.scene
	// Radius shrinks toward the center: layer 0 is the outermost ring.
	radius := s.BaseRadius * (1 - float64(layer)/float64(r.complexity)*0.6)
	color := s.Palette.Colors[layer%3]
	count := r.bio.ElementsPerLayer(layer)

	l := Layer{
		Index:      layer,
		Radius:     radius,
		ColorIndex: layer % 3,
		Elements:   make([]Element, 0, count),
	}

	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		pos := Vec2{
			X: s.Center.X + radius*math.Cos(angle),
			Y: s.Center.Y + radius*math.Sin(angle),
		}
		e, err := r.build(r.bio, layer, radius, angle, pos, color, r.rng)
		if err != nil {
			s.SkippedElements++
			s.Degraded = true
			r.gen.log.Warn("skipping element", zap.Int("layer", layer), zap.Int("index", i), zap.Error(err))
			continue
		}
		l.Elements = append(l.Elements, e)
	}

	if len(l.Elements) == 0 && count > 0 {
		s.SkippedLayers++
		s.Degraded = true
		r.gen.log.Warn("skipping empty layer", zap.Int("layer", layer))
		return
	}
	s.Layers = append(s.Layers, l)
}

// finish builds the centerpiece and aura and releases the completed scene.
func (r *generationRun) finish() *SceneGraph {
	s := r.scene
	b := r.bio

	centralSize := math.Max(10, 15+float64(b.Mood)*2+float64(b.Energy))
	s.Central = CentralElement{
		OuterRingRadius: centralSize * 1.5,
		MainRadius:      centralSize,
		InnerCoreRadius: centralSize * 0.4,
		RingColor:       s.Palette.Colors[0],
		CoreColor:       s.Palette.Colors[2],
	}

	if b.Energy >= auraEnergyThreshold {
		s.Aura = &EnergyAura{
			Radius:  s.BaseRadius * 1.2,
			Color:   Lighten(s.Palette.Colors[0], 0.2),
			Dashed:  true,
			Pulsing: true,
		}
	}

	r.gen.log.Debug("scene generated",
		zap.String("id", s.ID.String()),
		zap.Int("layers", len(s.Layers)),
		zap.Int("elements", s.ElementCount()),
		zap.String("style", s.Style.String()))

	r.scene = nil
	return s
}

// auraEnergyThreshold is the energy level at which the aura ring appears.
const auraEnergyThreshold = 6

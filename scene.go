package mandala

import (
	"math"

	"github.com/google/uuid"
)

// SceneGraph is the renderer-agnostic description of one generated mandala.
// It is produced atomically per generation and owned exclusively by the
// rendering pipeline; a new generation replaces the previous graph wholesale.
type SceneGraph struct {
	// ID identifies this snapshot for handoff and log correlation. It is
	// metadata only: structural equality of scenes ignores it.
	ID uuid.UUID

	Center     Vec2
	BaseRadius float64
	Style      PatternStyle
	Palette    Palette

	// Layers are ordered outermost first (layer 0 has the largest radius).
	Layers []Layer

	Central CentralElement

	// Aura is present iff energy >= 6.
	Aura *EnergyAura

	// Degraded is set when generation fell back to the minimal scene or
	// skipped units; SkippedElements/SkippedLayers count the losses.
	Degraded        bool
	SkippedElements int
	SkippedLayers   int
}

// Layer is one concentric ring of elements at a given radius.
type Layer struct {
	Index      int
	Radius     float64
	ColorIndex int // index into Palette.Colors
	Elements   []Element
}

// Element is a single shape placed on a layer ring.
type Element struct {
	Angle    float64 // ring angle in radians
	Position Vec2    // world position on the ring (includes any seeded jitter)

	Shape      ShapeKind
	Size       float64
	Sides      int     // polygon only
	Points     int     // star only
	InnerRatio float64 // star only: waist radius as a fraction of Size

	Color       Color
	StrokeColor Color
	Opacity     float64

	RotationOffset float64 // static rotation in radians
	Scale          float64 // static uniform scale (1 unless intense)
}

// CentralElement is the three-ring centerpiece of every mandala.
type CentralElement struct {
	OuterRingRadius float64
	MainRadius      float64
	InnerCoreRadius float64
	RingColor       Color // palette first entry
	CoreColor       Color // palette last entry
}

// EnergyAura is the dashed outer ring present at high energy. It is marked
// perpetually pulsing; the evolver activates the pulse above energy 7.
type EnergyAura struct {
	Radius  float64
	Color   Color
	Dashed  bool
	Pulsing bool
}

// ElementCount returns the total number of elements across all layers.
func (s *SceneGraph) ElementCount() int {
	n := 0
	for i := range s.Layers {
		n += len(s.Layers[i].Elements)
	}
	return n
}

// Fallback minimal scene constants.
const (
	fallbackLayers       = 5
	fallbackBaseElements = 8
)

// fallbackScene builds the fixed minimal mandala used when generation fails
// entirely: 5 layers of circles (8 + 2*layer elements), two alternating
// colors, one central circle. The viewport may itself be invalid, in which
// case a unit square is assumed.
func fallbackScene(vp Viewport) *SceneGraph {
	if !vp.Valid() {
		vp = Viewport{Width: 1, Height: 1}
	}
	p := DefaultPalette()
	center := vp.CenterPoint()
	base := vp.MaxRadius()

	s := &SceneGraph{
		ID:         uuid.New(),
		Center:     center,
		BaseRadius: base,
		Style:      StyleCalm,
		Palette:    p,
		Degraded:   true,
	}

	for layer := 0; layer < fallbackLayers; layer++ {
		radius := base * (1 - float64(layer)/fallbackLayers*0.6)
		count := fallbackBaseElements + 2*layer
		l := Layer{
			Index:      layer,
			Radius:     radius,
			ColorIndex: layer % 2,
			Elements:   make([]Element, 0, count),
		}
		color := p.Colors[layer%2]
		for i := 0; i < count; i++ {
			angle := 2 * math.Pi * float64(i) / float64(count)
			l.Elements = append(l.Elements, Element{
				Angle: angle,
				Position: Vec2{
					X: center.X + radius*math.Cos(angle),
					Y: center.Y + radius*math.Sin(angle),
				},
				Shape:       ShapeCircle,
				Size:        math.Max(2, radius*0.03),
				Color:       color,
				StrokeColor: Darken(color, 0.15),
				Opacity:     0.7,
				Scale:       1,
			})
		}
		s.Layers = append(s.Layers, l)
	}

	s.Central = CentralElement{
		OuterRingRadius: 22.5,
		MainRadius:      15,
		InnerCoreRadius: 6,
		RingColor:       p.Colors[0],
		CoreColor:       p.Colors[2],
	}
	return s
}

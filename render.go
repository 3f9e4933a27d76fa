package mandala

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixelImage backs all untextured triangle draws.
var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Lazy so that importing the package never touches the GPU.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Aura ring rendering constants.
const (
	auraDashCount     = 32
	auraDashFill      = 0.55 // fraction of each dash slot that is drawn
	auraRingThickness = 3.0
	auraArcSteps      = 4 // subdivisions per dash arc
)

// Renderer draws Engine scenes with Ebitengine. It implements ebiten.Game:
// Update advances the engine, Draw fan-triangulates every element into a
// shared vertex buffer and submits untextured triangles.
type Renderer struct {
	engine *Engine
	deltas FrameDeltas

	// ClearColor fills the screen before the scene is drawn.
	ClearColor Color

	updateFunc func() error

	// Reused buffers (grow to high-water mark).
	verts  []ebiten.Vertex
	inds   []uint16
	ptsBuf []Vec2

	layoutW, layoutH int
}

// NewRenderer creates a renderer bound to an engine. The renderer registers
// itself as the engine's OnFrame consumer.
func NewRenderer(engine *Engine) *Renderer {
	r := &Renderer{
		engine:     engine,
		ClearColor: Color{R: 0.04, G: 0.04, B: 0.07, A: 1},
	}
	engine.OnFrame = func(d FrameDeltas) { r.deltas = d }
	return r
}

// SetUpdateFunc registers a callback invoked once per frame before the
// engine updates. Use it for input handling in demos.
func (r *Renderer) SetUpdateFunc(fn func() error) {
	r.updateFunc = fn
}

// Update implements ebiten.Game.
func (r *Renderer) Update() error {
	if r.updateFunc != nil {
		if err := r.updateFunc(); err != nil {
			return err
		}
	}
	tps := float64(ebiten.TPS())
	if tps <= 0 {
		tps = 60
	}
	r.engine.Update(1000 / tps)
	return nil
}

// Draw implements ebiten.Game.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(r.ClearColor))

	scene := r.engine.Scene()
	if scene == nil {
		return
	}
	d := r.deltas
	if d.Rotations == nil {
		return // no tick yet
	}

	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	breath := d.BreathingScale
	if breath == 0 {
		breath = 1
	}
	alpha := d.SceneAlpha

	for li := range scene.Layers {
		layer := &scene.Layers[li]
		for i := range layer.Elements {
			e := &layer.Elements[i]
			rot := e.RotationOffset
			if li < len(d.Rotations) && i < len(d.Rotations[li]) {
				rot = d.Rotations[li][i]
			}
			pos := scaleAbout(e.Position, scene.Center, breath)
			m := makeTransform(pos.X, pos.Y, rot, e.Scale*breath)
			r.ptsBuf = outlinePoints(*e, r.ptsBuf)
			r.pushFan(r.ptsBuf, m, e.Color.WithAlpha(e.Opacity*alpha))
		}
	}

	r.drawCentral(scene, breath, alpha)
	r.drawAura(scene, d.AuraPulse, alpha)

	if len(r.inds) > 0 {
		screen.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})
	}
}

// Layout implements ebiten.Game and feeds window size changes to the
// engine's viewport adapter.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != r.layoutW || outsideHeight != r.layoutH {
		r.layoutW, r.layoutH = outsideWidth, outsideHeight
		r.engine.OnResize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// drawCentral pushes the three concentric center circles.
func (r *Renderer) drawCentral(scene *SceneGraph, breath, alpha float64) {
	c := scene.Central
	m := makeTransform(scene.Center.X, scene.Center.Y, 0, breath)

	r.ptsBuf = circlePoints(c.OuterRingRadius, r.ptsBuf)
	r.pushFan(r.ptsBuf, m, c.RingColor.WithAlpha(0.25*alpha))

	r.ptsBuf = circlePoints(c.MainRadius, r.ptsBuf)
	r.pushFan(r.ptsBuf, m, c.RingColor.WithAlpha(0.85*alpha))

	r.ptsBuf = circlePoints(c.InnerCoreRadius, r.ptsBuf)
	r.pushFan(r.ptsBuf, m, c.CoreColor.WithAlpha(alpha))
}

// drawAura pushes the dashed aura ring as arc quads, scaled by the pulse.
func (r *Renderer) drawAura(scene *SceneGraph, pulse, alpha float64) {
	aura := scene.Aura
	if aura == nil {
		return
	}
	if pulse == 0 {
		pulse = 1
	}
	radius := aura.Radius * pulse
	inner := radius - auraRingThickness
	col := aura.Color.WithAlpha(0.6 * alpha)

	slot := 2 * math.Pi / auraDashCount
	for dash := 0; dash < auraDashCount; dash++ {
		a0 := float64(dash) * slot
		a1 := a0 + slot*auraDashFill
		r.pushArcQuad(scene.Center, inner, radius, a0, a1, col)
	}
}

// pushArcQuad appends an annular arc segment as a short triangle strip.
func (r *Renderer) pushArcQuad(center Vec2, inner, outer, a0, a1 float64, col Color) {
	base := uint16(len(r.verts))
	cr, cg, cb, ca := premultiply(col)

	for i := 0; i <= auraArcSteps; i++ {
		a := lerp(a0, a1, float64(i)/auraArcSteps)
		sin, cos := math.Sincos(a)
		r.verts = append(r.verts,
			ebiten.Vertex{
				DstX: float32(center.X + outer*cos), DstY: float32(center.Y + outer*sin),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
			ebiten.Vertex{
				DstX: float32(center.X + inner*cos), DstY: float32(center.Y + inner*sin),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
		)
	}
	for i := 0; i < auraArcSteps; i++ {
		v := base + uint16(i*2)
		r.inds = append(r.inds, v, v+1, v+2, v+1, v+3, v+2)
	}
}

// pushFan appends an outline transformed by m, fan-triangulated from a hub
// vertex at the shape center. The hub fan handles both convex polygons and
// star outlines (which are not convex but are radially monotone about their
// center). N outline points produce N+1 vertices and 3*N indices.
func (r *Renderer) pushFan(points []Vec2, m [6]float64, col Color) {
	n := len(points)
	if n < 3 {
		return
	}
	base := uint16(len(r.verts))
	cr, cg, cb, ca := premultiply(col)

	hx, hy := transformPoint(m, 0, 0)
	r.verts = append(r.verts, ebiten.Vertex{
		DstX: float32(hx), DstY: float32(hy),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
	})
	for _, p := range points {
		x, y := transformPoint(m, p.X, p.Y)
		r.verts = append(r.verts, ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		r.inds = append(r.inds, base, base+1+uint16(i), base+1+uint16(next))
	}
}

// premultiply converts a straight-alpha Color to premultiplied float32
// vertex components.
func premultiply(c Color) (cr, cg, cb, ca float32) {
	a := clamp(c.A, 0, 1)
	return float32(c.R * a), float32(c.G * a), float32(c.B * a), float32(a)
}

// toRGBA converts a Color to color.RGBA for screen fills.
func toRGBA(c Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R, 0, 1) * 255),
		G: uint8(clamp(c.G, 0, 1) * 255),
		B: uint8(clamp(c.B, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ClearColor    Color // zero value keeps the renderer default
	Resizable     bool

	// UpdateFunc, if set, runs once per frame before the engine updates.
	// Demos use it for input handling.
	UpdateFunc func() error
}

// Run opens a window and drives the engine with a Renderer until the window
// closes. For full control, create a Renderer and run it with ebiten
// yourself.
func Run(engine *Engine, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	r := NewRenderer(engine)
	if cfg.ClearColor != (Color{}) {
		r.ClearColor = cfg.ClearColor
	}
	if cfg.UpdateFunc != nil {
		r.SetUpdateFunc(cfg.UpdateFunc)
	}
	return ebiten.RunGame(r)
}

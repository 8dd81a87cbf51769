package softwillow

import (
	"fmt"
	"math"
	"time"

	"github.com/phanxgames/softwillow/math3d"
)

// Light is a single directional light. Direction points from the light into
// the scene and should be normalized.
type Light struct {
	Direction math3d.Float3 `yaml:"direction"`
}

// ProjectionConfig describes the perspective projection.
type ProjectionConfig struct {
	FovY       float32           `yaml:"fovy"` // vertical field of view, radians
	Near       float32           `yaml:"near"`
	Far        float32           `yaml:"far"`
	Handedness math3d.Handedness `yaml:"handedness"`
	DepthRange math3d.DepthRange `yaml:"depth_range"`
}

// RendererConfig configures NewRenderer. Zero fields take the defaults
// documented on each field.
type RendererConfig struct {
	Width      int              `yaml:"width"`  // default 1280
	Height     int              `yaml:"height"` // default 720
	Projection ProjectionConfig `yaml:"projection"`

	Camera math3d.Float3 `yaml:"camera"`
	Light  Light         `yaml:"light"` // default direction (0, 0, -1)

	Background  uint32 `yaml:"background"`   // default ColorBlack
	FillColor   uint32 `yaml:"fill_color"`   // default ColorGray
	WireColor   uint32 `yaml:"wire_color"`   // default ColorGray
	MarkerColor uint32 `yaml:"marker_color"` // default ColorRed
	GridColor   uint32 `yaml:"grid_color"`   // default ColorGrid
	GridSize    int    `yaml:"grid_size"`    // default 20
	MarkerSize  int    `yaml:"marker_size"`  // default 3

	// Options are the initial render flags; nil means DefaultRenderOptions.
	Options *RenderOptions `yaml:"options"`

	Input     InputSource `yaml:"-"`
	Presenter Presenter   `yaml:"-"`
}

// Default projection: 60 degree vertical field of view, right-handed,
// [-1, 1] depth.
const (
	defaultFovY = math.Pi / 3
	defaultNear = 0.1
	defaultFar  = 100
)

func (c RendererConfig) withDefaults() RendererConfig {
	if c.Width == 0 {
		c.Width = 1280
	}
	if c.Height == 0 {
		c.Height = 720
	}
	if c.Projection.FovY == 0 {
		c.Projection.FovY = defaultFovY
	}
	if c.Projection.Near == 0 {
		c.Projection.Near = defaultNear
	}
	if c.Projection.Far == 0 {
		c.Projection.Far = defaultFar
	}
	if c.Light.Direction == (math3d.Float3{}) {
		c.Light.Direction = math3d.Float3{Z: -1}
	}
	if c.Background == 0 {
		c.Background = ColorBlack
	}
	if c.FillColor == 0 {
		c.FillColor = ColorGray
	}
	if c.WireColor == 0 {
		c.WireColor = ColorGray
	}
	if c.MarkerColor == 0 {
		c.MarkerColor = ColorRed
	}
	if c.GridColor == 0 {
		c.GridColor = ColorGrid
	}
	if c.GridSize == 0 {
		c.GridSize = 20
	}
	if c.MarkerSize == 0 {
		c.MarkerSize = 3
	}
	return c
}

// Triangle is a projected triangle ready to rasterize. It is rebuilt every
// frame.
type Triangle struct {
	Points   [3]math3d.Float2 // screen space, y down
	UVs      [3]math3d.Float2
	Normal   math3d.Float3 // world-space unit face normal
	AvgDepth float32       // mean world-space z of the three vertices
}

// Renderer runs the frame loop: poll input, update entities, build and sort
// per-entity triangle lists, rasterize them onto the canvas and hand the
// buffer to the presenter. All work happens on the calling goroutine.
type Renderer struct {
	cfg        RendererConfig
	canvas     *Canvas
	scene      *Scene
	projection math3d.Float4x4
	options    RenderOptions

	input     InputSource
	presenter Presenter
	store     EventStore

	// Per-entity triangle lists, parallel to scene.Entities().
	lists   [][]Triangle
	sortBuf []Triangle

	running   bool
	frame     uint64
	lastFrame time.Time
	now       func() time.Time

	injectQueue     []Event
	screenshotQueue []string
	testRunner      *TestRunner

	// ScreenshotDir is where Screenshot writes PNG files. Default "screenshots".
	ScreenshotDir string

	debug bool
	stats FrameStats
}

// NewRenderer creates a renderer with an empty scene. The canvas is cleared
// to the background color so the first frame starts from a defined buffer.
func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	cfg = cfg.withDefaults()
	canvas, err := NewCanvas(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}
	opts := DefaultRenderOptions()
	if cfg.Options != nil {
		opts = *cfg.Options
	}
	p := cfg.Projection
	r := &Renderer{
		cfg:    cfg,
		canvas: canvas,
		scene:  NewScene(),
		projection: math3d.MakeProjection(
			float32(cfg.Width)/float32(cfg.Height), p.FovY, p.Near, p.Far, p.Handedness, p.DepthRange,
		),
		options:       opts,
		input:         cfg.Input,
		presenter:     cfg.Presenter,
		running:       true,
		now:           time.Now,
		ScreenshotDir: "screenshots",
	}
	canvas.Clear(cfg.Background)
	return r, nil
}

// AddEntity validates e and appends it to the scene.
func (r *Renderer) AddEntity(e *Entity) error {
	if err := r.scene.Add(e); err != nil {
		return err
	}
	r.lists = append(r.lists, make([]Triangle, 0, e.Mesh.TriangleCount()))
	return nil
}

// Scene returns the renderer's scene.
func (r *Renderer) Scene() *Scene { return r.scene }

// Canvas returns the canvas the renderer draws into.
func (r *Renderer) Canvas() *Canvas { return r.canvas }

// Projection returns the projection matrix chosen at construction.
func (r *Renderer) Projection() math3d.Float4x4 { return r.projection }

// Options returns the current render flags.
func (r *Renderer) Options() RenderOptions { return r.options }

// SetOptions replaces the render flags.
func (r *Renderer) SetOptions(o RenderOptions) { r.options = o }

// SetInput replaces the input source.
func (r *Renderer) SetInput(in InputSource) { r.input = in }

// SetPresenter replaces the presentation sink.
func (r *Renderer) SetPresenter(p Presenter) { r.presenter = p }

// SetEventStore installs an optional sink for handled input events.
func (r *Renderer) SetEventStore(store EventStore) { r.store = store }

// SetCamera moves the camera used for back-face culling.
func (r *Renderer) SetCamera(pos math3d.Float3) { r.cfg.Camera = pos }

// SetLight replaces the directional light.
func (r *Renderer) SetLight(l Light) { r.cfg.Light = l }

// FrameCount returns the number of completed frames.
func (r *Renderer) FrameCount() uint64 { return r.frame }

// Triangles returns the sorted triangle list built for entity i during the
// last frame. The slice is reused by the next frame.
func (r *Renderer) Triangles(i int) []Triangle {
	if i < 0 || i >= len(r.lists) {
		return nil
	}
	return r.lists[i]
}

// Running reports whether the loop has not been asked to stop.
func (r *Renderer) Running() bool { return r.running }

// Stop makes the loop exit after the current frame.
func (r *Renderer) Stop() {
	if r.running {
		Logger().Info("renderer stopping", "frame", r.frame)
	}
	r.running = false
}

// RenderForever runs frames until Stop is called or a quit event arrives.
// Without an input source it only returns once something calls Stop.
func (r *Renderer) RenderForever() {
	for r.running {
		r.Frame()
	}
	Logger().Info("render loop exited", "frames", r.frame)
}

// Frame runs one full iteration of the loop and reports whether the loop
// should continue. A frame in progress always completes.
func (r *Renderer) Frame() bool {
	now := r.now()
	var dt float32
	if !r.lastFrame.IsZero() {
		dt = float32(now.Sub(r.lastFrame).Seconds())
	}
	r.lastFrame = now

	r.stats = FrameStats{}
	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}

	if r.testRunner != nil {
		r.testRunner.step(r)
	}
	r.processInput()
	r.scene.Update(dt)

	if r.debug {
		r.stats.UpdateTime = time.Since(t0)
	}

	r.render()

	r.frame++
	r.warnDropped()
	if r.debug {
		r.debugLog()
	}
	return r.running
}

// processInput consumes at most one event: injected events first, then the
// input source.
func (r *Renderer) processInput() {
	ev := EventNone
	if len(r.injectQueue) > 0 {
		ev = r.injectQueue[0]
		r.injectQueue = r.injectQueue[1:]
	} else if r.input != nil {
		ev = r.input.Poll()
	}
	r.handleEvent(ev)
}

func (r *Renderer) handleEvent(ev Event) {
	switch ev {
	case EventNone:
		return
	case EventQuit, EventEscape:
		Logger().Info("stop requested", "event", ev.String())
		r.Stop()
	default:
		if !r.options.Apply(ev) {
			return
		}
	}
	if r.store != nil {
		r.store.EmitEvent(ModeEvent{Event: ev, Options: r.options, Frame: r.frame})
	}
}

// render builds, sorts and draws every entity, presents the buffer and
// clears the canvas for the next frame.
func (r *Renderer) render() {
	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}

	for i, e := range r.scene.Entities() {
		r.lists[i] = r.buildTriangles(e, r.lists[i][:0])
	}

	if r.debug {
		r.stats.BuildTime = time.Since(t0)
		t0 = time.Now()
	}

	for i := range r.lists {
		r.sortTriangles(r.lists[i])
	}

	if r.debug {
		r.stats.SortTime = time.Since(t0)
		t0 = time.Now()
	}

	if r.options.Grid {
		r.canvas.DrawGrid(r.cfg.GridSize, r.cfg.GridColor)
	}
	for i, e := range r.scene.Entities() {
		r.drawTriangles(r.lists[i], e.Mesh.Texture)
	}

	if r.debug {
		r.stats.DrawTime = time.Since(t0)
		t0 = time.Now()
	}

	if r.presenter != nil {
		r.presenter.Present(r.canvas.Pixels(), r.canvas.Width(), r.canvas.Height())
	}
	r.flushScreenshots()
	r.canvas.Clear(r.cfg.Background)

	if r.debug {
		r.stats.PresentTime = time.Since(t0)
	}
}

// buildTriangles transforms, culls and projects e's triangles, appending the
// survivors to dst.
func (r *Renderer) buildTriangles(e *Entity, dst []Triangle) []Triangle {
	world := e.Transform.WorldMatrix()
	verts := e.Mesh.Vertices
	idx := e.Mesh.Indices

	for i := 0; i+2 < len(idx); i += 3 {
		tv := [3]Vertex{verts[idx[i]], verts[idx[i+1]], verts[idx[i+2]]}
		var wv [3]math3d.Float3
		for k := range tv {
			wv[k] = world.MulPoint(tv[k].Position)
		}

		normal := math3d.Normalize(math3d.Cross(
			math3d.Normalize(wv[1].Sub(wv[0])),
			math3d.Normalize(wv[2].Sub(wv[0])),
		))

		if r.options.BackFaceCulling {
			ray := r.cfg.Camera.Sub(wv[0])
			if math3d.Dot(normal, ray) < 0 {
				r.stats.Culled++
				continue
			}
		}

		tri := Triangle{
			Normal:   normal,
			AvgDepth: (wv[0].Z + wv[1].Z + wv[2].Z) / 3,
		}
		visible := true
		for k := range wv {
			p, ok := r.project(wv[k])
			if !ok {
				visible = false
				break
			}
			tri.Points[k] = p
			tri.UVs[k] = tv[k].UV
		}
		if !visible {
			r.stats.Dropped++
			continue
		}
		dst = append(dst, tri)
	}
	return dst
}

// maxScreenCoord bounds projected coordinates. Triangles beyond it are
// dropped instead of rasterized; nothing else is clipped.
const maxScreenCoord = 1 << 15

// project maps a world-space point to screen space: projection, perspective
// divide (skipped when w == 0), scale by half the canvas size, y flip, and
// translation to the canvas center. It reports false when the result is not
// finite or outside maxScreenCoord.
func (r *Renderer) project(p math3d.Float3) (math3d.Float2, bool) {
	clip := r.projection.MulVec(p.Vec4(1))
	if clip.W != 0 {
		clip.X /= clip.W
		clip.Y /= clip.W
		clip.Z /= clip.W
	}

	halfW := float32(r.canvas.Width()) / 2
	halfH := float32(r.canvas.Height()) / 2
	s := math3d.Float2{
		X: clip.X*halfW + halfW,
		Y: -clip.Y*halfH + halfH,
	}
	if !finiteWithin(s.X, maxScreenCoord) || !finiteWithin(s.Y, maxScreenCoord) {
		return s, false
	}
	return s, true
}

func finiteWithin(v, limit float32) bool {
	return v >= -limit && v <= limit
}

// drawTriangles rasterizes one entity's sorted triangle list.
func (r *Renderer) drawTriangles(tris []Triangle, tex *Texture) {
	c := r.canvas
	o := r.options
	for i := range tris {
		t := &tris[i]
		x0, y0 := int(t.Points[0].X), int(t.Points[0].Y)
		x1, y1 := int(t.Points[1].X), int(t.Points[1].Y)
		x2, y2 := int(t.Points[2].X), int(t.Points[2].Y)

		if o.Filled {
			intensity := -math3d.Dot(t.Normal, r.cfg.Light.Direction)
			c.DrawFilledTriangle(x0, y0, x1, y1, x2, y2, ApplyLightIntensity(r.cfg.FillColor, intensity))
		}
		if o.Textured && tex != nil {
			c.DrawTexturedTriangle(
				TexturedVertex{X: x0, Y: y0, U: t.UVs[0].X, V: t.UVs[0].Y},
				TexturedVertex{X: x1, Y: y1, U: t.UVs[1].X, V: t.UVs[1].Y},
				TexturedVertex{X: x2, Y: y2, U: t.UVs[2].X, V: t.UVs[2].Y},
				tex,
			)
		}
		if o.Wireframe {
			c.DrawTriangle(x0, y0, x1, y1, x2, y2, r.cfg.WireColor)
		}
		if o.VertexMarkers {
			size := r.cfg.MarkerSize
			c.DrawRectangle(x0, y0, size, size, r.cfg.MarkerColor)
			c.DrawRectangle(x1, y1, size, size, r.cfg.MarkerColor)
			c.DrawRectangle(x2, y2, size, size, r.cfg.MarkerColor)
		}
		r.stats.Drawn++
	}
}

// --- Depth sort ---

// sortTriangles sorts tris by ascending AvgDepth in place, using r.sortBuf as
// scratch. Bottom-up merge sort: stable, and allocation free once sortBuf
// reaches its high-water mark.
func (r *Renderer) sortTriangles(tris []Triangle) {
	n := len(tris)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]Triangle, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a := tris
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(tris, r.sortBuf)
	}
}

// mergeRun merges the sorted runs [lo, mid) and [mid, hi) of src into dst.
// Ties keep their original order.
func mergeRun(src, dst []Triangle, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if src[i].AvgDepth <= src[j].AvgDepth {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}

package softwillow

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/phanxgames/softwillow/math3d"
)

// ErrInvalidCanvasSize is returned by NewCanvas for non-positive dimensions.
var ErrInvalidCanvasSize = errors.New("invalid canvas size")

// Canvas owns a row-major ARGB color buffer of fixed size and the drawing
// primitives the render pipeline rasterizes with.
//
// Every write outside [0, Width) x [0, Height) is skipped. Projected geometry
// is never clipped against the view frustum, so off-screen vertices are
// expected and must not corrupt memory.
type Canvas struct {
	width  int
	height int
	pixels []uint32
}

// TexturedVertex is a screen-space vertex carrying a texture coordinate.
type TexturedVertex struct {
	X, Y int
	U, V float32
}

// NewCanvas allocates a width x height canvas. The buffer contents are
// unspecified until the first Clear.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new canvas %dx%d: %w", width, height, ErrInvalidCanvasSize)
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Pixels returns the color buffer. The slice aliases the canvas and is
// overwritten by the next Clear.
func (c *Canvas) Pixels() []uint32 { return c.pixels }

// Pixel returns the color at (x, y), or 0 when out of bounds.
func (c *Canvas) Pixel(x, y int) uint32 {
	if !c.inBounds(x, y) {
		return 0
	}
	return c.pixels[y*c.width+x]
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// Clear sets every pixel to color.
func (c *Canvas) Clear(color uint32) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}

// DrawGrid paints every pixel whose x or y is a multiple of size.
func (c *Canvas) DrawGrid(size int, color uint32) {
	if size <= 0 {
		return
	}
	for y := 0; y < c.height; y++ {
		row := c.pixels[y*c.width : (y+1)*c.width]
		if y%size == 0 {
			for x := range row {
				row[x] = color
			}
			continue
		}
		for x := 0; x < c.width; x += size {
			row[x] = color
		}
	}
}

// DrawPixel writes one pixel. Out-of-bounds coordinates are ignored.
func (c *Canvas) DrawPixel(x, y int, color uint32) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.width+x] = color
}

// DrawRectangle fills the w x h rectangle whose top-left corner is (x, y).
func (c *Canvas) DrawRectangle(x, y, w, h int, color uint32) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.width), min(y+h, c.height)
	for py := y0; py < y1; py++ {
		row := c.pixels[py*c.width : (py+1)*c.width]
		for px := x0; px < x1; px++ {
			row[px] = color
		}
	}
}

// DrawLine draws a line with the digital differential analyzer: it takes
// max(|dx|, |dy|) steps of (dx, dy)/steps from (x0, y0) and writes the
// nearest pixel at every sample, both endpoints included.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, color uint32) {
	dx := x1 - x0
	dy := y1 - y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		c.DrawPixel(x0, y0, color)
		return
	}

	xInc := float32(dx) / float32(steps)
	yInc := float32(dy) / float32(steps)

	cx := float32(x0)
	cy := float32(y0)
	for i := 0; i <= steps; i++ {
		c.DrawPixel(round(cx), round(cy), color)
		cx += xInc
		cy += yInc
	}
}

// DrawTriangle draws the outline of a triangle.
func (c *Canvas) DrawTriangle(x0, y0, x1, y1, x2, y2 int, color uint32) {
	c.DrawLine(x0, y0, x1, y1, color)
	c.DrawLine(x1, y1, x2, y2, color)
	c.DrawLine(x2, y2, x0, y0, color)
}

// DrawFilledTriangle fills a triangle with a solid color using the
// flat-bottom/flat-top decomposition.
//
// The vertices are sorted by ascending y and the long edge is split at the
// middle vertex's y (by similar triangles) into a flat-bottom upper half and
// a flat-top lower half. Each half is filled scanline by scanline from its
// apex, tracking both edges through accumulated inverse slopes.
func (c *Canvas) DrawFilledTriangle(x0, y0, x1, y1, x2, y2 int, color uint32) {
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	if y0 == y2 {
		// Zero height: the triangle is its own scanline.
		c.drawScanline(min(x0, x1, x2), max(x0, x1, x2), y0, color)
		return
	}
	if y1 == y2 {
		// No lower half.
		c.fillFlatBottom(x0, y0, x1, y1, x2, y2, color)
		return
	}
	if y0 == y1 {
		// No upper half.
		c.fillFlatTop(x0, y0, x1, y1, x2, y2, color)
		return
	}

	// mx - x0 / x2 - x0 = y1 - y0 / y2 - y0
	mx := ((x2-x0)*(y1-y0))/(y2-y0) + x0
	my := y1

	c.fillFlatBottom(x0, y0, x1, y1, mx, my, color)
	c.fillFlatTop(x1, y1, mx, my, x2, y2, color)
}

// fillFlatBottom fills the triangle with apex (x0, y0) and horizontal base
// from (x1, y1) to (mx, my), scanning downward from the apex.
func (c *Canvas) fillFlatBottom(x0, y0, x1, y1, mx, my int, color uint32) {
	invSlope0 := float32(x1-x0) / float32(y1-y0)
	invSlope1 := float32(mx-x0) / float32(my-y0)

	xStart := float32(x0)
	xEnd := float32(x0)
	for y := y0; y <= my; y++ {
		c.drawScanline(int(xStart), int(xEnd), y, color)
		xStart += invSlope0
		xEnd += invSlope1
	}
}

// fillFlatTop fills the triangle with horizontal top edge from (x1, y1) to
// (mx, my) and apex (x2, y2), scanning upward from the apex.
func (c *Canvas) fillFlatTop(x1, y1, mx, my, x2, y2 int, color uint32) {
	invSlope0 := float32(x2-x1) / float32(y2-y1)
	invSlope1 := float32(x2-mx) / float32(y2-my)

	xStart := float32(x2)
	xEnd := float32(x2)
	for y := y2; y >= my; y-- {
		c.drawScanline(int(xStart), int(xEnd), y, color)
		xStart -= invSlope0
		xEnd -= invSlope1
	}
}

// drawScanline draws the horizontal line from xa to xb on row y. The span is
// trimmed to the canvas first; the pixels written are the ones DrawLine
// would write inside the canvas.
func (c *Canvas) drawScanline(xa, xb, y int, color uint32) {
	if y < 0 || y >= c.height {
		return
	}
	if xa > xb {
		xa, xb = xb, xa
	}
	if xb < 0 || xa >= c.width {
		return
	}
	c.DrawLine(max(xa, 0), y, min(xb, c.width-1), y, color)
}

// DrawTexturedTriangle fills a triangle with texels sampled from tex.
//
// It uses the same flat-bottom/flat-top split as DrawFilledTriangle. For
// every covered pixel the UV is interpolated with BarycentricWeights in
// screen space; this is affine, not perspective-correct, mapping. The texel
// is addressed with abs(u*width) mod width and abs(v*height) mod height, so
// coordinates outside [0, 1] wrap.
func (c *Canvas) DrawTexturedTriangle(v0, v1, v2 TexturedVertex, tex *Texture) {
	if tex == nil || tex.Width <= 0 || tex.Height <= 0 || len(tex.Texels) < tex.Width*tex.Height {
		return
	}
	if v0.Y > v1.Y {
		v0, v1 = v1, v0
	}
	if v1.Y > v2.Y {
		v1, v2 = v2, v1
	}
	if v0.Y > v1.Y {
		v0, v1 = v1, v0
	}

	// Upper half (flat-bottom).
	var invSlope1, invSlope2 float32
	if v1.Y != v0.Y {
		invSlope1 = float32(v1.X-v0.X) / float32(v1.Y-v0.Y)
	}
	if v2.Y != v0.Y {
		invSlope2 = float32(v2.X-v0.X) / float32(v2.Y-v0.Y)
	}
	if v1.Y != v0.Y {
		for y := max(v0.Y, 0); y <= min(v1.Y, c.height-1); y++ {
			xStart := int(float32(v1.X) + float32(y-v1.Y)*invSlope1)
			xEnd := int(float32(v0.X) + float32(y-v0.Y)*invSlope2)
			c.texturedSpan(xStart, xEnd, y, v0, v1, v2, tex)
		}
	}

	// Lower half (flat-top).
	invSlope1, invSlope2 = 0, 0
	if v2.Y != v1.Y {
		invSlope1 = float32(v2.X-v1.X) / float32(v2.Y-v1.Y)
	}
	if v2.Y != v0.Y {
		invSlope2 = float32(v2.X-v0.X) / float32(v2.Y-v0.Y)
	}
	if v2.Y != v1.Y {
		for y := max(v1.Y, 0); y <= min(v2.Y, c.height-1); y++ {
			xStart := int(float32(v1.X) + float32(y-v1.Y)*invSlope1)
			xEnd := int(float32(v0.X) + float32(y-v0.Y)*invSlope2)
			c.texturedSpan(xStart, xEnd, y, v0, v1, v2, tex)
		}
	}
}

// texturedSpan samples the half-open span [xStart, xEnd) of row y.
func (c *Canvas) texturedSpan(xStart, xEnd, y int, v0, v1, v2 TexturedVertex, tex *Texture) {
	if xEnd < xStart {
		xStart, xEnd = xEnd, xStart
	}
	for x := max(xStart, 0); x < min(xEnd, c.width); x++ {
		c.drawTexel(x, y, v0, v1, v2, tex)
	}
}

func (c *Canvas) drawTexel(x, y int, a, b, cv TexturedVertex, tex *Texture) {
	w := BarycentricWeights(
		image.Pt(a.X, a.Y), image.Pt(b.X, b.Y), image.Pt(cv.X, cv.Y), image.Pt(x, y),
	)

	u := a.U*w.X + b.U*w.Y + cv.U*w.Z
	v := a.V*w.X + b.V*w.Y + cv.V*w.Z

	tx, ok := wrapTexel(u, tex.Width)
	if !ok {
		return
	}
	ty, ok := wrapTexel(v, tex.Height)
	if !ok {
		return
	}
	c.DrawPixel(x, y, tex.Texels[ty*tex.Width+tx])
}

// wrapTexel maps a texture coordinate to abs(t*size) mod size. It reports
// false for NaN or infinite input, e.g. from a zero-area triangle.
func wrapTexel(t float32, size int) (int, bool) {
	f := math.Abs(float64(t) * float64(size))
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	i := int(math.Mod(f, float64(size)))
	if i < 0 || i >= size {
		return 0, false
	}
	return i, true
}

// BarycentricWeights returns the weights of p against triangle abc using the
// 2D cross-product (parallelogram area) method:
//
//	area  = AC x AB
//	alpha = PC x PB / area
//	beta  = AC x AP / area
//	gamma = |1 - alpha - beta|
//
// and returns (|alpha|, |beta|, gamma). Because of the absolute values the
// result is not a signed barycentric coordinate outside the triangle and
// cannot be used as an inside test. A zero-area triangle yields NaN or Inf.
func BarycentricWeights(a, b, c, p image.Point) math3d.Float3 {
	ac := c.Sub(a)
	ab := b.Sub(a)
	ap := p.Sub(a)
	pc := c.Sub(p)
	pb := b.Sub(p)

	area := float32(ac.X*ab.Y - ac.Y*ab.X)

	alpha := float32(pc.X*pb.Y-pc.Y*pb.X) / area
	beta := float32(ac.X*ap.Y-ac.Y*ap.X) / area
	gamma := absf(1 - alpha - beta)

	return math3d.Float3{X: absf(alpha), Y: absf(beta), Z: gamma}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func absf(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// round rounds half away from zero.
func round(v float32) int {
	return int(math.Round(float64(v)))
}

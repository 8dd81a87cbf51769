package softwillow

import "github.com/hajimehoshi/ebiten/v2"

// Presenter receives each finished frame. pixels is row-major ARGB with
// exactly width*height entries; it aliases the canvas and is only valid for
// the duration of the call.
type Presenter interface {
	Present(pixels []uint32, width, height int)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(pixels []uint32, width, height int)

// Present calls f.
func (f PresenterFunc) Present(pixels []uint32, width, height int) { f(pixels, width, height) }

// Presenters fans a frame out to several presenters in order.
type Presenters []Presenter

// Present implements Presenter.
func (p Presenters) Present(pixels []uint32, width, height int) {
	for _, pr := range p {
		if pr != nil {
			pr.Present(pixels, width, height)
		}
	}
}

// ImagePresenter uploads frames into an *ebiten.Image.
type ImagePresenter struct {
	img *ebiten.Image
	buf []byte
}

// NewImagePresenter allocates the backing image. Call it only once
// Ebitengine can create images.
func NewImagePresenter(width, height int) *ImagePresenter {
	return &ImagePresenter{
		img: ebiten.NewImage(width, height),
		buf: make([]byte, 4*width*height),
	}
}

// Image returns the image holding the last presented frame.
func (p *ImagePresenter) Image() *ebiten.Image {
	return p.img
}

// Present implements Presenter.
func (p *ImagePresenter) Present(pixels []uint32, width, height int) {
	b := p.img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		p.img.Deallocate()
		p.img = ebiten.NewImage(width, height)
	}
	if len(p.buf) != 4*width*height {
		p.buf = make([]byte, 4*width*height)
	}
	argbToRGBA(p.buf, pixels)
	p.img.WritePixels(p.buf)
}

// argbToRGBA converts packed ARGB colors into premultiplied RGBA bytes, the
// layout ebiten.Image.WritePixels expects.
func argbToRGBA(dst []byte, src []uint32) {
	for i, c := range src {
		a, r, g, b := UnpackARGB(c)
		if a != 0xFF {
			r = uint8(uint32(r) * uint32(a) / 0xFF)
			g = uint8(uint32(g) * uint32(a) / 0xFF)
			b = uint8(uint32(b) * uint32(a) / 0xFF)
		}
		d := dst[i*4 : i*4+4 : i*4+4]
		d[0], d[1], d[2], d[3] = r, g, b, a
	}
}

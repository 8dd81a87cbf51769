package softwillow

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ErrInvalidTexture is returned when texture dimensions and texel data
// disagree.
var ErrInvalidTexture = errors.New("invalid texture")

// Texture is a row-major grid of packed ARGB texels.
// len(Texels) == Width*Height.
type Texture struct {
	Width  int
	Height int
	Texels []uint32
}

// NewTexture wraps texels as a width x height texture. The slice is used
// directly, not copied.
func NewTexture(width, height int, texels []uint32) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new texture %dx%d: %w", width, height, ErrInvalidTexture)
	}
	if len(texels) != width*height {
		return nil, fmt.Errorf("new texture %dx%d: %d texels, want %d: %w",
			width, height, len(texels), width*height, ErrInvalidTexture)
	}
	return &Texture{Width: width, Height: height, Texels: texels}, nil
}

// At returns the texel at (x, y), or 0 when out of range.
func (t *Texture) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return 0
	}
	return t.Texels[y*t.Width+x]
}

// TextureFromImage converts img to a texture of the same size.
func TextureFromImage(img image.Image) (*Texture, error) {
	b := img.Bounds()
	return TextureFromImageScaled(img, b.Dx(), b.Dy())
}

// TextureFromImageScaled converts img to a width x height texture, resampling
// with nearest-neighbor filtering when the sizes differ.
func TextureFromImageScaled(img image.Image, width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("texture from image %dx%d: %w", width, height, ErrInvalidTexture)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	if img.Bounds().Dx() == width && img.Bounds().Dy() == height {
		draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	}

	texels := make([]uint32, width*height)
	for i := range texels {
		p := dst.Pix[i*4 : i*4+4 : i*4+4]
		texels[i] = PackARGB(p[3], p[0], p[1], p[2])
	}
	return NewTexture(width, height, texels)
}

// NewCheckerTexture builds a checkerboard of cell x cell squares alternating
// between colors a and b, starting with a in the top-left corner.
func NewCheckerTexture(width, height, cell int, a, b uint32) (*Texture, error) {
	if cell <= 0 {
		return nil, fmt.Errorf("checker texture: cell size %d: %w", cell, ErrInvalidTexture)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("checker texture %dx%d: %w", width, height, ErrInvalidTexture)
	}
	texels := make([]uint32, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/cell+y/cell)%2 == 0 {
				texels[y*width+x] = a
			} else {
				texels[y*width+x] = b
			}
		}
	}
	return NewTexture(width, height, texels)
}

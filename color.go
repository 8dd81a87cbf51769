package softwillow

import "image/color"

// Colors are packed 32-bit ARGB values, alpha in the most significant byte:
//
//	(alpha << 24) | (red << 16) | (green << 8) | blue
//
// The same packing is used by the canvas buffer, texture texels and every
// draw color.
const (
	ColorBlack = 0xFF000000
	ColorWhite = 0xFFFFFFFF
	ColorGray  = 0xFF666666
	ColorRed   = 0xFFFF0000
	ColorGrid  = 0xFF333333
)

// Light intensity bounds. Factors at or below zero are raised to
// lightIntensityFloor and factors at or above one are lowered to
// lightIntensityCeil, so lit faces are never fully black or fully saturated.
const (
	lightIntensityFloor = 0.1
	lightIntensityCeil  = 0.9
)

// PackARGB packs four 8-bit channels into an ARGB color.
func PackARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackARGB splits an ARGB color into its channels.
func UnpackARGB(c uint32) (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ARGBFromColor converts any color.Color into packed straight-alpha ARGB.
func ARGBFromColor(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return PackARGB(n.A, n.R, n.G, n.B)
}

// ApplyLightIntensity scales the RGB channels of c by factor, leaving alpha
// untouched. A factor at or below zero, or NaN, becomes lightIntensityFloor
// and a factor of one or more becomes lightIntensityCeil. Factors in between
// are used as given.
func ApplyLightIntensity(c uint32, factor float32) uint32 {
	if !(factor > 0) {
		factor = lightIntensityFloor
	}
	if factor >= 1 {
		factor = lightIntensityCeil
	}
	a := c & 0xFF000000
	r := uint32(float32(c&0x00FF0000) * factor)
	g := uint32(float32(c&0x0000FF00) * factor)
	b := uint32(float32(c&0x000000FF) * factor)
	return a | (r & 0x00FF0000) | (g & 0x0000FF00) | (b & 0x000000FF)
}

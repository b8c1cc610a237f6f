package colorfx

import "image/color"

// Components is a fixed-length RGBA channel vector: red, green, blue, alpha,
// each nominally in [0, 1]. Transforms may take channels outside that range;
// call Clamped before quantizing back to 8-bit color.
//
// Components is a plain value with indexed access: c[0] is red, c[3] alpha.
type Components [4]float64

// ComponentsFromColor converts a standard color.Color to a channel vector.
// The result holds straight (non-premultiplied) channel values, which is
// what the effect matrices operate on.
func ComponentsFromColor(c color.Color) Components {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Components{}
	}
	// RGBA returns alpha-premultiplied channels; divide alpha back out.
	return Components{
		float64(r) / float64(a),
		float64(g) / float64(a),
		float64(b) / float64(a),
		float64(a) / 65535,
	}
}

// Color converts the channel vector to the standard color.Color interface,
// clamping each channel to [0, 1]. Channels quantize to the nearest 8-bit
// value so a byte-exact channel survives the float round trip.
func (c Components) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp01(c[0])*255 + 0.5),
		G: uint8(clamp01(c[1])*255 + 0.5),
		B: uint8(clamp01(c[2])*255 + 0.5),
		A: uint8(clamp01(c[3])*255 + 0.5),
	}
}

// Clamped returns the vector with every channel clamped to [0, 1].
func (c Components) Clamped() Components {
	return Components{
		clamp01(c[0]),
		clamp01(c[1]),
		clamp01(c[2]),
		clamp01(c[3]),
	}
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

package colorfx

import (
	"image"

	"golang.org/x/image/draw"
)

// ApplyToImage runs a chain of color matrices over every pixel of an image
// and returns the result as a new NRGBA image anchored at the origin.
// The source is converted to non-premultiplied RGBA first, so the matrices
// see the same straight channel values regardless of the source format.
// Channels are clamped to [0, 1] before quantizing back to 8-bit.
//
// The source image is not modified. With no matrices the result is a plain
// NRGBA copy of the source.
func ApplyToImage(src image.Image, matrices ...Transformer) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)

	Logger().Debug("applying color matrices",
		"width", b.Dx(), "height", b.Dy(), "stages", len(matrices))

	for i := 0; i < len(dst.Pix); i += 4 {
		c := Components{
			float64(dst.Pix[i+0]) / 255,
			float64(dst.Pix[i+1]) / 255,
			float64(dst.Pix[i+2]) / 255,
			float64(dst.Pix[i+3]) / 255,
		}
		c = Apply(c, matrices...).Clamped()
		// Round to nearest so untouched channels survive the float round trip.
		dst.Pix[i+0] = uint8(c[0]*255 + 0.5)
		dst.Pix[i+1] = uint8(c[1]*255 + 0.5)
		dst.Pix[i+2] = uint8(c[2]*255 + 0.5)
		dst.Pix[i+3] = uint8(c[3]*255 + 0.5)
	}
	return dst
}

// Package colorfx provides fixed-dimension color matrices for filter effects.
//
// # Overview
//
// colorfx implements the channel-mixing math behind the standard filter
// effects (grayscale, sepia, saturate, hue-rotate) as small immutable matrix
// values. A matrix transforms one RGBA channel vector into another; matrices
// chain into multi-stage filters via Apply, and ApplyToImage runs a chain
// over every pixel of an image.
//
// # Quick Start
//
//	import "github.com/gogpu/colorfx"
//
//	// Transform a single color.
//	c := colorfx.Components{1, 0, 0, 1} // opaque red
//	c = colorfx.Grayscale(1).Transform(c)
//
//	// Filter a whole image with a two-stage chain.
//	out := colorfx.ApplyToImage(img, colorfx.Sepia(0.8), colorfx.Saturate(1.2))
//
// # Coefficients
//
// Effect coefficients follow the W3C Filter Effects Module Level 1
// (https://www.w3.org/TR/filter-effects-1/), so output matches what browsers
// produce for the equivalent CSS filter functions.
//
// # Concurrency
//
// Matrices and channel vectors are plain immutable values and every
// operation is a pure function. Any number of goroutines may build matrices
// and transform independent inputs without coordination.
package colorfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

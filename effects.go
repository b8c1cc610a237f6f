package colorfx

import "math"

// Grayscale returns the 3x3 matrix for the grayscale filter effect.
// amount is the strength of the effect: 0 leaves colors unchanged, 1 turns
// every channel into the luminance of the input. The blend factor is
// clamped, so values outside [0, 1] behave like the nearest endpoint.
//
// Values from https://www.w3.org/TR/filter-effects-1/#grayscaleEquivalent
func Grayscale(amount float64) Matrix3x3 {
	oneMinusAmount := clamp01(1 - amount)
	return Matrix3x3{
		0.2126 + 0.7874*oneMinusAmount, 0.7152 - 0.7152*oneMinusAmount, 0.0722 - 0.0722*oneMinusAmount,
		0.2126 - 0.2126*oneMinusAmount, 0.7152 + 0.2848*oneMinusAmount, 0.0722 - 0.0722*oneMinusAmount,
		0.2126 - 0.2126*oneMinusAmount, 0.7152 - 0.7152*oneMinusAmount, 0.0722 + 0.9278*oneMinusAmount,
	}
}

// Sepia returns the 3x3 matrix for the sepia filter effect.
// amount is the strength of the effect: 0 leaves colors unchanged, 1 is the
// full sepia tone. The blend factor is clamped like Grayscale's.
//
// Values from https://www.w3.org/TR/filter-effects-1/#sepiaEquivalent
func Sepia(amount float64) Matrix3x3 {
	oneMinusAmount := clamp01(1 - amount)
	return Matrix3x3{
		0.393 + 0.607*oneMinusAmount, 0.769 - 0.769*oneMinusAmount, 0.189 - 0.189*oneMinusAmount,
		0.349 - 0.349*oneMinusAmount, 0.686 + 0.314*oneMinusAmount, 0.168 - 0.168*oneMinusAmount,
		0.272 - 0.272*oneMinusAmount, 0.534 - 0.534*oneMinusAmount, 0.131 + 0.869*oneMinusAmount,
	}
}

// Saturate returns the 3x3 matrix for the saturation filter effect.
// amount 1 is the identity, 0 is full desaturation, and values above 1
// over-saturate. Unlike Grayscale and Sepia, amount is not clamped.
//
// Values from https://www.w3.org/TR/filter-effects-1/#feColorMatrixElement
func Saturate(amount float64) Matrix3x3 {
	return Matrix3x3{
		0.213 + 0.787*amount, 0.715 - 0.715*amount, 0.072 - 0.072*amount,
		0.213 - 0.213*amount, 0.715 + 0.285*amount, 0.072 - 0.072*amount,
		0.213 - 0.213*amount, 0.715 - 0.715*amount, 0.072 + 0.928*amount,
	}
}

// HueRotate returns the 3x3 matrix that rotates hues by the given angle in
// degrees. HueRotate(0) is the identity. The angle is not clamped; negative
// angles rotate the other way and angles wrap every 360 degrees.
//
// Values from https://www.w3.org/TR/filter-effects-1/#feColorMatrixElement
func HueRotate(angleInDegrees float64) Matrix3x3 {
	cosHue := math.Cos(angleInDegrees * math.Pi / 180)
	sinHue := math.Sin(angleInDegrees * math.Pi / 180)

	return Matrix3x3{
		0.213 + cosHue*0.787 - sinHue*0.213, 0.715 - cosHue*0.715 - sinHue*0.715, 0.072 - cosHue*0.072 + sinHue*0.928,
		0.213 - cosHue*0.213 + sinHue*0.143, 0.715 + cosHue*0.285 + sinHue*0.140, 0.072 - cosHue*0.072 - sinHue*0.283,
		0.213 - cosHue*0.213 - sinHue*0.787, 0.715 - cosHue*0.715 + sinHue*0.715, 0.072 + cosHue*0.928 + sinHue*0.072,
	}
}

// LuminanceToAlpha returns the 4x5 matrix that replaces alpha with the
// luminance of the input's color channels and zeroes red, green and blue,
// matching the luminanceToAlpha mode of SVG feColorMatrix.
//
// Values from https://www.w3.org/TR/filter-effects-1/#feColorMatrixElement
func LuminanceToAlpha() Matrix4x5 {
	return Matrix4x5{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0.2126, 0.7152, 0.0722, 0, 0,
	}
}

package colorfx

import "fmt"

// Matrix3x3 is a 3-row, 3-column color matrix stored in row-major order:
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//	| m[6] m[7] m[8] |
//
// Row i of the matrix produces output channel i as a weighted sum of the
// input's red, green and blue channels; the alpha channel passes through
// unchanged (see Transform).
//
// Matrix3x3 is a plain value: it is copied freely, compared with ==, and
// never mutated after construction. Two matrices are equal iff every
// corresponding element is equal; matrices of different dimensions are
// different types and cannot be compared at all.
type Matrix3x3 [9]float64

// Matrix4x5 is a 4-row, 5-column color matrix stored in row-major order,
// the shape used by SVG feColorMatrix. The first four columns weight the
// input's red, green, blue and alpha channels; the fifth column is a
// constant bias added to each output channel, which makes the transform
// affine rather than purely linear.
type Matrix4x5 [20]float64

// Matrix3x3FromSlice builds a Matrix3x3 from exactly 9 values in row-major
// order. It returns an error, storing nothing, if the count is wrong.
// Prefer a composite literal when the values are known at compile time.
func Matrix3x3FromSlice(values []float64) (Matrix3x3, error) {
	if len(values) != 9 {
		return Matrix3x3{}, fmt.Errorf("colorfx: Matrix3x3 requires 9 values, got %d", len(values))
	}
	var m Matrix3x3
	copy(m[:], values)
	return m, nil
}

// Matrix4x5FromSlice builds a Matrix4x5 from exactly 20 values in row-major
// order. It returns an error, storing nothing, if the count is wrong.
func Matrix4x5FromSlice(values []float64) (Matrix4x5, error) {
	if len(values) != 20 {
		return Matrix4x5{}, fmt.Errorf("colorfx: Matrix4x5 requires 20 values, got %d", len(values))
	}
	var m Matrix4x5
	copy(m[:], values)
	return m, nil
}

// Identity3x3 returns the 3x3 identity matrix. Transforming with it leaves
// every color unchanged.
func Identity3x3() Matrix3x3 {
	return Matrix3x3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// At returns the element at the given row and column.
// It panics if row is outside [0, 3) or column is outside [0, 3).
func (m Matrix3x3) At(row, column int) float64 {
	if row < 0 || row >= 3 || column < 0 || column >= 3 {
		panic(fmt.Sprintf("colorfx: Matrix3x3.At(%d, %d) out of range", row, column))
	}
	return m[row*3+column]
}

// At returns the element at the given row and column.
// It panics if row is outside [0, 4) or column is outside [0, 5).
func (m Matrix4x5) At(row, column int) float64 {
	if row < 0 || row >= 4 || column < 0 || column >= 5 {
		panic(fmt.Sprintf("colorfx: Matrix4x5.At(%d, %d) out of range", row, column))
	}
	return m[row*5+column]
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix3x3) IsIdentity() bool {
	return m == Identity3x3()
}

// Transform applies the matrix to a channel vector and returns the result.
// Output channels 0-2 are the row-weighted sums of the input's first three
// channels; channel 3 (alpha) passes through unchanged.
func (m Matrix3x3) Transform(in Components) Components {
	return transform(m[:], 3, 3, in)
}

// Transform applies the matrix to a channel vector and returns the result.
// Each output channel is the row-weighted sum of all four input channels
// plus the row's bias column.
func (m Matrix4x5) Transform(in Components) Components {
	return transform(m[:], 4, 5, in)
}

// transform applies a rows x cols row-major coefficient matrix to a channel
// vector. For each output row it accumulates coefficients times the input
// channels they cover; columns beyond the input length contribute as
// constant bias terms (an implicit input of 1). Channels below row count
// rows pass through unchanged, which is how a 3x3 matrix applies to an RGBA
// vector without touching alpha. Iteration covers valid index ranges only.
func transform(m []float64, rows, cols int, in Components) Components {
	var out Components
	k := cols
	if k > len(in) {
		k = len(in)
	}
	for row := 0; row < rows; row++ {
		sum := 0.0
		for col := 0; col < k; col++ {
			sum += m[row*cols+col] * in[col]
		}
		for col := len(in); col < cols; col++ {
			sum += m[row*cols+col]
		}
		out[row] = sum
	}
	for row := rows; row < len(in); row++ {
		out[row] = in[row]
	}
	return out
}

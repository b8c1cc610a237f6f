package colorfx

// Transformer is implemented by every fixed-dimension color matrix.
// Chains built from the interface may mix matrix dimensions freely, since
// composition is sequential application rather than a matrix product.
type Transformer interface {
	Transform(Components) Components
}

// Apply transforms a channel vector through each matrix in turn: the first
// matrix consumes the input, each following matrix consumes the previous
// result. With no matrices the input is returned unchanged.
func Apply(c Components, matrices ...Transformer) Components {
	for _, m := range matrices {
		c = m.Transform(c)
	}
	return c
}

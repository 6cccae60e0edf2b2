package goshape

// ReshapeOpt bundles reshape options.
type ReshapeOpt struct {
	// Mutable leaves the produced instance (and everything reshaped under it)
	// unfrozen. The default is to deep-freeze the result.
	Mutable bool
}

// Mutable returns the option requesting an unfrozen instance.
func Mutable() ReshapeOpt { return ReshapeOpt{Mutable: true} }

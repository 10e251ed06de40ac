package pattern

// Selector draws a Pattern from a Distribution using an entropy source that
// is independent of the seeded price generator.
type Selector struct {
	src EntropySource
}

// NewSelector wraps src; a nil src means CryptoSource.
func NewSelector(src EntropySource) *Selector {
	if src == nil {
		src = CryptoSource()
	}

	return &Selector{src: src}
}

// Choose draws one value and returns the first category whose cumulative
// weight exceeds it. If rounding leaves a gap above the total weight (or the
// distribution is all zero) the last category is returned.
func (s *Selector) Choose(d Distribution) Pattern {
	return pick(d, s.src.Float64())
}

// pick is Choose with the draw supplied.
func pick(d Distribution, chance float64) Pattern {
	var acc float64
	for i, w := range d {
		acc += w
		if chance < acc {
			return Pattern(i)
		}
	}

	return Pattern(Count - 1)
}

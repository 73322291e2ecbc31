package component

// Health is hit points. Whether the value is clamped is up to the owner.
type Health struct {
	Value float64
}

// Fraction returns Value/of. An 'of' of zero yields zero.
func (h Health) Fraction(of float64) float64 {
	if of == 0 {
		return 0
	}
	return h.Value / of
}

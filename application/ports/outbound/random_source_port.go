package outbound

// RandomSourcePort abstracts the storyboard generator's randomness so tests
// can substitute a fixed sequence.
type RandomSourcePort interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Token returns a short random identifier fragment.
	Token() string
}

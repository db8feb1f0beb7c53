package port

// RandomSource yields uniform draws in [0,1) for the index walk.
// Inject a seeded source for reproducible output.
type RandomSource interface {
	Float64() float64
}

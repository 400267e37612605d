package builder

// Option customizes a construction session before any seed is processed.
type Option func(*config)

type config struct {
	workers int
}

func defaultConfig() config {
	return config{workers: 1}
}

// WithWorkers sets the number of goroutines AddAll uses to process seed
// simplices. The default of 1 keeps the build fully deterministic in
// processing order; any n is safe because orbit insertion is idempotent
// and collections synchronize internally.
// Panics on n < 1 to surface programmer error early.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("builder: WithWorkers requires n >= 1")
	}
	return func(c *config) {
		c.workers = n
	}
}

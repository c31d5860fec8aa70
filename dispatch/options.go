package dispatch

import "github.com/gogpu/cuosd/internal/parallel"

// config holds Launch's optional tuning knobs, defaulted by defaultConfig
// and mutated by the Option functions below — grounded on options.go's
// faceConfig/FaceOption shape.
type config struct {
	workers int
	pool    *parallel.WorkerPool
}

func defaultConfig() config {
	return config{}
}

// Option configures a single Launch call.
type Option func(*config)

// WithWorkers sets the number of goroutines a Launch-owned worker pool
// uses. Ignored if WithWorkerPool is also given. A value <= 0 uses
// GOMAXPROCS, matching parallel.NewWorkerPool's own default.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithWorkerPool makes Launch reuse an existing, caller-owned WorkerPool
// instead of spinning up and closing one per call — for a long-lived
// process issuing many launches, grounded on
// internal/parallel.NewWorkerPool's reusable-pool design. The caller
// retains ownership: Launch never closes a pool it did not create.
func WithWorkerPool(pool *parallel.WorkerPool) Option {
	return func(c *config) {
		c.pool = pool
	}
}

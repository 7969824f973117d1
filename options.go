package pixkern

import "github.com/gogpu/pixkern/internal/parallel"

// Option configures a kernel call.
//
// Example:
//
//	pool := pixkern.NewPool(8)
//	defer pool.Close()
//	err := pixkern.StackBlur(bm, 12, pixkern.WithPool(pool))
type Option func(*options)

// options holds the per-call configuration.
type options struct {
	workers int
	pool    *Pool
}

// WithWorkers sets the hardware concurrency hint. The effective worker count
// is still limited by the image area and capped at 12. Zero or a negative
// value means runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithPool runs row ranges on p instead of spawning goroutines per pass.
// A closed or nil pool falls back to per-pass goroutines.
func WithPool(p *Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o options) executor() *parallel.Executor {
	ex := &parallel.Executor{Hint: o.workers}
	if o.pool != nil {
		ex.Pool = o.pool.wp
	}
	return ex
}

// Pool is a long-lived set of worker goroutines shared by kernel calls.
// It is safe for concurrent use.
type Pool struct {
	wp *parallel.WorkerPool
}

// NewPool starts a pool with the given number of workers.
// Zero or a negative count uses GOMAXPROCS.
func NewPool(workers int) *Pool {
	return &Pool{wp: parallel.NewWorkerPool(workers)}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.wp.Workers() }

// Close stops the workers. Calls made with a closed pool run on fresh
// goroutines.
func (p *Pool) Close() { p.wp.Close() }

package wavetrace

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// Default: GOMAXPROCS workers
//	r := wavetrace.NewRenderer()
//
//	// Pin the worker count for deterministic profiling
//	r := wavetrace.NewRenderer(wavetrace.WithWorkers(2))
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	workers        int
	columnsPerTask int
}

func defaultOptions() rendererOptions {
	return rendererOptions{
		workers:        0, // GOMAXPROCS
		columnsPerTask: 0, // parallel.DefaultColumnsPerTask
	}
}

// WithWorkers sets the number of worker goroutines.
// Zero or negative selects GOMAXPROCS.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithColumnsPerTask sets how many output columns each work item covers.
// Smaller chunks rebalance skewed workloads better; larger chunks cut queue
// traffic. Zero or negative selects the default.
func WithColumnsPerTask(n int) RendererOption {
	return func(o *rendererOptions) {
		o.columnsPerTask = n
	}
}

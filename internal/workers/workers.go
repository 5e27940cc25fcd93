package workers

// Workers is an ordered aggregate of background workers started together at
// process boot.
type Workers struct {
	workers []Worker
}

// New collects the given workers into a single aggregate.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

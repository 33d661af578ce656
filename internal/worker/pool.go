// worker/pool.go
package worker

// Job is a unit of work producing a T.
type Job[T any] func() T

type Result[T any] struct {
	JobID  string
	Output T
}

// Pool runs submitted jobs on a fixed number of goroutines. Results arrive in
// completion order; callers match them up by JobID.
type Pool[T any] struct {
	jobs    chan jobWrapper[T]
	results chan Result[T]
}

type jobWrapper[T any] struct {
	id string
	fn Job[T]
}

// NewPool starts workerCount workers. bufferSize bounds both the job queue
// and the result queue; Submit blocks once the queue is full.
func NewPool[T any](workerCount int, bufferSize int) *Pool[T] {
	if workerCount < 1 {
		workerCount = 1
	}
	p := &Pool[T]{
		jobs:    make(chan jobWrapper[T], bufferSize),
		results: make(chan Result[T], bufferSize),
	}

	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool[T]) worker() {
	for job := range p.jobs {
		p.results <- Result[T]{
			JobID:  job.id,
			Output: job.fn(),
		}
	}
}

func (p *Pool[T]) Submit(id string, fn Job[T]) {
	p.jobs <- jobWrapper[T]{id: id, fn: fn}
}

func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}

// Close stops accepting jobs. Workers exit once the queue drains.
func (p *Pool[T]) Close() {
	close(p.jobs)
}

// Map runs fn over every input on workerCount workers and returns the
// outputs in input order.
func Map[In, Out any](workerCount int, inputs []In, fn func(In) Out) []Out {
	type indexed struct {
		i   int
		out Out
	}

	p := NewPool[indexed](workerCount, len(inputs))
	defer p.Close()

	for i, in := range inputs {
		p.Submit("", func() indexed { return indexed{i: i, out: fn(in)} })
	}

	outs := make([]Out, len(inputs))
	for range inputs {
		r := <-p.Results()
		outs[r.Output.i] = r.Output.out
	}
	return outs
}

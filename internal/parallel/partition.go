package parallel

import (
	"runtime"
	"sync"

	"github.com/gogpu/pixkern/internal/logging"
	"github.com/gogpu/pixkern/internal/numeric"
)

const (
	// MaxWorkers caps the worker count of a single kernel invocation.
	MaxWorkers = 12

	// pixelsPerWorker is the image area that justifies one more worker.
	pixelsPerWorker = 256 * 256
)

// Range is a half-open span of rows [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r Range) Len() int { return r.End - r.Start }

// WorkerCount derives the number of row tasks for a width x height image:
// clamp(min(hint, width*height/(256*256)), 1, MaxWorkers).
// A hint of 0 or less uses runtime.NumCPU.
func WorkerCount(hint, width, height int) int {
	if hint <= 0 {
		hint = runtime.NumCPU()
	}
	return numeric.ClampInt(min(hint, width*height/pixelsPerWorker), 1, MaxWorkers)
}

// Partition splits [0, height) into contiguous row ranges. Every range holds
// height/workers rows and the last one absorbs the remainder. workers is
// lowered to height so no range is empty.
func Partition(height, workers int) []Range {
	if height <= 0 {
		return nil
	}
	workers = numeric.ClampInt(workers, 1, height)

	chunk := height / workers
	ranges := make([]Range, workers)
	for i := range ranges {
		ranges[i] = Range{Start: i * chunk, End: (i + 1) * chunk}
	}
	ranges[workers-1].End = height
	return ranges
}

// Executor runs one kernel pass over the rows of an image.
// The zero value spawns goroutines per pass and sizes the work by NumCPU.
type Executor struct {
	// Pool runs the row tasks. Nil means one goroutine per range.
	Pool *WorkerPool

	// Hint is the hardware concurrency hint passed to WorkerCount.
	Hint int
}

// Rows partitions the image rows and calls fn once per range. Rows returns
// after every call has finished, which is the barrier between passes.
func (e *Executor) Rows(width, height int, fn func(start, end int)) {
	var pool *WorkerPool
	hint := 0
	if e != nil {
		pool, hint = e.Pool, e.Hint
	}

	workers := WorkerCount(hint, width, height)
	ranges := Partition(height, workers)
	if len(ranges) == 0 {
		return
	}

	logging.L().Debug("pixkern: row pass",
		"width", width, "height", height, "workers", len(ranges))

	if len(ranges) == 1 {
		fn(0, height)
		return
	}

	if pool != nil && pool.IsRunning() {
		tasks := make([]func(), len(ranges))
		for i, r := range ranges {
			tasks[i] = func() { fn(r.Start, r.End) }
		}
		pool.ExecuteAll(tasks)
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for _, r := range ranges {
		go func() {
			defer wg.Done()
			fn(r.Start, r.End)
		}()
	}
	wg.Wait()
}

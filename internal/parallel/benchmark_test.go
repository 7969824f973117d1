package parallel

import "testing"

// =============================================================================
// WorkerPool
// =============================================================================

func BenchmarkWorkerPool_Create(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pool := NewWorkerPool(0)
		pool.Close()
	}
}

// BenchmarkWorkerPool_ExecuteAll_12 runs the largest pass the row
// partitioner produces.
func BenchmarkWorkerPool_ExecuteAll_12(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	work := make([]func(), MaxWorkers)
	for i := range work {
		work[i] = func() {}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		pool.ExecuteAll(work)
	}
}

// =============================================================================
// Executor: one pass touching every byte of an RGBA8 frame
// =============================================================================

func benchmarkRows(b *testing.B, width, height int, ex *Executor) {
	rowBytes := width * 4
	data := make([]byte, rowBytes*height)

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ex.Rows(width, height, func(start, end int) {
			for y := start; y < end; y++ {
				row := data[y*rowBytes : (y+1)*rowBytes]
				for j := range row {
					row[j] = row[j]*3 + 1
				}
			}
		})
	}
}

func BenchmarkExecutor_Serial_HD(b *testing.B) {
	benchmarkRows(b, 1920, 1080, &Executor{Hint: 1})
}

func BenchmarkExecutor_Goroutines_HD(b *testing.B) {
	benchmarkRows(b, 1920, 1080, nil)
}

func BenchmarkExecutor_Pool_HD(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()
	benchmarkRows(b, 1920, 1080, &Executor{Pool: pool})
}

func BenchmarkExecutor_Pool_4K(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()
	benchmarkRows(b, 3840, 2160, &Executor{Pool: pool})
}

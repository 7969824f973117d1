package parallel

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerCount(t *testing.T) {
	tests := []struct {
		name       string
		hint, w, h int
		want       int
	}{
		{"tiny image", 16, 10, 10, 1},
		{"one tile", 16, 256, 256, 1},
		{"four tiles", 16, 512, 512, 4},
		{"hint limits", 2, 4096, 4096, 2},
		{"capped", 64, 4096, 4096, MaxWorkers},
		{"zero area", 8, 0, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkerCount(tt.hint, tt.w, tt.h))
		})
	}

	want := min(runtime.NumCPU(), MaxWorkers)
	assert.Equal(t, want, WorkerCount(0, 8192, 8192))
}

func TestPartition_Completeness(t *testing.T) {
	for height := 1; height <= 70; height++ {
		for workers := 1; workers <= 14; workers++ {
			ranges := Partition(height, workers)
			require.NotEmpty(t, ranges)

			next := 0
			for _, r := range ranges {
				require.Equal(t, next, r.Start, "h=%d w=%d gap or overlap", height, workers)
				require.Positive(t, r.Len(), "h=%d w=%d empty range", height, workers)
				next = r.End
			}
			require.Equal(t, height, next, "h=%d w=%d", height, workers)
		}
	}
}

func TestPartition_LastAbsorbsRemainder(t *testing.T) {
	ranges := Partition(10, 3)
	assert.Equal(t, []Range{{0, 3}, {3, 6}, {6, 10}}, ranges)
	assert.Nil(t, Partition(0, 4))
	assert.Len(t, Partition(3, 8), 3)
}

func TestExecutor_RowsCoversImage(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	executors := map[string]*Executor{
		"nil":       nil,
		"goroutine": {Hint: 8},
		"pool":      {Pool: pool, Hint: 8},
	}

	for name, ex := range executors {
		t.Run(name, func(t *testing.T) {
			const w, h = 1024, 777
			var mu sync.Mutex
			seen := make([]int, h)
			ex.Rows(w, h, func(start, end int) {
				mu.Lock()
				defer mu.Unlock()
				for y := start; y < end; y++ {
					seen[y]++
				}
			})
			for y, n := range seen {
				require.Equal(t, 1, n, "row %d visited %d times", y, n)
			}
		})
	}
}

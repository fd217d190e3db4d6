package parallel

import (
	"strings"
	"sync/atomic"
	"testing"
)

func TestForCoversRangeOnce(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		grain   int
		workers int
	}{
		{"empty", 0, 8, 4},
		{"single chunk", 5, 8, 4},
		{"exact chunks", 64, 8, 4},
		{"ragged tail", 1001, 16, 3},
		{"default grain", 500, 0, 0},
		{"one worker", 100, 7, 1},
		{"more workers than chunks", 10, 4, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := make([]int32, tt.n)
			ForWorkers(tt.n, tt.grain, tt.workers, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
			})
			for i, h := range hits {
				if h != 1 {
					t.Fatalf("index %d visited %d times, want 1", i, h)
				}
			}
		})
	}
}

func TestForChunkBounds(t *testing.T) {
	var maxLen atomic.Int64
	For(1000, 32, func(start, end int) {
		if start >= end {
			t.Errorf("empty chunk [%d, %d)", start, end)
		}
		if l := int64(end - start); l > maxLen.Load() {
			maxLen.Store(l)
		}
	})
	if maxLen.Load() > 32 {
		t.Fatalf("chunk length %d exceeds grain 32", maxLen.Load())
	}
}

func TestForWorkersChunksOnOneWorker(t *testing.T) {
	var chunks [][2]int
	ForWorkers(100, 32, 1, func(start, end int) {
		chunks = append(chunks, [2]int{start, end})
	})

	want := [][2]int{{0, 32}, {32, 64}, {64, 96}, {96, 100}}
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks %v, want %v", len(chunks), chunks, want)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Fatalf("chunk %d = %v, want %v", i, chunks[i], want[i])
		}
	}
}

func TestForPropagatesPanic(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "boom") {
			t.Fatalf("panic value = %v, want message containing boom", r)
		}
	}()

	ForWorkers(256, 8, 4, func(start, _ int) {
		if start == 128 {
			panic("boom")
		}
	})
}

func TestForPanicWrappedForEveryWorkerCount(t *testing.T) {
	for _, workers := range []int{1, 4} {
		func() {
			defer func() {
				msg, ok := recover().(string)
				if !ok || !strings.HasPrefix(msg, "parallel: worker panic: ") || !strings.Contains(msg, "boom") {
					t.Fatalf("workers=%d: panic value = %q, want wrapped boom", workers, msg)
				}
			}()

			ForWorkers(64, 8, workers, func(start, _ int) {
				if start == 16 {
					panic("boom")
				}
			})
		}()
	}
}

func BenchmarkFor(b *testing.B) {
	out := make([]float64, 100000)
	for i := 0; i < b.N; i++ {
		For(len(out), 256, func(start, end int) {
			for j := start; j < end; j++ {
				out[j] = float64(j) * 0.5
			}
		})
	}
}

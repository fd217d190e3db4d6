// Package parallel provides a parallel-for over an index range.
//
// The range is cut into fixed-size chunks which idle workers claim from a
// shared atomic cursor, so a slow chunk never holds up the remaining work.
// Iterations must be independent: every call of the loop body may run on
// any goroutine and in any order.
package parallel

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// DefaultGrain is the chunk size used when a non-positive grain is given.
const DefaultGrain = 64

// For calls body(start, end) for consecutive chunks covering [0, n) and
// returns once every chunk has completed. The number of workers is
// runtime.GOMAXPROCS(0).
func For(n, grain int, body func(start, end int)) {
	ForWorkers(n, grain, 0, body)
}

// ForWorkers is For with an explicit worker cap; workers <= 0 means
// runtime.GOMAXPROCS(0).
//
// A panic inside body is re-raised on the calling goroutine after all
// workers have stopped.
func ForWorkers(n, grain, workers int, body func(start, end int)) {
	if n <= 0 {
		return
	}
	if grain <= 0 {
		grain = DefaultGrain
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunks := (n + grain - 1) / grain
	workers = min(workers, chunks)

	if workers == 1 {
		forInline(n, grain, body)
		return
	}

	var (
		cursor    atomic.Int64
		panicOnce sync.Once
		panicVal  any
		stopped   atomic.Bool
		wg        sync.WaitGroup
	)

	for range workers {
		wg.Go(func() {
			defer func() {
				if r := recover(); r != nil {
					stopped.Store(true)
					panicOnce.Do(func() { panicVal = r })
				}
			}()

			for !stopped.Load() {
				chunk := int(cursor.Add(1) - 1)
				if chunk >= chunks {
					return
				}
				start := chunk * grain
				end := min(start+grain, n)
				body(start, end)
			}
		})
	}
	wg.Wait()

	if panicVal != nil {
		panic(workerPanic(panicVal))
	}
}

// forInline runs the chunks in order on the calling goroutine.
func forInline(n, grain int, body func(start, end int)) {
	defer func() {
		if r := recover(); r != nil {
			panic(workerPanic(r))
		}
	}()

	for start := 0; start < n; start += grain {
		body(start, min(start+grain, n))
	}
}

func workerPanic(r any) string {
	return fmt.Sprintf("parallel: worker panic: %v", r)
}

// Package parallel provides the worker-pool helper used by the pipeline's
// three optional parallel passes (angular sort, orphan promotion, hole
// assignment), adapted from the worker-pool pattern used to load many
// chart files concurrently: a bounded pool of goroutines drains a job
// channel of indices, each writing only to its own slot of a pre-sized
// result slice so no locking is needed while the pool runs.
package parallel

import "sync"

// Threshold is the default item-count floor below which Map runs serially.
// Below it, goroutine and channel overhead outweighs any speedup.
const Threshold = 1000

// Map applies fn to every index in [0, n) and returns the results in
// index order. When n is at least Threshold and workers > 1, the indices
// are partitioned across a worker pool; each worker writes only to its own
// disjoint slot of the result slice, satisfying the map-and-collect
// discipline required of parallel passes over shared, read-only graph
// state. Below the threshold, or with workers <= 1, it runs serially.
func Map[R any](n, workers int, fn func(i int) R) []R {
	results := make([]R, n)
	if n == 0 {
		return results
	}
	if workers <= 1 || n < Threshold {
		for i := 0; i < n; i++ {
			results[i] = fn(i)
		}
		return results
	}
	if workers > n {
		workers = n
	}

	jobs := make(chan int, n)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

package main

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// fileResult is one input file's outcome, collected so the summary can be
// printed in a stable, sorted order once every worker has finished.
type fileResult struct {
	path  string
	ratio float64
	err   error
}

// processFiles runs fn over every path concurrently, bounded to
// runtime.NumCPU() workers, the same bounded-concurrency shape
// jonjohnsonjr/targz's ranger package uses for concurrent range fetches
// (golang.org/x/sync/errgroup + SetLimit), applied here to a worker pool
// over local files instead of HTTP byte ranges.
func processFiles(paths []string, fn func(path string) (float64, error)) []fileResult {
	results := make([]fileResult, len(paths))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			ratio, err := fn(path)
			results[i] = fileResult{path: path, ratio: ratio, err: err}
			return nil // collect per-file errors in results, don't abort the group
		})
	}
	_ = g.Wait()

	return results
}

// Package parallel contains a bounded concurrent for loop.
package parallel

import (
	"context"
	"sync"
)

// ForEach runs body for every integer in [0, length) with at most limit
// goroutines at a time. It stops scheduling new iterations once ctx is done
// and returns ctx's error in that case.
func ForEach(ctx context.Context, length, limit int, body func(i int)) error {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return ctx.Err()
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i := 0; i < length; i++ {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i)
		}(i)
	}

	wg.Wait()
	return ctx.Err()
}

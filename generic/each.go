package generic

import "sync"

// ParallelEach runs exec for every item on its own goroutine and waits for
// all of them. Each invocation receives the item's original index, so callers
// can collect results into a pre-sized slice and keep input order regardless
// of completion order. The first error encountered is returned.
func ParallelEach[T any](items []T, exec func(i int, item T) error) error {
	var (
		wg      sync.WaitGroup
		errChan = make(chan error, len(items))
	)
	wg.Add(len(items))
	for i, item := range items {
		go func(i int, item T) {
			defer wg.Done()
			if err := exec(i, item); err != nil {
				errChan <- err
			}
		}(i, item)
	}
	wg.Wait()
	close(errChan)
	for err := range errChan {
		if err != nil {
			return err
		}
	}
	return nil
}

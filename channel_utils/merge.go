package channel_utils

import (
	"sync"

	"generate-reel-service/application/ports/outbound"
)

// MergeChannels fans several channels into one. The merged channel closes
// once every input channel has closed or done is closed. A nil done never
// fires; callers that cannot guarantee a reader for the merged channel must
// pass a real done signal or the forwarding workers stay pinned.
func MergeChannels[T any](workerPool outbound.TaskDispatcher, done <-chan struct{}, channels ...<-chan T) (<-chan T, error) {
	var wg sync.WaitGroup
	merged := make(chan T)

	output := func(c <-chan T) {
		defer wg.Done()
		for {
			select {
			case val, ok := <-c:
				if !ok {
					return
				}
				select {
				case merged <- val:
				case <-done:
					return
				}
			case <-done:
				return
			}
		}
	}

	wg.Add(len(channels))
	for _, c := range channels {
		ch := c
		err := workerPool.Submit(func() {
			output(ch)
		})
		if err != nil {
			return nil, err
		}
	}

	err := workerPool.Submit(func() {
		wg.Wait()
		close(merged)
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

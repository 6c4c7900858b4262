package concurrent

import (
	"context"

	"github.com/zeusync/spacedrift/pkg/sequence"
	"golang.org/x/sync/errgroup"
)

// Batch processes elements in chunks of batchSize with at most workers chunks in flight.
// Each element belongs to exactly one chunk. The context passed to action is cancelled
// once any chunk fails.
func Batch[T any](ctx context.Context, i *sequence.Iterator[T], batchSize, workers int, action func(context.Context, []T) error) error {
	in := i.Collect()
	if len(in) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = len(in)
	}
	if workers <= 0 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for idx := 0; idx < len(in); idx += batchSize {
		end := min(idx+batchSize, len(in))
		chunk := in[idx:end]
		g.Go(func() error {
			return action(gctx, chunk)
		})
	}

	return g.Wait()
}

package classifier

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PredictAll classifies texts concurrently and returns predictions in input
// order. The model must be fully trained before the call; no training may
// run while a batch is in flight.
func PredictAll(ctx context.Context, m *Model, texts []string) ([]Prediction, error) {
	results := make([]Prediction, len(texts))

	g, ctx := errgroup.WithContext(ctx)

	for i, text := range texts {
		i, text := i, text

		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				p, err := m.Predict(text)
				if err != nil {
					return err
				}
				results[i] = p
				return nil
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

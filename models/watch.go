package models

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// watchCollection turns a Mongo change stream into a stream of full
// collection snapshots: one snapshot right away, then a fresh one after
// every remote insert/update/delete. The consumer replaces its view
// wholesale; no app-side diffing. Cancelling ctx closes the change stream
// and the returned channel.
func watchCollection[T any](ctx context.Context, col *mongo.Collection, fetch func() ([]T, error)) (<-chan []T, error) {
	cs, err := col.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", col.Name(), err)
	}

	out := make(chan []T, 1)
	go func() {
		defer close(out)
		defer cs.Close(context.Background())

		send := func() bool {
			snap, err := fetch()
			if err != nil {
				// stale view until the next change; the stream stays up
				log.Error().Err(err).Str("collection", col.Name()).Msg("snapshot fetch failed")
				return true
			}
			select {
			case out <- snap:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !send() {
			return
		}
		for cs.Next(ctx) {
			if !send() {
				return
			}
		}
	}()
	return out, nil
}

package database

import (
	"context"
	"sync"

	"physiocare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Subscription is an explicit handle over a change-driven resource stream.
// The caller owns it and must call Close to release the underlying listener;
// the updates channel is closed once the listener stops.
type Subscription[T any] struct {
	updates chan models.Resource[T]
	cancel  context.CancelFunc
	once    sync.Once
}

// Updates returns the stream of tri-state snapshots.
func (s *Subscription[T]) Updates() <-chan models.Resource[T] {
	return s.updates
}

// Close deterministically tears down the stream. Safe to call more than once.
func (s *Subscription[T]) Close() {
	s.once.Do(s.cancel)
}

// WatchCollection opens a change stream on coll and emits a fresh snapshot via
// fetch on every remote change. The first emissions are Loading followed by
// the initial fetch, so subscribers always observe a value without waiting for
// a change event. Listener errors fold into an Error emission and end the
// stream; recovery is a new subscription.
func WatchCollection[T any](
	ctx context.Context,
	coll *mongo.Collection,
	fetch func(context.Context) models.Resource[T],
) *Subscription[T] {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription[T]{
		updates: make(chan models.Resource[T], 1),
		cancel:  cancel,
	}

	go func() {
		defer close(sub.updates)

		if !emit(ctx, sub.updates, models.Loading[T]()) {
			return
		}
		if !emit(ctx, sub.updates, fetch(ctx)) {
			return
		}

		stream, err := coll.Watch(ctx, mongo.Pipeline{})
		if err != nil {
			emit(ctx, sub.updates, models.Failure[T]("Değişiklikler izlenemedi", err))
			return
		}
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			if !emit(ctx, sub.updates, fetch(ctx)) {
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			emit(ctx, sub.updates, models.Failure[T]("Değişiklikler izlenemedi", err))
		}
	}()

	return sub
}

func emit[T any](ctx context.Context, ch chan<- models.Resource[T], r models.Resource[T]) bool {
	select {
	case ch <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

// Package store provides the in-memory collection stores backing the API.
// Every store owns one snapshot of a collection; mutations replace the whole
// snapshot and republish it to subscribers (replay-latest semantics).
package store

import (
	"context"
	"sync"
)

// Store holds the current snapshot of one entity collection. The zero
// snapshot is an empty slice; the snapshot is only ever swapped, never
// edited in place, so callers may read returned slices freely as long as
// they do not mutate the elements.
type Store[T any] struct {
	mu          sync.RWMutex
	snapshot    []T
	subscribers map[int]chan []T
	nextSub     int
}

func New[T any]() *Store[T] {
	return &Store[T]{
		subscribers: make(map[int]chan []T),
	}
}

// Snapshot returns the current collection.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}

// Replace swaps the whole collection and publishes the new snapshot to every
// subscriber. Ordering between overlapping callers is last-write-wins.
func (s *Store[T]) Replace(snapshot []T) {
	s.mu.Lock()
	s.snapshot = snapshot
	subs := make([]chan []T, 0, len(s.subscribers))
	for _, ch := range s.subscribers {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	for _, ch := range subs {
		// Drop the pending value if the subscriber has not drained it yet;
		// only the latest snapshot matters.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// Subscribe returns a channel that immediately carries the current snapshot,
// then every subsequent replacement, keeping only the latest value. The
// subscription ends when ctx is done.
func (s *Store[T]) Subscribe(ctx context.Context) <-chan []T {
	ch := make(chan []T, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = ch
	ch <- s.snapshot
	s.mu.Unlock()

	go func() {
		<-ctx.Done()

		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}()

	return ch
}

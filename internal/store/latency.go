package store

import (
	"context"
	"time"
)

// Latency simulates the round trip a mutation would make against a real
// backend. Production wiring uses a fixed delay, tests use None.
type Latency interface {
	Wait(ctx context.Context) error
}

type fixedLatency struct {
	delay time.Duration
}

func FixedLatency(delay time.Duration) Latency {
	return fixedLatency{delay: delay}
}

func (l fixedLatency) Wait(ctx context.Context) error {
	timer := time.NewTimer(l.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type noLatency struct{}

// None waits for nothing.
func None() Latency {
	return noLatency{}
}

func (noLatency) Wait(context.Context) error {
	return nil
}

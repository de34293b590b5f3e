package services

import (
	"context"
	"errors"
	"sync"
)

// ErrQueueClosed is returned when a mutation is submitted after Close.
var ErrQueueClosed = errors.New("mutation queue closed")

type job struct {
	fn   func() error
	done chan error
}

// Queue runs mutations one at a time on a single goroutine. The stores it
// guards have exactly one writer, so readers never need a lock.
type Queue struct {
	jobs      chan job
	closing   chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// NewQueue starts the writer goroutine. Call Close to stop it.
func NewQueue() *Queue {
	q := &Queue{
		jobs:    make(chan job),
		closing: make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go q.run()

	return q
}

func (q *Queue) run() {
	defer close(q.stopped)

	for {
		select {
		case <-q.closing:
			return
		case j := <-q.jobs:
			j.done <- j.fn()
		}
	}
}

// Do submits fn and waits for it to finish, returning its error. If ctx is
// done before the writer accepts fn, fn never runs and ctx.Err() is returned.
// Once accepted, fn always runs to completion.
func (q *Queue) Do(ctx context.Context, fn func() error) error {
	j := job{fn: fn, done: make(chan error, 1)}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-q.closing:
		return ErrQueueClosed
	case q.jobs <- j:
	}

	return <-j.done
}

// Close stops accepting mutations and waits for the one in flight, if any.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.closing)
	})

	<-q.stopped
}

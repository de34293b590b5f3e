package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_ReturnsMutationError(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	defer q.Close()

	want := errors.New("rejected")

	require.NoError(t, q.Do(t.Context(), func() error { return nil }))
	require.ErrorIs(t, q.Do(t.Context(), func() error { return want }), want)
}

func TestQueue_SerializesConcurrentCallers(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	defer q.Close()

	var (
		inFlight atomic.Int32
		maxSeen  atomic.Int32
		counter  int
		wg       sync.WaitGroup
	)

	for range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			err := q.Do(context.Background(), func() error {
				n := inFlight.Add(1)
				if n > maxSeen.Load() {
					maxSeen.Store(n)
				}

				counter++

				inFlight.Add(-1)

				return nil
			})
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, int32(1), maxSeen.Load())
}

func TestQueue_CancelledBeforeAccepted(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	defer q.Close()

	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_ = q.Do(context.Background(), func() error {
			close(started)
			<-release

			return nil
		})
	}()

	<-started

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	ran := false
	err := q.Do(ctx, func() error {
		ran = true

		return nil
	})

	close(release)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, ran)
}

func TestQueue_Closed(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	q.Close()
	q.Close()

	err := q.Do(t.Context(), func() error { return nil })
	require.ErrorIs(t, err, ErrQueueClosed)
}

package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferred_FIFO(t *testing.T) {
	r := mustNew(t, Deferred(8))
	defer r.Close()

	var got []any
	require.NoError(t, r.Register("a", 0, recorder(&got), "a"))
	require.NoError(t, r.Register("b", 0, recorder(&got), "b"))
	require.NoError(t, r.Register("c", 0, recorder(&got), "c"))

	require.NoError(t, r.Defer("a", ""))
	require.NoError(t, r.Defer("b", ""))
	require.NoError(t, r.Defer("c", ""))
	assert.Empty(t, got, "Nothing fires until a drain")

	r.Drain()
	assert.Equal(t, []any{"a", "b", "c"}, got)

	// A second drain has nothing left to do.
	got = nil
	r.Drain()
	assert.Empty(t, got)
}

func TestDeferred_QueueFull(t *testing.T) {
	r := mustNew(t, Deferred(2))
	defer r.Close()

	var got []any
	require.NoError(t, r.Register("evt", 0, recorder(&got), "evt"))

	require.NoError(t, r.Defer("evt", "1"))
	require.NoError(t, r.Defer("evt", "2"))
	assert.ErrorIs(t, r.Defer("evt", "3"), ErrQueueFull)

	// The rejected event must not corrupt what was already queued.
	r.Drain()
	assert.Equal(t, []any{"evt", "evt"}, got)
}

func TestDeferred_PayloadDelivered(t *testing.T) {
	r := mustNew(t, Deferred(4))
	defer r.Close()

	var payloads []string
	require.NoError(t, r.Register("evt", 0, func(_ any, data string) Signal {
		payloads = append(payloads, data)
		return Continue
	}, nil))

	require.NoError(t, r.Defer("evt", "first"))
	require.NoError(t, r.Defer("evt", "second"))
	r.Drain()
	assert.Equal(t, []string{"first", "second"}, payloads)
}

func TestDeferred_Disabled(t *testing.T) {
	r := mustNew(t)
	defer r.Close()

	assert.ErrorIs(t, r.Defer("evt", ""), ErrDeferredDisabled)
	assert.NotPanics(t, func() {
		r.Drain()
	})
}

func TestDeferred_CloseDiscardsQueued(t *testing.T) {
	r := mustNew(t, Deferred(4))

	fired := 0
	require.NoError(t, r.Register("evt", 0, func(any, string) Signal {
		fired++
		return Continue
	}, nil))
	require.NoError(t, r.Defer("evt", ""))
	r.Close()

	r.Drain()
	assert.Equal(t, 0, fired)
}

func TestDeferred_DeferWhileLockHeld(t *testing.T) {
	// Defer must not touch the registry lock, so deferring from inside a
	// callback cannot deadlock.
	r := mustNew(t, Deferred(4))
	defer r.Close()

	var got []any
	require.NoError(t, r.Register("first", 0, func(any, string) Signal {
		assert.NoError(t, r.Defer("second", ""))
		return Continue
	}, nil))
	require.NoError(t, r.Register("second", 0, recorder(&got), "second"))

	r.Fire("first", "")
	assert.Empty(t, got)
	r.Drain()
	assert.Equal(t, []any{"second"}, got)
}

func TestDeferred_ProducerConsumer(t *testing.T) {
	const total = 1000
	r := mustNew(t, Deferred(8))
	defer r.Close()

	count := 0
	require.NoError(t, r.Register("evt", 0, func(any, string) Signal {
		count++
		return Continue
	}, nil))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < total; i++ {
			for r.Defer("evt", "") != nil {
				// Queue full, wait for the drainer to catch up.
			}
		}
	}()

	for {
		r.Drain()
		select {
		case <-done:
			r.Drain()
			assert.Equal(t, total, count)
			return
		default:
		}
	}
}

package ring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuffer(t *testing.T) {
	b := New[int](3)
	assert.Equal(t, 3, b.Cap())
	assert.Equal(t, 0, b.Len())

	val, ok := b.Poll()
	assert.False(t, ok)
	assert.Equal(t, 0, val)

	assert.True(t, b.Offer(1))
	assert.True(t, b.Offer(2))
	assert.True(t, b.Offer(3))
	assert.Equal(t, 3, b.Len())
	assert.False(t, b.Offer(4), "Buffer should be full")
	assert.Equal(t, 3, b.Len())

	val, ok = b.Poll()
	assert.True(t, ok)
	assert.Equal(t, 1, val)
	val, ok = b.Poll()
	assert.True(t, ok)
	assert.Equal(t, 2, val)
	val, ok = b.Poll()
	assert.True(t, ok)
	assert.Equal(t, 3, val)
	assert.Equal(t, 0, b.Len())
}

func TestNew_InvalidCapacity(t *testing.T) {
	assert.Panics(t, func() {
		New[int](0)
	})
	assert.Panics(t, func() {
		New[int](-1)
	})
}

func TestBuffer_Wraparound(t *testing.T) {
	b := New[int](2)
	for i := 0; i < 10; i++ {
		assert.True(t, b.Offer(i))
		val, ok := b.Poll()
		assert.True(t, ok)
		assert.Equal(t, i, val)
	}
	assert.Equal(t, 0, b.Len())
}

func TestBuffer_RejectedOfferLeavesContents(t *testing.T) {
	b := New[string](2)
	assert.True(t, b.Offer("a"))
	assert.True(t, b.Offer("b"))
	assert.False(t, b.Offer("c"))

	val, ok := b.Poll()
	assert.True(t, ok)
	assert.Equal(t, "a", val)
	val, ok = b.Poll()
	assert.True(t, ok)
	assert.Equal(t, "b", val)
	_, ok = b.Poll()
	assert.False(t, ok)
}

func TestBuffer_Reset(t *testing.T) {
	b := New[int](4)
	assert.True(t, b.Offer(1))
	assert.True(t, b.Offer(2))
	b.Reset()
	assert.Equal(t, 0, b.Len())
	_, ok := b.Poll()
	assert.False(t, ok)
	assert.True(t, b.Offer(3))
	val, ok := b.Poll()
	assert.True(t, ok)
	assert.Equal(t, 3, val)
}

func TestBuffer_SingleProducerSingleConsumer(t *testing.T) {
	const total = 10_000
	b := New[int](8)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; i++ {
			for !b.Offer(i) {
				// Spin until the consumer frees a slot.
			}
		}
	}()

	for want := 0; want < total; {
		val, ok := b.Poll()
		if !ok {
			continue
		}
		if val != want {
			t.Fatalf("expected %d, got %d", want, val)
		}
		want++
	}
	wg.Wait()
	assert.Equal(t, 0, b.Len())
}

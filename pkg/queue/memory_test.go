package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryQueue(t *testing.T) {
	q := NewInMemoryQueue[int](2)

	assert.NoError(t, q.Enqueue(1))
	assert.NoError(t, q.Enqueue(2))
	assert.ErrorIs(t, q.Enqueue(3), ErrQueueFull)
	assert.Equal(t, 2, q.Size())

	assert.Equal(t, 1, q.Dequeue())
	assert.NoError(t, q.Enqueue(4))
	assert.Equal(t, []int{2, 4}, q.ReadAllMessages())
	assert.Nil(t, q.ReadAllMessages())

	assert.NoError(t, q.Enqueue(5))
	q.ClearQueue()
	assert.Equal(t, 0, q.Size())

	assert.NoError(t, q.Enqueue(6))
	select {
	case v := <-q.Chan():
		assert.Equal(t, 6, v)
	default:
		t.Fatal("expected item on channel")
	}
}

func TestNewInMemoryQueue_DefaultSize(t *testing.T) {
	q := NewInMemoryQueue[string](0)
	assert.Equal(t, QueueBufferSize, cap(q.ch))
}

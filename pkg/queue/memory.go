// queue package

package queue

import (
	"errors"
	"sync"
)

const (
	// QueueBufferSize represents the default size of a queue
	QueueBufferSize = 1024
)

var ErrQueueFull = errors.New("queue is full")

// InMemoryQueue implements an in-memory queue.
type InMemoryQueue[T any] struct {
	ch   chan T
	lock sync.Mutex
}

// NewInMemoryQueue creates a new queue. A non-positive size uses QueueBufferSize.
func NewInMemoryQueue[T any](size int) *InMemoryQueue[T] {
	if size <= 0 {
		size = QueueBufferSize
	}
	return &InMemoryQueue[T]{
		ch: make(chan T, size),
	}
}

// Enqueue adds an item to the end of the queue.
func (q *InMemoryQueue[T]) Enqueue(item T) error {
	select {
	case q.ch <- item:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue removes and returns the item from the front of the queue.
func (q *InMemoryQueue[T]) Dequeue() T {
	return <-q.ch
}

// Size returns the current size of the queue.
func (q *InMemoryQueue[T]) Size() int {
	return len(q.ch)
}

// ReadAllMessages reads all pending messages in the queue
func (q *InMemoryQueue[T]) ReadAllMessages() []T {
	q.lock.Lock()
	defer q.lock.Unlock()

	var items []T
	for {
		select {
		case item := <-q.ch:
			items = append(items, item)
		default:
			return items
		}
	}
}

// ClearQueue clears all messages from the queue.
func (q *InMemoryQueue[T]) ClearQueue() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for {
		select {
		case <-q.ch:
		default:
			return
		}
	}
}

func (q *InMemoryQueue[T]) Chan() <-chan T {
	return q.ch
}

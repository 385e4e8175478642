package queue

// Queue represents a bounded queue of events of a single kind.
type Queue[T any] interface {
	// Enqueue adds an item without blocking. It returns ErrQueueFull when
	// the queue is at capacity.
	Enqueue(item T) error
	// Dequeue blocks until an item is available.
	Dequeue() T
	Size() int
	// ReadAllMessages drains every pending item.
	ReadAllMessages() []T
	ClearQueue()
	// Chan exposes the receive side for select loops.
	Chan() <-chan T
}

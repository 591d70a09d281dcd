package queue

// Queue is a generic interface for bounded FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item at the back.
	// Returns ErrFull if the queue is at capacity.
	Enqueue(item T) error

	// Dequeue removes and returns the item at the front.
	// Returns ErrEmpty if the queue holds nothing.
	Dequeue() (T, error)

	// Capacity returns the total capacity of the queue.
	Capacity() uint64
}

package game

import (
	"errors"
	"sync"
)

var errQueueClosed = errors.New("main thread queue closed")

// mainQueue runs functions on the thread that owns the raylib context.
// Loader goroutines enqueue with Do; the frame loop calls Drain.
type mainQueue struct {
	mu     sync.Mutex
	tasks  []func()
	closed chan struct{}
	once   sync.Once
}

func newMainQueue() *mainQueue {
	return &mainQueue{closed: make(chan struct{})}
}

// Do enqueues fn and blocks until the main thread has run it.
func (q *mainQueue) Do(fn func()) error {
	done := make(chan struct{})

	q.mu.Lock()
	select {
	case <-q.closed:
		q.mu.Unlock()
		return errQueueClosed
	default:
	}
	q.tasks = append(q.tasks, func() {
		defer close(done)
		fn()
	})
	q.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-q.closed:
		return errQueueClosed
	}
}

// Drain runs every pending task and returns how many ran.
func (q *mainQueue) Drain() int {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for _, task := range tasks {
		task()
	}
	return len(tasks)
}

// Close releases every waiting Do. Pending tasks are dropped.
func (q *mainQueue) Close() {
	q.once.Do(func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		close(q.closed)
		q.tasks = nil
	})
}

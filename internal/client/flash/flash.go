// Package flash holds short-lived user notifications. Messages stay until the
// user dismisses them and are never persisted.
package flash

import (
	"slices"
	"sync"
)

// Queue is an ordered list of messages, safe for concurrent use.
type Queue struct {
	mu       sync.Mutex
	messages []string
}

func NewQueue() *Queue {
	return &Queue{}
}

// Add appends msg to the end of the queue.
func (q *Queue) Add(msg string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.messages = append(q.messages, msg)
}

// Remove deletes the message at index i. Remaining messages keep their order.
// It returns false when i is out of range.
func (q *Queue) Remove(i int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if i < 0 || i >= len(q.messages) {
		return false
	}
	q.messages = slices.Delete(q.messages, i, i+1)
	return true
}

// List returns a copy of the queued messages, oldest first.
func (q *Queue) List() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return slices.Clone(q.messages)
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.messages)
}

// Package queue provides the work queue shared by the diff workers.
package queue

import (
	"sync"

	"go.trai.ch/differ/internal/core/domain"
)

// Queue is a FIFO of file pairs. Every pair is handed out exactly once.
type Queue struct {
	mu    sync.Mutex
	pairs []domain.FilePair
}

// New creates a queue holding pairs in order. The slice is copied.
func New(pairs []domain.FilePair) *Queue {
	return &Queue{pairs: append([]domain.FilePair(nil), pairs...)}
}

// Pop removes and returns the front pair. It reports false once the queue is empty.
func (q *Queue) Pop() (domain.FilePair, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pairs) == 0 {
		return domain.FilePair{}, false
	}
	pair := q.pairs[0]
	q.pairs[0] = domain.FilePair{}
	q.pairs = q.pairs[1:]
	return pair, true
}

// Len returns the number of pairs not yet handed out.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pairs)
}

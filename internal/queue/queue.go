// Package queue is the in-memory hand-off between the dashboard (producer)
// and the evaluation poller (consumer). Tasks live only as long as the
// process; a mutex-guarded map is sufficient at this traffic.
package queue

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/logger"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"
)

const DefaultMaxAttempts = 3

type Queue struct {
	mu          sync.Mutex
	tasks       map[string]model.Task
	order       map[string]int
	seq         int
	deadLetters []model.Task
	maxAttempts int
	log         zerolog.Logger
}

func New(maxAttempts int) *Queue {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Queue{
		tasks:       make(map[string]model.Task),
		order:       make(map[string]int),
		maxAttempts: maxAttempts,
		log:         logger.Component("queue"),
	}
}

// Pending returns the number of queued tasks.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// DeadLetters returns a copy of the tasks that exhausted their attempts.
func (q *Queue) DeadLetters() []model.Task {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]model.Task, len(q.deadLetters))
	copy(out, q.deadLetters)
	return out
}

func (q *Queue) insert(t model.Task) {
	q.seq++
	q.tasks[t.ID] = t
	q.order[t.ID] = q.seq
}

// claimed tasks are removed in enqueue order so batches and messages keep
// their submission sequence.
func (q *Queue) drainLocked() []model.Task {
	out := make([]model.Task, 0, len(q.tasks))
	for id := range q.tasks {
		out = append(out, q.tasks[id])
	}
	sort.Slice(out, func(i, j int) bool {
		return q.order[out[i].ID] < q.order[out[j].ID]
	})
	q.tasks = make(map[string]model.Task)
	q.order = make(map[string]int)
	return out
}

package queue

import (
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"
)

// Consumer is the read side owned by the single poller. Claim removes tasks
// from the queue before the poller performs any side effect, so a task can
// never be delivered twice by one process; a failed attempt is handed back
// via Requeue until its attempts are exhausted.
type Consumer interface {
	Claim() []model.Task
	Requeue(task model.Task)
}

// Claim atomically removes and returns all pending tasks in enqueue order.
func (q *Queue) Claim() []model.Task {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.drainLocked()
}

// Requeue puts a failed task back for a later tick, or moves it to the
// dead-letter list once it has used up its attempts. The retry policy is the
// same for every task kind.
func (q *Queue) Requeue(task model.Task) {
	task.Attempts++

	q.mu.Lock()
	if task.Attempts >= q.maxAttempts {
		q.deadLetters = append(q.deadLetters, task)
		q.mu.Unlock()
		q.log.Error().
			Str("task_id", task.ID).
			Str("kind", string(task.Kind)).
			Int("attempts", task.Attempts).
			Msg("Task moved to dead-letter list")
		return
	}
	q.insert(task)
	q.mu.Unlock()

	q.log.Warn().
		Str("task_id", task.ID).
		Str("kind", string(task.Kind)).
		Int("attempts", task.Attempts).
		Msg("Task requeued for retry")
}

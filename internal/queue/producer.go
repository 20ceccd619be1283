package queue

import (
	"github.com/google/uuid"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"
)

// Producer is the write side handed to the dashboard. The dashboard only
// inserts; it never removes tasks.
type Producer interface {
	EnqueueEvaluation(batch model.EvaluationBatch) string
	EnqueueMessage(msg model.OutboundMessage) string
}

func (q *Queue) EnqueueEvaluation(batch model.EvaluationBatch) string {
	task := model.Task{
		ID:         uuid.NewString(),
		Kind:       model.TaskEvaluation,
		Evaluation: &batch,
	}

	q.mu.Lock()
	q.insert(task)
	q.mu.Unlock()

	q.log.Info().
		Str("task_id", task.ID).
		Str("training_type", string(batch.Type)).
		Int("entries", len(batch.Entries)).
		Msg("Evaluation batch enqueued")
	return task.ID
}

func (q *Queue) EnqueueMessage(msg model.OutboundMessage) string {
	task := model.Task{
		ID:      uuid.NewString(),
		Kind:    model.TaskMessage,
		Message: &msg,
	}

	q.mu.Lock()
	q.insert(task)
	q.mu.Unlock()

	q.log.Info().
		Str("task_id", task.ID).
		Str("channel_id", msg.ChannelID).
		Msg("Custom message enqueued")
	return task.ID
}

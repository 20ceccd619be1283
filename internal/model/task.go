package model

import "time"

// OutboundMessage is a custom embed composed in the dashboard. Content,
// Title and Description may contain the placeholder tokens {pending_role},
// {passed_role}, {date} and {time}; they are substituted when the message
// is sent, not when it is enqueued.
type OutboundMessage struct {
	ChannelID   string       `json:"channel_id"`
	Content     string       `json:"content"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       int          `json:"color"`
	Type        TrainingType `json:"type"`
	CreatedAt   time.Time    `json:"created_at"`
}

type TaskKind string

const (
	TaskEvaluation TaskKind = "evaluation"
	TaskMessage    TaskKind = "message"
)

// Task is the queued work item bridging the dashboard and the poller.
// Exactly one payload pointer is set, selected by Kind.
type Task struct {
	ID         string
	Kind       TaskKind
	Attempts   int
	Evaluation *EvaluationBatch
	Message    *OutboundMessage
}

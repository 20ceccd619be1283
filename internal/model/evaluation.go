package model

import "time"

// EvaluationEntry is one scored participant. Grade is always derived from
// Points via the grading tables and Passed from Grade; entries are never
// constructed with free-hand grades.
type EvaluationEntry struct {
	UserID string `json:"user_id"`
	Points int    `json:"points"`
	Grade  int    `json:"grade"`
	Passed bool   `json:"passed"`
}

// EvaluationBatch is a roster submitted together for one training type.
// ID doubles as the dedup key: a batch whose ID is already recorded in the
// evaluation history is never posted a second time.
type EvaluationBatch struct {
	ID        string            `json:"id"`
	Type      TrainingType      `json:"type"`
	Entries   []EvaluationEntry `json:"entries"`
	CreatedAt time.Time         `json:"created_at"`
}

// EvaluationRecord is the persisted history entry for a processed batch.
type EvaluationRecord struct {
	Type      TrainingType      `json:"type"`
	Entries   []EvaluationEntry `json:"entries"`
	CreatedAt time.Time         `json:"created_at"`
}

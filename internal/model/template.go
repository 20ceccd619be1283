package model

import "time"

// Template holds the editable text blocks of a training announcement.
// Benefits entries may contain the {passed_role} placeholder which is
// resolved against the live role when the announcement is rendered.
type Template struct {
	Title          string   `json:"title"`
	Intro          string   `json:"intro"`
	Topics         []string `json:"topics"`
	AdditionalInfo []string `json:"additional_info"`
	Grading        []string `json:"grading"`
	Benefits       []string `json:"benefits"`
}

// AnnouncementRecord is an append-only history entry written when a staff
// member announces a training session.
type AnnouncementRecord struct {
	Type      TrainingType `json:"type"`
	Date      string       `json:"date"`
	Time      string       `json:"time"`
	Timestamp int64        `json:"timestamp"`
	HostID    string       `json:"host"`
	CreatedAt time.Time    `json:"created_at"`
}

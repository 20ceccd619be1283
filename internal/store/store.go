// Package store persists templates and history as one JSON document. The
// whole document is read at startup and rewritten on every mutation, so a
// crash loses at most the in-memory task queue, never a committed edit.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"
	pkgerrors "github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/pkg/errors"
)

type Store interface {
	Template(t model.TrainingType) (model.Template, error)
	PutTemplate(t model.TrainingType, tpl model.Template) error
	AppendAnnouncement(rec model.AnnouncementRecord) error
	AppendEvaluation(rec model.EvaluationRecord, dedupKey string) error
	HasProcessed(dedupKey string) bool
	SaveMessage(id string, msg model.OutboundMessage) error
	Snapshot() Document
}

// Document is the persisted shape of the data file.
type Document struct {
	Announcements []model.AnnouncementRecord            `json:"announcements"`
	Evaluations   []model.EvaluationRecord              `json:"evaluations"`
	Templates     map[model.TrainingType]model.Template `json:"templates"`
	Messages      map[string]model.OutboundMessage      `json:"messages"`
	Processed     []string                              `json:"processed_batches"`
}

type fileStore struct {
	path      string
	mu        sync.Mutex
	doc       Document
	processed map[string]bool
}

// Open loads the document from path, seeding defaults where the file is
// missing or lacks templates.
func Open(path string) (Store, error) {
	s := &fileStore{path: path}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		s.doc = Document{}
	case err != nil:
		return nil, fmt.Errorf("failed to read data file: %w", err)
	default:
		if err := json.Unmarshal(data, &s.doc); err != nil {
			return nil, fmt.Errorf("failed to parse data file: %w", err)
		}
	}

	if s.doc.Templates == nil {
		s.doc.Templates = DefaultTemplates()
	}
	for _, t := range model.TrainingTypes {
		if _, ok := s.doc.Templates[t]; !ok {
			s.doc.Templates[t] = DefaultTemplates()[t]
		}
	}
	if s.doc.Messages == nil {
		s.doc.Messages = make(map[string]model.OutboundMessage)
	}

	s.processed = make(map[string]bool, len(s.doc.Processed))
	for _, key := range s.doc.Processed {
		s.processed[key] = true
	}

	return s, nil
}

func (s *fileStore) Template(t model.TrainingType) (model.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tpl, ok := s.doc.Templates[t]
	if !ok {
		return model.Template{}, pkgerrors.ErrUnknownTraining
	}
	return tpl, nil
}

// PutTemplate replaces the whole template; omitted fields become empty.
func (s *fileStore) PutTemplate(t model.TrainingType, tpl model.Template) error {
	if !t.Valid() {
		return pkgerrors.ErrUnknownTraining
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Templates[t] = tpl
	return s.flushLocked()
}

func (s *fileStore) AppendAnnouncement(rec model.AnnouncementRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Announcements = append(s.doc.Announcements, rec)
	return s.flushLocked()
}

// AppendEvaluation records the history entry together with the batch's dedup
// key in one flush, so a replayed batch is recognizable after a crash.
func (s *fileStore) AppendEvaluation(rec model.EvaluationRecord, dedupKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Evaluations = append(s.doc.Evaluations, rec)
	if dedupKey != "" && !s.processed[dedupKey] {
		s.doc.Processed = append(s.doc.Processed, dedupKey)
		s.processed[dedupKey] = true
	}
	return s.flushLocked()
}

func (s *fileStore) HasProcessed(dedupKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processed[dedupKey]
}

func (s *fileStore) SaveMessage(id string, msg model.OutboundMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Messages[id] = msg
	return s.flushLocked()
}

func (s *fileStore) Snapshot() Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.doc
	snap.Announcements = append([]model.AnnouncementRecord(nil), s.doc.Announcements...)
	snap.Evaluations = append([]model.EvaluationRecord(nil), s.doc.Evaluations...)
	snap.Processed = append([]string(nil), s.doc.Processed...)
	snap.Templates = make(map[model.TrainingType]model.Template, len(s.doc.Templates))
	for k, v := range s.doc.Templates {
		snap.Templates[k] = v
	}
	snap.Messages = make(map[string]model.OutboundMessage, len(s.doc.Messages))
	for k, v := range s.doc.Messages {
		snap.Messages[k] = v
	}
	return snap
}

// flushLocked rewrites the whole document through a temp file and rename so
// a crash mid-write cannot corrupt the previous copy.
func (s *fileStore) flushLocked() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

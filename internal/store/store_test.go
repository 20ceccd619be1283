package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"
	pkgerrors "github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/pkg/errors"
)

func openTemp(t *testing.T) (Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bot_data.json")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func TestOpenMissingFileSeedsDefaults(t *testing.T) {
	s, _ := openTemp(t)

	for _, tt := range model.TrainingTypes {
		tpl, err := s.Template(tt)
		require.NoError(t, err)
		assert.NotEmpty(t, tpl.Title)
		assert.NotEmpty(t, tpl.Topics)
		assert.NotEmpty(t, tpl.Grading)
	}

	tpl, err := s.Template(model.TrainingTheorie)
	require.NoError(t, err)
	assert.Equal(t, "Theorie-Ausbildung", tpl.Title)
}

func TestPutTemplateFullReplace(t *testing.T) {
	s, _ := openTemp(t)

	newTopics := []string{"1. Neues Thema", "2. Noch eins"}
	require.NoError(t, s.PutTemplate(model.TrainingTheorie, model.Template{
		Title:  "Theorie-Ausbildung",
		Intro:  "Neuer Einstieg.",
		Topics: newTopics,
	}))

	tpl, err := s.Template(model.TrainingTheorie)
	require.NoError(t, err)
	assert.Equal(t, newTopics, tpl.Topics)

	// Full-replace semantics: fields the caller leaves out are gone.
	assert.Empty(t, tpl.Grading)
	assert.Empty(t, tpl.Benefits)

	other, err := s.Template(model.TrainingGrund)
	require.NoError(t, err)
	assert.NotEmpty(t, other.Grading, "other templates stay untouched")
}

func TestPutTemplateUnknownType(t *testing.T) {
	s, _ := openTemp(t)
	err := s.PutTemplate(model.TrainingType("fahrrad"), model.Template{})
	assert.ErrorIs(t, err, pkgerrors.ErrUnknownTraining)
}

func TestMutationsSurviveReopen(t *testing.T) {
	s, path := openTemp(t)

	require.NoError(t, s.PutTemplate(model.TrainingStvo, model.Template{Title: "StVO Neu"}))
	require.NoError(t, s.AppendAnnouncement(model.AnnouncementRecord{
		Type: model.TrainingGrund, Date: "24.12.2025", Time: "19:00",
		Timestamp: 1766602800, HostID: "99", CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, s.AppendEvaluation(model.EvaluationRecord{
		Type:      model.TrainingGrund,
		Entries:   []model.EvaluationEntry{{UserID: "1", Points: 42, Grade: 2, Passed: true}},
		CreatedAt: time.Now().UTC(),
	}, "batch-1"))
	require.NoError(t, s.SaveMessage("msg_1", model.OutboundMessage{ChannelID: "5", Title: "Hallo"}))

	reopened, err := Open(path)
	require.NoError(t, err)

	tpl, err := reopened.Template(model.TrainingStvo)
	require.NoError(t, err)
	assert.Equal(t, "StVO Neu", tpl.Title)

	snap := reopened.Snapshot()
	require.Len(t, snap.Announcements, 1)
	assert.Equal(t, "24.12.2025", snap.Announcements[0].Date)
	require.Len(t, snap.Evaluations, 1)
	assert.Equal(t, 42, snap.Evaluations[0].Entries[0].Points)
	assert.Contains(t, snap.Messages, "msg_1")

	assert.True(t, reopened.HasProcessed("batch-1"))
	assert.False(t, reopened.HasProcessed("batch-2"))
}

func TestAppendEvaluationDedupKeyRecordedOnce(t *testing.T) {
	s, _ := openTemp(t)

	rec := model.EvaluationRecord{Type: model.TrainingTheorie, CreatedAt: time.Now().UTC()}
	require.NoError(t, s.AppendEvaluation(rec, "k1"))
	require.NoError(t, s.AppendEvaluation(rec, "k1"))

	snap := s.Snapshot()
	assert.Equal(t, []string{"k1"}, snap.Processed)
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := openTemp(t)
	snap := s.Snapshot()
	snap.Templates[model.TrainingTheorie] = model.Template{Title: "mutiert"}

	tpl, err := s.Template(model.TrainingTheorie)
	require.NoError(t, err)
	assert.Equal(t, "Theorie-Ausbildung", tpl.Title)
}

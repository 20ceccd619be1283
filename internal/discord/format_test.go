package discord

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"
)

func TestResolvePlaceholders(t *testing.T) {
	now := time.Date(2025, 12, 24, 19, 30, 0, 0, time.UTC)

	in := "Hallo {pending_role}! Die nächste Ausbildung für {passed_role} ist am {date} um {time}."
	out := ResolvePlaceholders(in, "<@&1>", "<@&2>", now)
	assert.Equal(t, "Hallo <@&1>! Die nächste Ausbildung für <@&2> ist am 24.12.2025 um 19:30.", out)
}

func TestResolvePlaceholdersFallbacks(t *testing.T) {
	now := time.Date(2025, 1, 2, 8, 5, 0, 0, time.UTC)
	out := ResolvePlaceholders("{pending_role}/{passed_role}", "", "", now)
	assert.Equal(t, "@everyone/✅", out)
}

func TestAnnouncementEmbed(t *testing.T) {
	tpl := model.Template{
		Title:          "Theorie-Ausbildung",
		Intro:          "Eine Theorie-Ausbildung findet statt.",
		Topics:         []string{"1. Begrüßung", "2. Prüfung"},
		AdditionalInfo: []string{"Pünktlich sein."},
		Grading:        []string{"Sehr gut: 50 – 45"},
		Benefits:       []string{"Du bekommst die {passed_role} Rolle."},
	}
	when := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	e := AnnouncementEmbed(tpl, when, "4711", "<@&77>", "https://cdn.example/banner.png")

	assert.Equal(t, "Theorie-Ausbildung", e.Title)
	assert.Equal(t, embedColor, e.Color)
	assert.Equal(t, "https://cdn.example/banner.png", e.ImageURL)
	require.Len(t, e.Fields, 5)

	assert.Contains(t, e.Fields[0].Value, "<t:1748800800:D>")
	assert.Contains(t, e.Fields[0].Value, "<@4711>")
	assert.Equal(t, "> - 1. Begrüßung\n> - 2. Prüfung", e.Fields[1].Value)
	assert.Equal(t, "**Notenspiegel:**", e.Fields[3].Name)
	assert.Contains(t, e.Fields[4].Value, "<@&77>")
	assert.NotContains(t, e.Fields[4].Value, TokenPassedRole)
}

func TestAnnouncementEmbedSkipsEmptyBlocks(t *testing.T) {
	tpl := model.Template{Title: "T", Intro: "I", Topics: []string{"x"}}
	e := AnnouncementEmbed(tpl, time.Now(), "1", "", "")
	require.Len(t, e.Fields, 2)
	assert.Empty(t, e.ImageURL)
}

func TestEvaluationMessage(t *testing.T) {
	batch := model.EvaluationBatch{
		Type: model.TrainingGrund,
		Entries: []model.EvaluationEntry{
			{UserID: "1", Points: 42, Grade: 2, Passed: true},
			{UserID: "2", Points: 10, Grade: 6, Passed: false},
		},
	}
	now := time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC)

	msg := EvaluationMessage(batch, now)

	assert.Contains(t, msg, "Auswertung der Grundausbildung")
	assert.Contains(t, msg, "Name: <@1>\nPunkte: 42/50\nNote: 2\nDatum: 15.03.2025")
	assert.Contains(t, msg, "Name: <@2>\nPunkte: 10/50\nNote: 6")
	assert.NotContains(t, msg, "Keiner 🎉")

	passedIdx := strings.Index(msg, "<@1>")
	failedHeader := strings.Index(msg, "**Nicht Bestanden Haben:**")
	failedIdx := strings.Index(msg, "<@2>")
	assert.Less(t, passedIdx, failedHeader)
	assert.Greater(t, failedIdx, failedHeader)
}

func TestEvaluationMessageNobodyFailed(t *testing.T) {
	batch := model.EvaluationBatch{
		Type:    model.TrainingStvo,
		Entries: []model.EvaluationEntry{{UserID: "1", Points: 23, Grade: 1, Passed: true}},
	}
	msg := EvaluationMessage(batch, time.Now())
	assert.Contains(t, msg, "Punkte: 23/25")
	assert.Contains(t, msg, "Keiner 🎉")
}

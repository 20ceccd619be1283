package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"
)

const embedColor = 0x02244b

// blankFieldName keeps Discord happy; the API rejects empty field names.
const blankFieldName = "​"

// Placeholder tokens staff may use in templates and custom messages. They
// are substituted with live values at send time.
const (
	TokenPendingRole = "{pending_role}"
	TokenPassedRole  = "{passed_role}"
	TokenDate        = "{date}"
	TokenTime        = "{time}"
)

// ResolvePlaceholders substitutes the four tokens. Empty mentions fall back
// to the same markers the announcement flow uses.
func ResolvePlaceholders(s, pendingMention, passedMention string, now time.Time) string {
	if pendingMention == "" {
		pendingMention = "@everyone"
	}
	if passedMention == "" {
		passedMention = "✅"
	}
	s = strings.ReplaceAll(s, TokenPendingRole, pendingMention)
	s = strings.ReplaceAll(s, TokenPassedRole, passedMention)
	s = strings.ReplaceAll(s, TokenDate, now.Format("02.01.2006"))
	s = strings.ReplaceAll(s, TokenTime, now.Format("15:04"))
	return s
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "> - "+item)
	}
	return strings.Join(lines, "\n")
}

// AnnouncementEmbed renders a training announcement from its template.
// sessionTime drives the Discord timestamp markup, passedMention resolves
// the {passed_role} token in the benefits block.
func AnnouncementEmbed(tpl model.Template, sessionTime time.Time, hostID, passedMention, bannerURL string) *Embed {
	ts := sessionTime.Unix()
	e := &Embed{
		Title:       tpl.Title,
		Description: tpl.Intro,
		Color:       embedColor,
		ImageURL:    bannerURL,
	}

	e.Fields = append(e.Fields, EmbedField{
		Name: blankFieldName,
		Value: fmt.Sprintf(
			"📅 **Datum:** <t:%d:D>\n🕐 **Uhrzeit:** <t:%d:t>\n⏱️ **Dauer:** ca. 45-90 Min\n\n👤 **Veranstalter:** <@%s>",
			ts, ts, hostID),
	})
	e.Fields = append(e.Fields, EmbedField{Name: "**Themen:**", Value: bulletList(tpl.Topics)})

	if len(tpl.AdditionalInfo) > 0 {
		e.Fields = append(e.Fields, EmbedField{Name: "**Zusätzliche Informationen:**", Value: bulletList(tpl.AdditionalInfo)})
	}
	if len(tpl.Grading) > 0 {
		e.Fields = append(e.Fields, EmbedField{Name: "**Notenspiegel:**", Value: bulletList(tpl.Grading)})
	}
	if len(tpl.Benefits) > 0 {
		if passedMention == "" {
			passedMention = "✅"
		}
		benefits := strings.ReplaceAll(bulletList(tpl.Benefits), TokenPassedRole, passedMention)
		e.Fields = append(e.Fields, EmbedField{Name: "**Vorteile:**", Value: benefits})
	}

	return e
}

// EvaluationMessage renders the results post for a processed batch, passed
// participants first, then the failed section.
func EvaluationMessage(batch model.EvaluationBatch, now time.Time) string {
	maxPoints := batch.Type.MaxPoints()
	date := now.Format("02.01.2006")

	var b strings.Builder
	fmt.Fprintf(&b, "⚜️ **Auswertung der %s** ⚜️\n\n**bestanden haben:**\n\n", batch.Type.DisplayName())

	for _, e := range batch.Entries {
		if e.Passed {
			fmt.Fprintf(&b, "Name: <@%s>\nPunkte: %d/%d\nNote: %d\nDatum: %s\n\n",
				e.UserID, e.Points, maxPoints, e.Grade, date)
		}
	}

	b.WriteString("**Nicht Bestanden Haben:**\n\n")
	anyFailed := false
	for _, e := range batch.Entries {
		if !e.Passed {
			anyFailed = true
			fmt.Fprintf(&b, "Name: <@%s>\nPunkte: %d/%d\nNote: %d\nDatum: %s\n\n",
				e.UserID, e.Points, maxPoints, e.Grade, date)
		}
	}
	if !anyFailed {
		b.WriteString("Keiner 🎉\n\n")
	}

	b.WriteString("Eure Ausbilder wünschen euch alles gute!\nÜber ein 🔥 - Feedback würden wir uns freuen!\n\nMfg\nDas Ausbilderteam\n@Ausbilder")
	return b.String()
}

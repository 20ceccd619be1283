// Package web serves the staff dashboard. Handlers validate input, mutate
// the template store or enqueue tasks; nothing here talks to Discord's
// message or role endpoints directly.
package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/config"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/grading"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/logger"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/queue"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/store"
)

const defaultEmbedColor = 0x667eea

type Handler struct {
	store    store.Store
	producer queue.Producer
	cfg      *config.Config
	log      zerolog.Logger
}

func NewHandler(st store.Store, producer queue.Producer, cfg *config.Config) *Handler {
	return &Handler{
		store:    st,
		producer: producer,
		cfg:      cfg,
		log:      logger.Component("web"),
	}
}

type templateView struct {
	Type     model.TrainingType
	Template model.Template
}

// Index renders the login page for anonymous visitors and the portal for
// authenticated staff.
func (h *Handler) Index(c *gin.Context) {
	sess := sessionFrom(c)
	if sess == nil {
		c.HTML(http.StatusOK, "portal", gin.H{
			"Error": c.Query("error"),
		})
		return
	}

	snap := h.store.Snapshot()
	views := make([]templateView, 0, len(model.TrainingTypes))
	for _, t := range model.TrainingTypes {
		views = append(views, templateView{Type: t, Template: snap.Templates[t]})
	}

	c.HTML(http.StatusOK, "portal", gin.H{
		"User":      sess,
		"IsSenior":  sess.Tier == TierSenior,
		"Templates": views,
		"Success":   c.Query("success"),
		"Error":     c.Query("error"),
	})
}

// SaveTemplate replaces a training template wholesale; fields the form does
// not carry come back empty.
func (h *Handler) SaveTemplate(c *gin.Context) {
	trainingType := model.TrainingType(c.Param("type"))
	if !trainingType.Valid() {
		redirectError(c, "Unbekannter Typ!")
		return
	}

	tpl := model.Template{
		Title:          strings.TrimSpace(c.PostForm("title")),
		Intro:          strings.TrimSpace(c.PostForm("intro")),
		Topics:         cleanList(c.PostFormArray("topics[]")),
		AdditionalInfo: cleanList(c.PostFormArray("additional_info[]")),
		Grading:        cleanList(c.PostFormArray("grading[]")),
		Benefits:       cleanList(c.PostFormArray("benefits[]")),
	}
	if tpl.Title == "" || tpl.Intro == "" {
		redirectError(c, "Felder ausfüllen!")
		return
	}

	if err := h.store.PutTemplate(trainingType, tpl); err != nil {
		h.log.Error().Err(err).Str("training_type", string(trainingType)).Msg("Failed to save template")
		redirectError(c, "Speichern fehlgeschlagen!")
		return
	}

	redirectSuccess(c, "Gespeichert!")
}

// SendEmbed persists a composed message and enqueues it for the poller.
func (h *Handler) SendEmbed(c *gin.Context) {
	trainingType := model.TrainingType(c.PostForm("message_type"))
	if !trainingType.Valid() {
		redirectError(c, "Unbekannter Typ!")
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	if title == "" || description == "" {
		redirectError(c, "Felder ausfüllen!")
		return
	}

	channelID, ok := h.resolveChannel(c, trainingType)
	if !ok {
		redirectError(c, "Kein Kanal!")
		return
	}

	msg := model.OutboundMessage{
		ChannelID:   channelID,
		Content:     c.PostForm("content"),
		Title:       title,
		Description: description,
		Color:       parseColor(c.PostForm("color")),
		Type:        trainingType,
		CreatedAt:   time.Now().UTC(),
	}

	id := fmt.Sprintf("msg_%s", uuid.NewString())
	if err := h.store.SaveMessage(id, msg); err != nil {
		h.log.Error().Err(err).Msg("Failed to persist composed message")
		redirectError(c, "Speichern fehlgeschlagen!")
		return
	}
	h.producer.EnqueueMessage(msg)

	redirectSuccess(c, "Wird gesendet...")
}

// CreateEvaluation turns the submitted roster into an evaluation batch.
// Grade and pass state are derived here from the points; a grade field sent
// by the client is ignored.
func (h *Handler) CreateEvaluation(c *gin.Context) {
	trainingType := model.TrainingType(c.PostForm("training_type"))
	if !trainingType.Valid() {
		redirectError(c, "Felder ausfüllen!")
		return
	}

	userIDs := c.PostFormArray("user_id[]")
	points := c.PostFormArray("points[]")
	if len(userIDs) == 0 || len(userIDs) != len(points) {
		redirectError(c, "Felder ausfüllen!")
		return
	}

	entries := make([]model.EvaluationEntry, 0, len(userIDs))
	for i := range userIDs {
		userID := strings.Trim(strings.TrimSpace(userIDs[i]), "<@!>")
		if userID == "" {
			continue
		}
		if _, err := strconv.ParseUint(userID, 10, 64); err != nil {
			continue
		}
		pts, err := strconv.Atoi(strings.TrimSpace(points[i]))
		if err != nil {
			continue
		}
		entries = append(entries, grading.NewEntry(userID, pts, trainingType))
	}

	if len(entries) == 0 {
		redirectError(c, "Keine Teilnehmer!")
		return
	}

	batch := model.EvaluationBatch{
		ID:        uuid.NewString(),
		Type:      trainingType,
		Entries:   entries,
		CreatedAt: time.Now().UTC(),
	}
	h.producer.EnqueueEvaluation(batch)

	redirectSuccess(c, "Wird verarbeitet...")
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) resolveChannel(c *gin.Context, t model.TrainingType) (string, bool) {
	switch c.PostForm("channel_type") {
	case "announcement":
		return h.cfg.AnnouncementChannel(t)
	case "evaluation":
		return h.cfg.EvaluationChannel(t)
	case "custom":
		id := strings.TrimSpace(c.PostForm("custom_channel_id"))
		return id, id != ""
	}
	return "", false
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// parseColor accepts a #rrggbb hex string and falls back to the portal
// default on anything unparseable.
func parseColor(s string) int {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return defaultEmbedColor
	}
	v, err := strconv.ParseInt(s, 16, 32)
	if err != nil || v < 0 || v > 0xFFFFFF {
		return defaultEmbedColor
	}
	return int(v)
}

func redirectSuccess(c *gin.Context, msg string) {
	c.Redirect(http.StatusFound, "/?success="+url.QueryEscape(msg))
}

func redirectError(c *gin.Context, msg string) {
	c.Redirect(http.StatusFound, "/?error="+url.QueryEscape(msg))
}

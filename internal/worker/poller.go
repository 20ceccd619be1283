// Package worker runs the single polling loop that drains the task queue
// and executes each item against Discord.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/config"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/discord"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/logger"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/queue"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/roles"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/store"
	pkgerrors "github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/pkg/errors"
)

// Poller is the sole consumer of the task queue. It claims tasks before any
// irreversible side effect and relies on the per-batch dedup key to keep a
// replayed evaluation from posting twice.
type Poller struct {
	cfg     *config.Config
	queue   queue.Consumer
	store   store.Store
	gateway discord.Gateway
	roleMap roles.Map

	interval time.Duration
	backoff  time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

func NewPoller(cfg *config.Config, q queue.Consumer, st store.Store, gw discord.Gateway) *Poller {
	return &Poller{
		cfg:      cfg,
		queue:    q,
		store:    st,
		gateway:  gw,
		roleMap:  cfg.RoleMap(),
		interval: cfg.Poller.Interval,
		backoff:  cfg.Poller.Backoff,
		now:      time.Now,
		log:      logger.Component("poller"),
	}
}

// Run loops until the context is cancelled. A tick-level failure switches
// the next sleep to the backoff interval, then cadence resumes; no task or
// loop error ever terminates the poller.
func (p *Poller) Run(ctx context.Context) error {
	p.log.Info().
		Dur("interval", p.interval).
		Dur("backoff", p.backoff).
		Msg("Starting evaluation poller")

	sleep := p.interval
	for {
		select {
		case <-ctx.Done():
			p.log.Info().Msg("Poller context cancelled")
			return ctx.Err()
		case <-time.After(sleep):
		}

		if err := p.Tick(ctx); err != nil {
			p.log.Error().Err(err).Msg("Poll tick failed, backing off")
			sleep = p.backoff
		} else {
			sleep = p.interval
		}
	}
}

// Tick claims and processes every pending task once.
func (p *Poller) Tick(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("poll tick panicked: %v", r)
		}
	}()

	for _, task := range p.queue.Claim() {
		p.process(ctx, task)
	}
	return nil
}

// process executes one claimed task. Failures requeue the task under the
// uniform bounded-retry policy; they never propagate.
func (p *Poller) process(ctx context.Context, task model.Task) {
	var err error
	switch task.Kind {
	case model.TaskEvaluation:
		err = p.processEvaluation(ctx, task.Evaluation)
	case model.TaskMessage:
		err = p.processMessage(ctx, task.Message)
	default:
		err = pkgerrors.ErrUnknownTaskKind
	}

	if err != nil {
		p.log.Error().
			Err(err).
			Str("task_id", task.ID).
			Str("kind", string(task.Kind)).
			Msg("Task failed")
		p.queue.Requeue(task)
	}
}

func (p *Poller) processEvaluation(ctx context.Context, batch *model.EvaluationBatch) error {
	if p.store.HasProcessed(batch.ID) {
		// Replay of a batch that already reached the channel; dropping it is
		// the whole point of the dedup key.
		p.log.Warn().Str("batch_id", batch.ID).Msg("Skipping already processed evaluation batch")
		return nil
	}

	channelID, ok := p.cfg.EvaluationChannel(batch.Type)
	if !ok {
		return pkgerrors.ErrUnknownTraining
	}

	p.applyRoleTransitions(ctx, batch)

	msg := discord.EvaluationMessage(*batch, p.now())
	if _, err := p.gateway.SendMessage(ctx, channelID, discord.Payload{Content: msg}); err != nil {
		return fmt.Errorf("failed to post evaluation: %w", err)
	}

	rec := model.EvaluationRecord{
		Type:      batch.Type,
		Entries:   batch.Entries,
		CreatedAt: p.now().UTC(),
	}
	if err := p.store.AppendEvaluation(rec, batch.ID); err != nil {
		// The post already happened; retrying would duplicate it. Keep the
		// task done and surface the persistence failure in the log.
		p.log.Error().Err(err).Str("batch_id", batch.ID).Msg("Failed to persist evaluation history")
	}

	p.log.Info().
		Str("batch_id", batch.ID).
		Str("training_type", string(batch.Type)).
		Int("entries", len(batch.Entries)).
		Msg("Evaluation batch delivered")
	return nil
}

// applyRoleTransitions promotes every passing participant. Each member is
// independent: a missing member or denied permission is logged with its
// reason and the rest of the batch continues.
func (p *Poller) applyRoleTransitions(ctx context.Context, batch *model.EvaluationBatch) {
	change, err := roles.Transition(batch.Type)
	if err != nil {
		p.log.Error().Err(err).Str("training_type", string(batch.Type)).Msg("No role transition for training type")
		return
	}
	remove, add, err := p.roleMap.Resolve(change)
	if err != nil {
		p.log.Error().Err(err).Str("training_type", string(batch.Type)).Msg("Role transition unresolvable")
		return
	}

	for _, entry := range batch.Entries {
		if !entry.Passed {
			continue
		}
		for _, roleID := range remove {
			if err := p.gateway.RemoveRole(ctx, entry.UserID, roleID); err != nil {
				p.log.Warn().Err(err).Str("user_id", entry.UserID).Str("role_id", roleID).Msg("Role removal failed")
			}
		}
		for _, roleID := range add {
			if err := p.gateway.AddRole(ctx, entry.UserID, roleID); err != nil {
				p.log.Warn().Err(err).Str("user_id", entry.UserID).Str("role_id", roleID).Msg("Role assignment failed")
			}
		}
	}
}

// processMessage resolves placeholder tokens against live values at send
// time: role mentions and the clock must reflect the moment of sending, not
// the moment the dashboard enqueued the message.
func (p *Poller) processMessage(ctx context.Context, msg *model.OutboundMessage) error {
	var pendingMention, passedMention string
	if pair, ok := p.roleMap[msg.Type]; ok {
		if pair.Pending != "" {
			pendingMention = p.gateway.RoleMention(pair.Pending)
		}
		if pair.Passed != "" {
			passedMention = p.gateway.RoleMention(pair.Passed)
		}
	}

	now := p.now()
	payload := discord.Payload{
		Content: discord.ResolvePlaceholders(msg.Content, pendingMention, passedMention, now),
		Embed: &discord.Embed{
			Title:       discord.ResolvePlaceholders(msg.Title, pendingMention, passedMention, now),
			Description: discord.ResolvePlaceholders(msg.Description, pendingMention, passedMention, now),
			Color:       msg.Color,
		},
	}

	if _, err := p.gateway.SendMessage(ctx, msg.ChannelID, payload); err != nil {
		return fmt.Errorf("failed to send custom message: %w", err)
	}

	p.log.Info().Str("channel_id", msg.ChannelID).Msg("Custom message delivered")
	return nil
}

package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/config"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/logger"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/store"
)

const (
	cmdAnnounce   = "ausbildung_ankündigen"
	cmdEvaluate   = "auswertung"
	dateLayout    = "02.01.2006 15:04"
	fallbackEmoji = "📝"
)

// Commands owns the slash command surface of the bot.
type Commands struct {
	session *discordgo.Session
	gateway Gateway
	store   store.Store
	cfg     *config.Config
	log     zerolog.Logger
}

func NewCommands(session *discordgo.Session, gateway Gateway, st store.Store, cfg *config.Config) *Commands {
	return &Commands{
		session: session,
		gateway: gateway,
		store:   st,
		cfg:     cfg,
		log:     logger.Component("commands"),
	}
}

// Register creates the guild commands and wires the interaction handler.
func (c *Commands) Register() error {
	trainingChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Theorie", Value: string(model.TrainingTheorie)},
		{Name: "Grund", Value: string(model.TrainingGrund)},
		{Name: "StVO", Value: string(model.TrainingStvo)},
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        cmdAnnounce,
			Description: "Kündige eine Ausbildung an",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "typ",
					Description: "Typ",
					Required:    true,
					Choices:     trainingChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "datum",
					Description: "TT.MM.JJJJ",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "uhrzeit",
					Description: "HH:MM",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "veranstalter",
					Description: "Veranstalter",
					Required:    true,
				},
			},
		},
		{
			Name:        cmdEvaluate,
			Description: "Auswertung über Web-Portal erstellen",
		},
	}

	for _, cmd := range commands {
		if _, err := c.session.ApplicationCommandCreate(c.session.State.User.ID, c.cfg.Discord.GuildID, cmd); err != nil {
			return fmt.Errorf("failed to register command %q: %w", cmd.Name, err)
		}
	}

	c.session.AddHandler(c.handleInteraction)
	c.log.Info().Int("commands", len(commands)).Msg("Slash commands registered")
	return nil
}

func (c *Commands) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case cmdAnnounce:
		c.handleAnnounce(i)
	case cmdEvaluate:
		c.handleEvaluate(i)
	}
}

func hasManageMessages(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionManageMessages != 0
}

func (c *Commands) handleAnnounce(i *discordgo.InteractionCreate) {
	if !hasManageMessages(i) {
		c.respondEphemeral(i, "❌ Keine Berechtigung")
		return
	}

	opts := optionMap(i)
	trainingType := model.TrainingType(opts["typ"].StringValue())
	date := opts["datum"].StringValue()
	clock := opts["uhrzeit"].StringValue()
	host := opts["veranstalter"].UserValue(c.session)

	if !trainingType.Valid() || host == nil {
		c.respondEphemeral(i, "❌ Ungültige Eingabe!")
		return
	}

	sessionTime, err := time.ParseInLocation(dateLayout, date+" "+clock, time.Local)
	if err != nil {
		c.respondEphemeral(i, "❌ Ungültiges Format!")
		return
	}

	tpl, err := c.store.Template(trainingType)
	if err != nil {
		c.respondEphemeral(i, "❌ Kein Template gefunden!")
		return
	}

	tier := c.cfg.Training[trainingType]
	ctx := context.Background()

	embed := AnnouncementEmbed(tpl, sessionTime, host.ID,
		c.gateway.RoleMention(tier.PassedRoleID), tier.BannerURL)

	msgID, err := c.gateway.SendMessage(ctx, tier.AnnouncementChannelID, Payload{
		Content:        c.gateway.RoleMention(tier.PendingRoleID),
		Embed:          embed,
		MentionRoleIDs: []string{tier.PendingRoleID},
	})
	if err != nil {
		c.log.Error().Err(err).Str("training_type", string(trainingType)).Msg("Failed to post announcement")
		c.respondEphemeral(i, "❌ Kanal nicht gefunden!")
		return
	}

	// The reaction is the join affordance; a failed custom emoji falls back
	// to the plain one.
	emoji := emojiAPIName(c.cfg.Discord.ReactionEmoji)
	if err := c.gateway.AddReaction(ctx, tier.AnnouncementChannelID, msgID, emoji); err != nil {
		if err := c.gateway.AddReaction(ctx, tier.AnnouncementChannelID, msgID, fallbackEmoji); err != nil {
			c.log.Warn().Err(err).Msg("Failed to add reaction")
		}
	}

	c.respondEphemeral(i, fmt.Sprintf("✅ Gesendet in <#%s>!", tier.AnnouncementChannelID))

	rec := model.AnnouncementRecord{
		Type:      trainingType,
		Date:      date,
		Time:      clock,
		Timestamp: sessionTime.Unix(),
		HostID:    host.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.store.AppendAnnouncement(rec); err != nil {
		c.log.Error().Err(err).Msg("Failed to persist announcement record")
	}
}

func (c *Commands) handleEvaluate(i *discordgo.InteractionCreate) {
	if !hasManageMessages(i) {
		c.respondEphemeral(i, "❌ Keine Berechtigung")
		return
	}

	err := c.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "📊 Auswertung erstellen",
					Description: "Klicke auf den Button, um zur Auswertungsseite zu gelangen.\n\nDort kannst du alle Teilnehmer hinzufügen und die Auswertung durchführen.",
					Color:       0x5865F2,
					Footer: &discordgo.MessageEmbedFooter{
						Text: "Die Auswertung wird automatisch im richtigen Kanal gesendet",
					},
				},
			},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label: "Zur Auswertung",
							Style: discordgo.LinkButton,
							URL:   c.cfg.Server.BaseURL,
						},
					},
				},
			},
		},
	})
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to respond to evaluation command")
	}
}

func (c *Commands) respondEphemeral(i *discordgo.InteractionCreate, content string) {
	err := c.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to respond to interaction")
	}
}

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

// emojiAPIName converts a message-form custom emoji like <:Dokument:123> to
// the name:id form the reaction endpoint expects. Unicode emoji pass through.
func emojiAPIName(emoji string) string {
	if strings.HasPrefix(emoji, "<") && strings.HasSuffix(emoji, ">") {
		return strings.TrimPrefix(strings.TrimPrefix(strings.TrimSuffix(emoji, ">"), "<a:"), "<:")
	}
	return emoji
}

package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/logger"
	pkgerrors "github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/pkg/errors"
)

// Client implements Gateway on a discordgo session for one guild.
type Client struct {
	session *discordgo.Session
	guildID string
	timeout time.Duration
	log     zerolog.Logger
}

func NewClient(session *discordgo.Session, guildID string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		session: session,
		guildID: guildID,
		timeout: timeout,
		log:     logger.Component("discord"),
	}
}

func (c *Client) SendMessage(ctx context.Context, channelID string, p Payload) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	send := &discordgo.MessageSend{Content: p.Content}
	if p.Embed != nil {
		send.Embeds = []*discordgo.MessageEmbed{toMessageEmbed(p.Embed)}
	}
	if len(p.MentionRoleIDs) > 0 {
		send.AllowedMentions = &discordgo.MessageAllowedMentions{Roles: p.MentionRoleIDs}
	}

	msg, err := c.session.ChannelMessageSendComplex(channelID, send, discordgo.WithContext(ctx))
	if err != nil {
		return "", mapError("send message", err)
	}
	return msg.ID, nil
}

func (c *Client) AddReaction(ctx context.Context, channelID, messageID, emoji string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.session.MessageReactionAdd(channelID, messageID, emoji, discordgo.WithContext(ctx))
	if err != nil {
		return mapError("add reaction", err)
	}
	return nil
}

func (c *Client) Member(ctx context.Context, userID string) (*Member, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	m, err := c.session.GuildMember(c.guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError("fetch member", err)
	}
	return &Member{UserID: userID, RoleIDs: m.Roles}, nil
}

func (c *Client) AddRole(ctx context.Context, userID, roleID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.session.GuildMemberRoleAdd(c.guildID, userID, roleID, discordgo.WithContext(ctx))
	if err != nil {
		return mapError("add role", err)
	}
	return nil
}

func (c *Client) RemoveRole(ctx context.Context, userID, roleID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.session.GuildMemberRoleRemove(c.guildID, userID, roleID, discordgo.WithContext(ctx))
	if err != nil {
		return mapError("remove role", err)
	}
	return nil
}

func (c *Client) RoleMention(roleID string) string {
	return fmt.Sprintf("<@&%s>", roleID)
}

func toMessageEmbed(e *Embed) *discordgo.MessageEmbed {
	out := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		Color:       e.Color,
	}
	for _, f := range e.Fields {
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{
			Name: f.Name, Value: f.Value, Inline: f.Inline,
		})
	}
	if e.ImageURL != "" {
		out.Image = &discordgo.MessageEmbedImage{URL: e.ImageURL}
	}
	if e.FooterText != "" {
		out.Footer = &discordgo.MessageEmbedFooter{Text: e.FooterText}
	}
	return out
}

// mapError translates discordgo failures into reason-coded errors so callers
// can tell a missing target from a permission problem.
func mapError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return pkgerrors.NewDeliveryError(op, pkgerrors.ErrTimeout, err)
	}

	var rest *discordgo.RESTError
	if errors.As(err, &rest) {
		if rest.Message != nil {
			switch rest.Message.Code {
			case discordgo.ErrCodeUnknownChannel:
				return pkgerrors.NewDeliveryError(op, pkgerrors.ErrChannelNotFound, err)
			case discordgo.ErrCodeUnknownMember, discordgo.ErrCodeUnknownUser:
				return pkgerrors.NewDeliveryError(op, pkgerrors.ErrMemberNotFound, err)
			case discordgo.ErrCodeUnknownRole:
				return pkgerrors.NewDeliveryError(op, pkgerrors.ErrRoleNotFound, err)
			case discordgo.ErrCodeMissingPermissions, discordgo.ErrCodeMissingAccess:
				return pkgerrors.NewDeliveryError(op, pkgerrors.ErrPermissionDenied, err)
			}
		}
		if rest.Response != nil && rest.Response.StatusCode == http.StatusForbidden {
			return pkgerrors.NewDeliveryError(op, pkgerrors.ErrPermissionDenied, err)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

// Package discord wraps the bot's Discord session behind a narrow gateway
// interface so the poller and the dashboard can be tested without a live
// connection.
package discord

import "context"

type Embed struct {
	Title       string
	Description string
	Color       int
	ImageURL    string
	Fields      []EmbedField
	FooterText  string
}

type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Payload is one outgoing channel message: plain content, an optional embed,
// or both.
type Payload struct {
	Content        string
	Embed          *Embed
	MentionRoleIDs []string
}

type Member struct {
	UserID  string
	RoleIDs []string
}

// Gateway is the subset of chat-platform operations the rest of the system
// consumes. Every call observes the context deadline.
type Gateway interface {
	SendMessage(ctx context.Context, channelID string, p Payload) (messageID string, err error)
	AddReaction(ctx context.Context, channelID, messageID, emoji string) error
	Member(ctx context.Context, userID string) (*Member, error)
	AddRole(ctx context.Context, userID, roleID string) error
	RemoveRole(ctx context.Context, userID, roleID string) error
	RoleMention(roleID string) string
}

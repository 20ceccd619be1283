package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/config"
	pkgerrors "github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/pkg/errors"
)

// Tier is the dashboard permission level derived from guild roles.
type Tier string

const (
	TierSenior Tier = "ausbilderleitung"
	TierStaff  Tier = "ausbilder"
)

type DiscordUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type guildMember struct {
	Roles []string `json:"roles"`
}

// IdentityClient performs the dashboard's own Discord REST lookups with a
// retrying, bounded-timeout HTTP client.
type IdentityClient struct {
	baseURL  string
	botToken string
	guildID  string
	senior   []string
	staff    []string
	client   *httpclient.Client
}

func NewIdentityClient(cfg *config.Config) *IdentityClient {
	timeout := cfg.Discord.RequestTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	cli := httpclient.NewClient(
		httpclient.WithHTTPTimeout(timeout),
		httpclient.WithRetryCount(2),
		httpclient.WithRetrier(heimdall.NewRetrier(heimdall.NewConstantBackoff(100*time.Millisecond, 500*time.Millisecond))),
	)
	return &IdentityClient{
		baseURL:  cfg.Discord.APIBaseURL,
		botToken: cfg.Discord.Token,
		guildID:  cfg.Discord.GuildID,
		senior:   cfg.Discord.SeniorRoleIDs,
		staff:    cfg.Discord.StaffRoleIDs,
		client:   cli,
	}
}

// UserInfo fetches the authenticated user behind an OAuth access token.
func (c *IdentityClient) UserInfo(accessToken string) (*DiscordUser, error) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.client.Get(c.baseURL+"/users/@me", headers)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request failed with status %d: %w",
			resp.StatusCode, pkgerrors.ErrNotAuthenticated)
	}

	var user DiscordUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &user, nil
}

// MemberRoles fetches the user's role list in the configured guild using the
// bot credential.
func (c *IdentityClient) MemberRoles(userID string) ([]string, error) {
	headers := http.Header{}
	headers.Set("Authorization", "Bot "+c.botToken)

	url := fmt.Sprintf("%s/guilds/%s/members/%s", c.baseURL, c.guildID, userID)
	resp, err := c.client.Get(url, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild member: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, pkgerrors.ErrMemberNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("guild member request failed with status %d", resp.StatusCode)
	}

	var member guildMember
	if err := json.NewDecoder(resp.Body).Decode(&member); err != nil {
		return nil, fmt.Errorf("failed to decode guild member: %w", err)
	}
	return member.Roles, nil
}

// ClassifyTier maps guild roles onto exactly one tier, senior first.
func (c *IdentityClient) ClassifyTier(roleIDs []string) (Tier, error) {
	has := make(map[string]bool, len(roleIDs))
	for _, id := range roleIDs {
		has[id] = true
	}
	for _, id := range c.senior {
		if has[id] {
			return TierSenior, nil
		}
	}
	for _, id := range c.staff {
		if has[id] {
			return TierStaff, nil
		}
	}
	return "", pkgerrors.ErrNotAuthorized
}

package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/config"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/logger"
)

const (
	sessionCookie = "akademie_session"
	stateCookie   = "oauth_state"

	discordAuthURL  = "https://discord.com/api/oauth2/authorize"
	discordTokenURL = "https://discord.com/api/oauth2/token"
)

// Session is the signed cookie payload identifying a logged-in staff member.
type Session struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Tier     Tier   `json:"tier"`
	jwt.RegisteredClaims
}

type Auth struct {
	cfg      *config.Config
	oauth    *oauth2.Config
	identity *IdentityClient
	log      zerolog.Logger
}

func NewAuth(cfg *config.Config, identity *IdentityClient) *Auth {
	return &Auth{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.Discord.ClientID,
			ClientSecret: cfg.Discord.ClientSecret,
			RedirectURL:  cfg.Discord.RedirectURI,
			Scopes:       []string{"identify", "guilds"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  discordAuthURL,
				TokenURL: discordTokenURL,
			},
		},
		identity: identity,
		log:      logger.Component("auth"),
	}
}

// Login starts the authorization-code flow with a one-shot state cookie.
func (a *Auth) Login(c *gin.Context) {
	state := uuid.NewString()
	c.SetCookie(stateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, a.oauth.AuthCodeURL(state))
}

// Callback finishes the flow: exchange the code, identify the user, classify
// their guild roles into a tier, and set the session cookie. Every failure
// redirects with an error indicator; no stack traces reach the browser.
func (a *Auth) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		c.Redirect(http.StatusFound, "/?error=bad_state")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/?error=no_code")
		return
	}

	token, err := a.oauth.Exchange(c.Request.Context(), code)
	if err != nil {
		a.log.Error().Err(err).Msg("OAuth code exchange failed")
		c.Redirect(http.StatusFound, "/?error=token_failed")
		return
	}

	user, err := a.identity.UserInfo(token.AccessToken)
	if err != nil {
		a.log.Error().Err(err).Msg("Failed to fetch user info")
		c.Redirect(http.StatusFound, "/?error=user_failed")
		return
	}

	roleIDs, err := a.identity.MemberRoles(user.ID)
	if err != nil {
		a.log.Warn().Err(err).Str("user_id", user.ID).Msg("Failed to fetch guild member")
		c.Redirect(http.StatusFound, "/?error=no_permission")
		return
	}

	tier, err := a.identity.ClassifyTier(roleIDs)
	if err != nil {
		a.log.Warn().Str("user_id", user.ID).Msg("Login rejected, no staff role")
		c.Redirect(http.StatusFound, "/?error=no_permission")
		return
	}

	if err := a.setSession(c, user, tier); err != nil {
		a.log.Error().Err(err).Msg("Failed to sign session")
		c.Redirect(http.StatusFound, "/?error=session_failed")
		return
	}

	a.log.Info().Str("user_id", user.ID).Str("tier", string(tier)).Msg("Login successful")
	c.Redirect(http.StatusFound, "/?success=Angemeldet!")
}

func (a *Auth) Logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (a *Auth) setSession(c *gin.Context, user *DiscordUser, tier Tier) error {
	now := time.Now()
	claims := Session{
		UserID:   user.ID,
		Username: user.Username,
		Avatar:   user.Avatar,
		Tier:     tier,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.cfg.Session.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "akademie-portal",
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(a.cfg.Session.Secret))
	if err != nil {
		return err
	}

	c.SetCookie(sessionCookie, signed, int(a.cfg.Session.TTL.Seconds()), "/", "", false, true)
	return nil
}

func (a *Auth) parseSession(c *gin.Context) *Session {
	raw, err := c.Cookie(sessionCookie)
	if err != nil || raw == "" {
		return nil
	}

	tok, err := jwt.ParseWithClaims(raw, &Session{}, func(*jwt.Token) (any, error) {
		return []byte(a.cfg.Session.Secret), nil
	})
	if err != nil || !tok.Valid {
		return nil
	}

	sess, ok := tok.Claims.(*Session)
	if !ok {
		return nil
	}
	return sess
}

// LoadSession attaches the session to the context when a valid cookie is
// present; anonymous requests pass through for the login page.
func (a *Auth) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := a.parseSession(c); sess != nil {
			c.Set("session", sess)
		}
		c.Next()
	}
}

// RequireSession bounces anonymous requests to the login page.
func (a *Auth) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionFrom(c) == nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSenior rejects staff below the senior tier with an error redirect.
func (a *Auth) RequireSenior() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFrom(c)
		if sess == nil || sess.Tier != TierSenior {
			c.Redirect(http.StatusFound, "/?error=no_permission")
			c.Abort()
			return
		}
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *Session {
	v, ok := c.Get("session")
	if !ok {
		return nil
	}
	sess, _ := v.(*Session)
	return sess
}

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/pkg/errors"
)

func newAuth(t *testing.T) *Auth {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := webConfig()
	return NewAuth(cfg, NewIdentityClient(cfg))
}

func getWithCookie(router *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSetsStateAndRedirects(t *testing.T) {
	auth := newAuth(t)
	router := gin.New()
	router.GET("/login", auth.Login)

	w := getWithCookie(router, "/login", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	loc := w.Header().Get("Location")
	assert.Contains(t, loc, discordAuthURL)
	assert.Contains(t, loc, "client_id=client-1")
	assert.Contains(t, loc, "state=")

	var state string
	for _, c := range w.Result().Cookies() {
		if c.Name == stateCookie {
			state = c.Value
		}
	}
	require.NotEmpty(t, state)
	assert.Contains(t, loc, "state="+state)
}

func TestCallbackRejectsMismatchedState(t *testing.T) {
	auth := newAuth(t)
	router := gin.New()
	router.GET("/callback", auth.Callback)

	w := getWithCookie(router, "/callback?state=bogus&code=abc",
		&http.Cookie{Name: stateCookie, Value: "expected"})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/?error=bad_state", w.Header().Get("Location"))
}

func TestCallbackRejectsMissingCode(t *testing.T) {
	auth := newAuth(t)
	router := gin.New()
	router.GET("/callback", auth.Callback)

	w := getWithCookie(router, "/callback?state=s1",
		&http.Cookie{Name: stateCookie, Value: "s1"})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/?error=no_code", w.Header().Get("Location"))
}

func TestSessionRoundTrip(t *testing.T) {
	cfg := webConfig()
	auth := newAuth(t)

	router := gin.New()
	router.Use(auth.LoadSession())
	router.GET("/whoami", func(c *gin.Context) {
		sess := sessionFrom(c)
		if sess == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, "%s:%s", sess.Username, sess.Tier)
	})

	w := getWithCookie(router, "/whoami", sessionCookieFor(t, cfg, TierStaff))
	assert.Equal(t, "tester:ausbilder", w.Body.String())

	w = getWithCookie(router, "/whoami", nil)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestSessionRejectsTampering(t *testing.T) {
	cfg := webConfig()
	auth := newAuth(t)

	router := gin.New()
	router.Use(auth.LoadSession())
	router.GET("/whoami", func(c *gin.Context) {
		if sessionFrom(c) == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, "authenticated")
	})

	// Signed with the wrong secret.
	claims := Session{
		UserID: "555",
		Tier:   TierSenior,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	w := getWithCookie(router, "/whoami", &http.Cookie{Name: sessionCookie, Value: forged})
	assert.Equal(t, "anonymous", w.Body.String())

	// Expired but correctly signed.
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Session.Secret))
	require.NoError(t, err)

	w = getWithCookie(router, "/whoami", &http.Cookie{Name: sessionCookie, Value: expired})
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestLogoutClearsSession(t *testing.T) {
	auth := newAuth(t)
	router := gin.New()
	router.GET("/logout", auth.Logout)

	w := getWithCookie(router, "/logout", sessionCookieFor(t, webConfig(), TierSenior))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestClassifyTier(t *testing.T) {
	client := NewIdentityClient(webConfig())

	tier, err := client.ClassifyTier([]string{"100", "300"})
	require.NoError(t, err)
	assert.Equal(t, TierSenior, tier)

	tier, err = client.ClassifyTier([]string{"101"})
	require.NoError(t, err)
	assert.Equal(t, TierStaff, tier)

	// Holding both resolves to the higher tier.
	tier, err = client.ClassifyTier([]string{"101", "100"})
	require.NoError(t, err)
	assert.Equal(t, TierSenior, tier)

	_, err = client.ClassifyTier([]string{"300"})
	assert.ErrorIs(t, err, pkgerrors.ErrNotAuthorized)

	_, err = client.ClassifyTier(nil)
	assert.ErrorIs(t, err, pkgerrors.ErrNotAuthorized)
}

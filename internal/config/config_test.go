package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"
)

const validYAML = `
app:
  name: akademie-bot
  env: test
server:
  port: 5000
  base_url: http://localhost:5000
discord:
  token: test-token
  guild_id: "1461"
  client_id: "123"
  client_secret: shh
  redirect_uri: http://localhost:5000/callback
  senior_role_ids: ["1", "2"]
  staff_role_ids: ["3"]
training:
  theorie:
    pending_role_id: "10"
    passed_role_id: "11"
    announcement_channel_id: "20"
    evaluation_channel_id: "21"
  grund:
    pending_role_id: "12"
    passed_role_id: "13"
    announcement_channel_id: "22"
    evaluation_channel_id: "23"
  stvo:
    pending_role_id: "14"
    passed_role_id: "15"
    announcement_channel_id: "24"
    evaluation_channel_id: "25"
session:
  secret: top-secret
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromPathValid(t *testing.T) {
	cfg, err := LoadFromPath(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "test-token", cfg.Discord.Token)
	assert.Equal(t, []string{"1", "2"}, cfg.Discord.SeniorRoleIDs)

	// Defaults fill in everything the file omits.
	assert.Equal(t, 5*time.Second, cfg.Poller.Interval)
	assert.Equal(t, 10*time.Second, cfg.Poller.Backoff)
	assert.Equal(t, 3, cfg.Poller.MaxAttempts)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "https://discord.com/api/v10", cfg.Discord.APIBaseURL)
	assert.Equal(t, "📝", cfg.Discord.ReactionEmoji)
	assert.Equal(t, "bot_data.json", cfg.Storage.Path)
}

func TestLoadMissingTrainingTier(t *testing.T) {
	incomplete := `
server:
  port: 5000
  base_url: http://localhost:5000
discord:
  token: t
  guild_id: "1"
  client_id: "1"
  client_secret: s
  redirect_uri: http://localhost:5000/callback
  senior_role_ids: ["1"]
  staff_role_ids: ["2"]
training:
  theorie:
    pending_role_id: "10"
    passed_role_id: "11"
    announcement_channel_id: "20"
    evaluation_channel_id: "21"
session:
  secret: s
`
	_, err := LoadFromPath(writeConfig(t, incomplete))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing training tier")
}

func TestLoadMissingToken(t *testing.T) {
	noToken := `
server:
  port: 5000
  base_url: http://localhost:5000
discord:
  guild_id: "1"
  client_id: "1"
  client_secret: s
  redirect_uri: http://localhost:5000/callback
  senior_role_ids: ["1"]
  staff_role_ids: ["2"]
session:
  secret: s
`
	_, err := LoadFromPath(writeConfig(t, noToken))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestEnvOverridesToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "from-env")
	cfg, err := LoadFromPath(writeConfig(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Discord.Token)
}

func TestRoleMapAndChannels(t *testing.T) {
	cfg, err := LoadFromPath(writeConfig(t, validYAML))
	require.NoError(t, err)

	m := cfg.RoleMap()
	assert.Equal(t, "12", m[model.TrainingGrund].Pending)
	assert.Equal(t, "13", m[model.TrainingGrund].Passed)

	ch, ok := cfg.EvaluationChannel(model.TrainingStvo)
	require.True(t, ok)
	assert.Equal(t, "25", ch)

	ch, ok = cfg.AnnouncementChannel(model.TrainingTheorie)
	require.True(t, ok)
	assert.Equal(t, "20", ch)

	_, ok = cfg.EvaluationChannel(model.TrainingType("nope"))
	assert.False(t, ok)
}

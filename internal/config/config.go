package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/roles"
)

type Config struct {
	App      AppConfig                         `yaml:"app"`
	Server   ServerConfig                      `yaml:"server"`
	Discord  DiscordConfig                     `yaml:"discord"`
	Training map[model.TrainingType]TierConfig `yaml:"training" validate:"required"`
	Storage  StorageConfig                     `yaml:"storage"`
	Poller   PollerConfig                      `yaml:"poller"`
	Session  SessionConfig                     `yaml:"session"`
	Logging  LoggingConfig                     `yaml:"logging"`
}

type AppConfig struct {
	Name string `yaml:"name"`
	Env  string `yaml:"env"`
}

type ServerConfig struct {
	Port            int           `yaml:"port" validate:"required,min=1,max=65535"`
	BaseURL         string        `yaml:"base_url" validate:"required,url"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DiscordConfig struct {
	Token          string        `yaml:"token" validate:"required"`
	GuildID        string        `yaml:"guild_id" validate:"required"`
	ClientID       string        `yaml:"client_id" validate:"required"`
	ClientSecret   string        `yaml:"client_secret" validate:"required"`
	RedirectURI    string        `yaml:"redirect_uri" validate:"required,url"`
	APIBaseURL     string        `yaml:"api_base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	SeniorRoleIDs  []string      `yaml:"senior_role_ids" validate:"required,min=1"`
	StaffRoleIDs   []string      `yaml:"staff_role_ids" validate:"required,min=1"`
	ReactionEmoji  string        `yaml:"reaction_emoji"`
}

// TierConfig wires one training tier to its Discord roles and channels.
type TierConfig struct {
	PendingRoleID         string `yaml:"pending_role_id" validate:"required"`
	PassedRoleID          string `yaml:"passed_role_id" validate:"required"`
	AnnouncementChannelID string `yaml:"announcement_channel_id" validate:"required"`
	EvaluationChannelID   string `yaml:"evaluation_channel_id" validate:"required"`
	BannerURL             string `yaml:"banner_url"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type PollerConfig struct {
	Interval    time.Duration `yaml:"interval"`
	Backoff     time.Duration `yaml:"backoff"`
	MaxAttempts int           `yaml:"max_attempts"`
}

type SessionConfig struct {
	Secret string        `yaml:"secret" validate:"required"`
	TTL    time.Duration `yaml:"ttl"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var validate = validator.New()

func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	return LoadFromPath(configPath)
}

func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Secrets may be supplied through the environment instead of the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		c.Discord.Token = v
	}
	if v := os.Getenv("DISCORD_CLIENT_SECRET"); v != "" {
		c.Discord.ClientSecret = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		c.Session.Secret = v
	}
}

func (c *Config) applyDefaults() {
	if c.Discord.APIBaseURL == "" {
		c.Discord.APIBaseURL = "https://discord.com/api/v10"
	}
	if c.Discord.RequestTimeout == 0 {
		c.Discord.RequestTimeout = 10 * time.Second
	}
	if c.Discord.ReactionEmoji == "" {
		c.Discord.ReactionEmoji = "📝"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "bot_data.json"
	}
	if c.Poller.Interval == 0 {
		c.Poller.Interval = 5 * time.Second
	}
	if c.Poller.Backoff == 0 {
		c.Poller.Backoff = 10 * time.Second
	}
	if c.Poller.MaxAttempts == 0 {
		c.Poller.MaxAttempts = 3
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = 24 * time.Hour
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for _, t := range model.TrainingTypes {
		if _, ok := cfg.Training[t]; !ok {
			return fmt.Errorf("config validation failed: missing training tier %q", t)
		}
	}

	return nil
}

// RoleMap builds the role-transition lookup from the tier wiring.
func (c *Config) RoleMap() roles.Map {
	m := make(roles.Map, len(c.Training))
	for t, tier := range c.Training {
		m[t] = roles.Pair{Pending: tier.PendingRoleID, Passed: tier.PassedRoleID}
	}
	return m
}

// EvaluationChannel returns the channel evaluation results are posted to.
func (c *Config) EvaluationChannel(t model.TrainingType) (string, bool) {
	tier, ok := c.Training[t]
	if !ok {
		return "", false
	}
	return tier.EvaluationChannelID, true
}

// AnnouncementChannel returns the channel training announcements go to.
func (c *Config) AnnouncementChannel(t model.TrainingType) (string, bool) {
	tier, ok := c.Training[t]
	if !ok {
		return "", false
	}
	return tier.AnnouncementChannelID, true
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

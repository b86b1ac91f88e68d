package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
)

const (
	StorageS3    = "s3"
	StorageLocal = "local"

	NotifySlack    = "slack"
	NotifyTelegram = "telegram"
	NotifyNone     = "none"

	LedgerDynamoDB = "dynamodb"
	LedgerPostgres = "postgres"
)

type Config struct {
	App struct {
		Env        string `env:"APP_ENV" env-default:"development"`
		Port       int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl  string `env:"SENTRY_URL"`
		Schedule   string `env:"APP_SCHEDULE" env-description:"cron spec; empty runs once and exits"`
		Timezone   string `env:"APP_TIMEZONE" env-default:"UTC"`
		Event      string `env:"APP_EVENT" env-description:"trigger payload, e.g. {\"is_local\":true}"`
		AutoUnlike bool   `env:"APP_AUTO_UNLIKE" env-default:"false"`
	}
	Tumblr struct {
		ConsumerKey    string `env:"TUMBLR_CONSUMER_KEY"`
		ConsumerSecret string `env:"TUMBLR_CONSUMER_SECRET"`
		Token          string `env:"TUMBLR_TOKEN"`
		TokenSecret    string `env:"TUMBLR_TOKEN_SECRET"`
		PostsLimit     int    `env:"TUMBLR_POSTS_LIMIT" env-default:"20"`
		BaseURL        string `env:"TUMBLR_API_URL" env-default:"https://api.tumblr.com"`
	}
	Notify struct {
		Backend string `env:"NOTIFY_BACKEND" env-default:"slack"`
	}
	Slack struct {
		WebhookURL string `env:"SLACK_WEBHOOK_URL"`
		IconURL    string `env:"SLACK_ICON_URL"`
		Username   string `env:"SLACK_USERNAME"`
		Channel    string `env:"SLACK_CHANNEL"`
	}
	Telegram struct {
		Token   string `env:"TELEGRAM_TOKEN"`
		Channel string `env:"TELEGRAM_CHANNEL"`
	}
	Storage struct {
		Backend   string `env:"STORAGE_BACKEND" env-default:"s3"`
		LocalPath string `env:"STORAGE_LOCAL_PATH" env-default:"images/"`
	}
	AWS struct {
		AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
		SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
		Region          string `env:"AWS_REGION"`
		Bucket          string `env:"AWS_S3_BUCKET"`
		S3Endpoint      string `env:"AWS_S3_ENDPOINT"`
		S3UsePathStyle  bool   `env:"AWS_S3_USE_PATH_STYLE" env-default:"false"`
	}
	Ledger struct {
		Backend  string `env:"LEDGER_BACKEND" env-default:"dynamodb"`
		Table    string `env:"LEDGER_TABLE" env-default:"twtr_fav"`
		TargetID string `env:"LEDGER_TARGET_ID" env-default:"tumblr"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
}

// New reads and validates the configuration.
func New() (*Config, error) {
	cfg, err := Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		help, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}

	return cfg, nil
}

// Load reads the configuration from the environment, layering .env on top
// when present. Nothing is validated.
func Load() (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(".env"); err == nil {
		return cfg, cleanenv.ReadConfig(".env", cfg)
	}
	return cfg, cleanenv.ReadEnv(cfg)
}

// Validate checks the variables required by the selected backends.
func (c *Config) Validate() error {
	var missing []string
	require := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}

	require("TUMBLR_CONSUMER_KEY", c.Tumblr.ConsumerKey)
	require("TUMBLR_CONSUMER_SECRET", c.Tumblr.ConsumerSecret)
	require("TUMBLR_TOKEN", c.Tumblr.Token)
	require("TUMBLR_TOKEN_SECRET", c.Tumblr.TokenSecret)

	switch c.Notify.Backend {
	case NotifySlack:
		require("SLACK_WEBHOOK_URL", c.Slack.WebhookURL)
		require("SLACK_ICON_URL", c.Slack.IconURL)
		require("SLACK_USERNAME", c.Slack.Username)
		require("SLACK_CHANNEL", c.Slack.Channel)
	case NotifyTelegram:
		require("TELEGRAM_TOKEN", c.Telegram.Token)
		require("TELEGRAM_CHANNEL", c.Telegram.Channel)
	case NotifyNone:
	default:
		return errors.Wrap(errors.ErrInvalidInput, "unknown NOTIFY_BACKEND "+c.Notify.Backend)
	}

	switch c.Storage.Backend {
	case StorageS3:
		c.requireAWS(require)
		require("AWS_S3_BUCKET", c.AWS.Bucket)
	case StorageLocal:
		require("STORAGE_LOCAL_PATH", c.Storage.LocalPath)
	default:
		return errors.Wrap(errors.ErrInvalidInput, "unknown STORAGE_BACKEND "+c.Storage.Backend)
	}

	switch c.Ledger.Backend {
	case LedgerDynamoDB:
		c.requireAWS(require)
	case LedgerPostgres:
		require("POSTGRES_HOST", c.Postgres.Host)
		require("POSTGRES_USER", c.Postgres.User)
		require("POSTGRES_NAME", c.Postgres.Name)
	default:
		return errors.Wrap(errors.ErrInvalidInput, "unknown LEDGER_BACKEND "+c.Ledger.Backend)
	}

	if c.Tumblr.PostsLimit <= 0 {
		c.Tumblr.PostsLimit = 20
	}

	if len(missing) > 0 {
		return errors.Wrap(errors.ErrInvalidInput, fmt.Sprintf("missing required variables %v", dedupe(missing)))
	}
	return nil
}

func (c *Config) requireAWS(require func(name, value string)) {
	require("AWS_ACCESS_KEY_ID", c.AWS.AccessKeyID)
	require("AWS_SECRET_ACCESS_KEY", c.AWS.SecretAccessKey)
	require("AWS_REGION", c.AWS.Region)
}

// GetDSN returns the Postgres connection string used by pgx and goose.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

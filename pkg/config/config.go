package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	TokenCheckPrompt   = "prompt"
	TokenCheckContinue = "continue"
	TokenCheckAbort    = "abort"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"production"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Facebook struct {
		Token             string        `env:"FACEBOOK_TOKEN" env-description:"Page access token"`
		PageID            string        `env:"FACEBOOK_PAGE_ID" env-description:"Facebook page identifier"`
		APIVersion        string        `env:"FACEBOOK_API_VERSION" env-default:"v22.0"`
		BaseURL           string        `env:"FACEBOOK_BASE_URL" env-default:"https://graph.facebook.com"`
		Timeout           time.Duration `env:"FACEBOOK_TIMEOUT" env-default:"30s"`
		RequestsPerSecond float64       `env:"FACEBOOK_RPS" env-default:"5"`
	}
	Importer struct {
		OutputDir    string `env:"IMPORTER_OUTPUT_DIR" env-default:"FB_MD"`
		PostDir      string `env:"IMPORTER_POST_DIR" env-default:"_c-sk-facebook"`
		Count        int    `env:"IMPORTER_COUNT"`
		Debug        bool   `env:"IMPORTER_DEBUG"`
		TokenCheck   string `env:"IMPORTER_TOKEN_CHECK" env-default:"prompt" env-description:"prompt, continue or abort"`
		DefaultCover string `env:"IMPORTER_DEFAULT_COVER" env-default:"/assets/images/bejegyzes-alap.jpg"`
		Layout       string `env:"IMPORTER_LAYOUT" env-default:"fb-post"`
		Category     string `env:"IMPORTER_CATEGORY" env-default:"facebook"`
		FileSuffix   string `env:"IMPORTER_FILE_SUFFIX" env-default:"prispevok"`
		FileExt      string `env:"IMPORTER_FILE_EXT" env-default:"md"`
		Languages    string `env:"IMPORTER_LANGUAGES" env-default:"sk,hu"`
		Timezone     string `env:"IMPORTER_TIMEZONE"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Telegram struct {
		User  int64  `env:"TELEGRAM_USER"`
		Token string `env:"TELEGRAM_TOKEN"`
	}
}

// New reads the configuration from a .env file when one exists and from the
// process environment otherwise.
func New() (*Config, error) {
	cfg := &Config{}

	var err error
	if _, statErr := os.Stat(".env"); statErr == nil {
		err = cleanenv.ReadConfig(".env", cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		help, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}

	return cfg, nil
}

// Validate checks the settings required for an import run.
func (c *Config) Validate() error {
	if c.Facebook.Token == "" {
		return fmt.Errorf("facebook token is required")
	}
	if c.Facebook.PageID == "" {
		return fmt.Errorf("facebook page id is required")
	}
	if c.Importer.Count <= 0 {
		return fmt.Errorf("post count must be positive, got %d", c.Importer.Count)
	}
	switch c.Importer.TokenCheck {
	case TokenCheckPrompt, TokenCheckContinue, TokenCheckAbort:
	default:
		return fmt.Errorf("unknown token check policy %q", c.Importer.TokenCheck)
	}
	return nil
}

func (c *Config) LedgerEnabled() bool {
	return c.Postgres.Host != ""
}

func (c *Config) NotifierEnabled() bool {
	return c.Telegram.Token != "" && c.Telegram.User != 0
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode,
	)
}

// LanguageTags splits the comma separated language list.
func (c *Config) LanguageTags() []string {
	var tags []string
	for _, l := range strings.Split(c.Importer.Languages, ",") {
		if l = strings.TrimSpace(l); l != "" {
			tags = append(tags, l)
		}
	}
	return tags
}

// PostDirPath is the directory the generated documents are written to.
func (c *Config) PostDirPath() string {
	if c.Importer.PostDir == "" {
		return c.Importer.OutputDir
	}
	return filepath.Join(c.Importer.OutputDir, c.Importer.PostDir)
}

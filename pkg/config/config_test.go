package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Facebook.Token = "token"
	cfg.Facebook.PageID = "265760324323651"
	cfg.Importer.Count = 5
	cfg.Importer.TokenCheck = TokenCheckPrompt
	return cfg
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.Facebook.Token = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Facebook.PageID = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Importer.Count = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Importer.TokenCheck = "maybe"
	assert.Error(t, cfg.Validate())
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("FACEBOOK_TOKEN", "abc")
	t.Setenv("FACEBOOK_PAGE_ID", "42")
	t.Setenv("IMPORTER_COUNT", "3")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.Facebook.Token)
	assert.Equal(t, "42", cfg.Facebook.PageID)
	assert.Equal(t, 3, cfg.Importer.Count)
	assert.Equal(t, "v22.0", cfg.Facebook.APIVersion)
	assert.Equal(t, "FB_MD", cfg.Importer.OutputDir)
	assert.Equal(t, TokenCheckPrompt, cfg.Importer.TokenCheck)
	assert.False(t, cfg.LedgerEnabled())
	assert.False(t, cfg.NotifierEnabled())
}

func TestLanguageTags(t *testing.T) {
	cfg := validConfig()
	cfg.Importer.Languages = " sk, hu ,,"
	assert.Equal(t, []string{"sk", "hu"}, cfg.LanguageTags())
}

func TestPostDirPath(t *testing.T) {
	cfg := validConfig()
	cfg.Importer.OutputDir = "out"
	cfg.Importer.PostDir = "_posts"
	assert.Equal(t, filepath.Join("out", "_posts"), cfg.PostDirPath())

	cfg.Importer.PostDir = ""
	assert.Equal(t, "out", cfg.PostDirPath())
}

func TestIsDevelopment(t *testing.T) {
	cfg := validConfig()
	assert.False(t, cfg.IsDevelopment())

	cfg.App.Env = "development"
	assert.True(t, cfg.IsDevelopment())
}

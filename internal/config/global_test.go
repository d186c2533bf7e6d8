package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadFromEnvironment(t *testing.T) {
	resetViper(t)
	t.Setenv("DISCORD_BOT_TOKEN", "tok-123")
	t.Setenv("DISCORD_GUILD_ID", "900100")
	t.Setenv("DEVELOPMENT", "true")

	cfg, err := Load("", false)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", cfg.Discord.Token)
	assert.Equal(t, "900100", cfg.Discord.GuildID)
	assert.True(t, cfg.Development)
}

func TestLoadFromEnvFile(t *testing.T) {
	resetViper(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"DISCORD_BOT_TOKEN=file-tok\n"+
			"DISCORD_GUILD_ID=900200\n"+
			"TELEGRAM_BOT_TOKEN=tg-tok\n"+
			"TELEGRAM_CHAT_ID=-100123\n",
	), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "file-tok", cfg.Discord.Token)
	assert.Equal(t, "tg-tok", cfg.Telegram.Token)
	assert.Equal(t, "-100123", cfg.Telegram.ChatID)
}

func TestLoadMissingEnvFileIsNotFatal(t *testing.T) {
	resetViper(t)
	t.Setenv("DISCORD_BOT_TOKEN", "tok")
	t.Setenv("DISCORD_GUILD_ID", "1")

	_, err := Load(filepath.Join(t.TempDir(), "absent.env"), false)
	require.NoError(t, err)
}

func TestLoadEnumeratesMissingKeys(t *testing.T) {
	resetViper(t)
	for _, key := range []string{"DISCORD_BOT_TOKEN", "DISCORD_GUILD_ID", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID"} {
		t.Setenv(key, "")
	}

	_, err := Load("", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_BOT_TOKEN")
	assert.Contains(t, err.Error(), "DISCORD_GUILD_ID")
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
	assert.Contains(t, err.Error(), "TELEGRAM_CHAT_ID")
}

func TestLoadTelegramOptionalForProvisioning(t *testing.T) {
	resetViper(t)
	t.Setenv("DISCORD_BOT_TOKEN", "tok")
	t.Setenv("DISCORD_GUILD_ID", "1")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	cfg, err := Load("", false)
	require.NoError(t, err)
	assert.Empty(t, cfg.Telegram.Token)
}

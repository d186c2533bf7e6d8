package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"rill-community/internal/utils/runtime"
)

const (
	discordTokenKey   = "discord_bot_token"
	discordGuildKey   = "discord_guild_id"
	telegramTokenKey  = "telegram_bot_token"
	telegramChatIDKey = "telegram_chat_id"
	developmentKey    = "development"
)

type Config struct {
	Discord  DiscordConfig
	Telegram TelegramConfig

	Development bool
}

type DiscordConfig struct {
	Token   string
	GuildID string
}

type TelegramConfig struct {
	Token  string
	ChatID string
}

// Load reads credentials from the given .env file (if it exists) and the
// process environment. Environment variables take precedence. Telegram
// credentials are only required by the bridge, so they are validated on demand.
func Load(envPath string, requireTelegram bool) (Config, error) {
	viper.SetDefault(developmentKey, false)

	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			viper.SetConfigFile(envPath)
			viper.SetConfigType("env")
			if err := viper.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("failed to read %s: %w", envPath, err)
			}
		}
	}

	runtime.Must(viper.BindEnv(discordTokenKey))
	runtime.Must(viper.BindEnv(discordGuildKey))
	runtime.Must(viper.BindEnv(telegramTokenKey))
	runtime.Must(viper.BindEnv(telegramChatIDKey))
	runtime.Must(viper.BindEnv(developmentKey))

	cfg := Config{
		Discord: DiscordConfig{
			Token:   viper.GetString(discordTokenKey),
			GuildID: viper.GetString(discordGuildKey),
		},
		Telegram: TelegramConfig{
			Token:  viper.GetString(telegramTokenKey),
			ChatID: viper.GetString(telegramChatIDKey),
		},
		Development: viper.GetBool(developmentKey),
	}

	required := map[string]string{
		strings.ToUpper(discordTokenKey): cfg.Discord.Token,
		strings.ToUpper(discordGuildKey): cfg.Discord.GuildID,
	}
	if requireTelegram {
		required[strings.ToUpper(telegramTokenKey)] = cfg.Telegram.Token
		required[strings.ToUpper(telegramChatIDKey)] = cfg.Telegram.ChatID
	}

	var missing []string
	for key, value := range required {
		if value == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Config{}, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

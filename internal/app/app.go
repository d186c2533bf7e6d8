// Package app wires configuration, the Discord client, and the components
// behind each command.
package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"rill-community/internal/bridge"
	"rill-community/internal/catalog"
	"rill-community/internal/config"
	"rill-community/internal/discord"
	"rill-community/internal/provision"
)

// Setup runs the full reconciliation against the configured guild.
func Setup(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger, dryRun bool) error {
	client := newDiscordClient(cfg, logger, dryRun)
	engine := provision.New(client, logger, cfg.Discord.GuildID, catalog.Default(), dryRun)
	return engine.Run(ctx)
}

// AddFeeds provisions the bot feed channels into an already-built server.
func AddFeeds(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger, dryRun bool) error {
	client := newDiscordClient(cfg, logger, dryRun)
	engine := provision.New(client, logger, cfg.Discord.GuildID, catalog.Default(), dryRun)
	return engine.AddFeeds(ctx)
}

type BridgeOptions struct {
	Once      bool
	Interval  time.Duration
	StatePath string
	DryRun    bool
}

// RunBridge starts the Discord to Telegram relay. The Discord side only ever
// reads, so it always uses a live client; dry run swaps the Telegram sender
// for one that logs.
func RunBridge(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger, opts BridgeOptions) error {
	client := discord.NewClient(logger, cfg.Discord.Token)

	var sender bridge.Sender
	if opts.DryRun {
		sender = bridge.NewLoggingSender(logger)
	} else {
		sender = bridge.NewTelegramSender(logger, cfg.Telegram.Token, cfg.Telegram.ChatID)
	}

	b, err := bridge.New(client, sender, logger, cfg.Discord.GuildID, opts.StatePath, opts.DryRun)
	if err != nil {
		return err
	}
	return b.Run(ctx, opts.Interval, opts.Once)
}

// DiscoverChatID lists the chats currently messaging the Telegram bot so the
// operator can pick a TELEGRAM_CHAT_ID. Only the bot token is needed; the
// chat id is exactly what is being looked up.
func DiscoverChatID(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) error {
	if cfg.Telegram.Token == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is required to discover chat ids")
	}
	chats, err := bridge.DiscoverChats(ctx, cfg.Telegram.Token)
	if err != nil {
		return err
	}
	if len(chats) == 0 {
		logger.Infow("no updates found, send a message in the target chat and retry")
		return nil
	}
	for _, chat := range chats {
		logger.Infow("found chat", "id", chat.ID, "type", chat.Type, "title", chat.Title)
	}
	return nil
}

func newDiscordClient(cfg config.Config, logger *zap.SugaredLogger, dryRun bool) discord.Client {
	if dryRun {
		logger.Infow("dry run, no Discord state will change")
		return discord.NewSimulatedClient(logger)
	}
	return discord.NewClient(logger, cfg.Discord.Token)
}

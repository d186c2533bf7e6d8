package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rill-community/internal/app"
	"rill-community/internal/config"
)

var (
	dryRun  bool
	envFile string
)

func main() {
	root := &cobra.Command{
		Use:           "rill-community",
		Short:         "Provisions and operates the RillCoin Discord community",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "log intended changes without touching Discord or Telegram")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to the credentials file")

	root.AddCommand(setupCommand(), addFeedsCommand(), bridgeCommand())

	if err := root.ExecuteContext(signalContext()); err != nil {
		log.Fatal(err)
	}
}

func setupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Reset the guild and build the full server structure",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := load(false)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return app.Setup(cmd.Context(), cfg, logger, dryRun)
		},
	}
}

func addFeedsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-feeds",
		Short: "Add the bot feed channels to an existing server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := load(false)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return app.AddFeeds(cmd.Context(), cfg, logger, dryRun)
		},
	}
}

func bridgeCommand() *cobra.Command {
	var (
		once      bool
		interval  time.Duration
		statePath string
		getChatID bool
	)
	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Relay announcement channels to Telegram",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Chat discovery runs before a chat id exists, so it loads
			// config without the full Telegram requirement.
			if getChatID {
				cfg, logger, err := load(false)
				if err != nil {
					return err
				}
				defer logger.Sync()
				return app.DiscoverChatID(cmd.Context(), cfg, logger)
			}

			cfg, logger, err := load(!dryRun)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return app.RunBridge(cmd.Context(), cfg, logger, app.BridgeOptions{
				Once:      once,
				Interval:  interval,
				StatePath: statePath,
				DryRun:    dryRun,
			})
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "poll once and exit")
	cmd.Flags().DurationVar(&interval, "interval", 60*time.Second, "time between polls")
	cmd.Flags().StringVar(&statePath, "state", "bridge_state.json", "path to the relay checkpoint file")
	cmd.Flags().BoolVar(&getChatID, "get-chat-id", false, "list chats messaging the Telegram bot, then exit")
	return cmd
}

func load(requireTelegram bool) (config.Config, *zap.SugaredLogger, error) {
	cfg, err := config.Load(envFile, requireTelegram)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := createLogger(cfg)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger.Sugar(), nil
}

func createLogger(cfg config.Config) (logger *zap.Logger, err error) {
	if cfg.Development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func signalContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctx
}

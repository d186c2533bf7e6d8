package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"rill-community/internal/discord"
)

// watchedChannels are the Discord channels relayed to Telegram, in poll order.
var watchedChannels = []string{"announcements", "dev-updates"}

// pollBatchSize caps how many messages one poll fetches per channel.
const pollBatchSize = 10

// Bridge polls watched Discord channels and forwards new human messages to
// Telegram, checkpointing progress after every poll.
type Bridge struct {
	discord  discord.Client
	telegram Sender
	logger   *zap.SugaredLogger
	guildID  string
	state    *State
	dryRun   bool

	// channel name to resolved ID, filled on start.
	channelIDs map[string]string
}

func New(discordClient discord.Client, telegram Sender, logger *zap.SugaredLogger, guildID string, statePath string, dryRun bool) (*Bridge, error) {
	state, err := LoadState(statePath)
	if err != nil {
		return nil, err
	}
	return &Bridge{
		discord:    discordClient,
		telegram:   telegram,
		logger:     logger,
		guildID:    guildID,
		state:      state,
		dryRun:     dryRun,
		channelIDs: make(map[string]string),
	}, nil
}

// Run resolves the watched channels and polls them. With once set it performs
// a single poll and returns; otherwise it polls every interval until ctx is
// cancelled.
func (b *Bridge) Run(ctx context.Context, interval time.Duration, once bool) error {
	if err := b.resolveChannels(ctx); err != nil {
		return err
	}

	for {
		b.poll(ctx)
		if once {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

func (b *Bridge) resolveChannels(ctx context.Context) error {
	data, err := b.discord.Get(ctx, fmt.Sprintf("/guilds/%s/channels", b.guildID))
	if err != nil {
		return fmt.Errorf("failed to list guild channels: %w", err)
	}
	var channels []discord.Channel
	if err := json.Unmarshal(data, &channels); err != nil {
		return fmt.Errorf("failed to parse guild channels: %w", err)
	}

	for _, name := range watchedChannels {
		for _, ch := range channels {
			if ch.Name == name {
				b.channelIDs[name] = ch.ID
				break
			}
		}
		if b.channelIDs[name] == "" {
			b.logger.Warnw("watched channel not found, it will not be relayed", "channel", name)
		}
	}
	if len(b.channelIDs) == 0 {
		return fmt.Errorf("none of the watched channels exist on guild %s", b.guildID)
	}
	return nil
}

// poll fetches and relays new messages on every watched channel, then saves
// the checkpoint. Per-channel failures are logged and do not stop the others.
func (b *Bridge) poll(ctx context.Context) {
	for _, name := range watchedChannels {
		id := b.channelIDs[name]
		if id == "" {
			continue
		}
		if err := b.pollChannel(ctx, name, id); err != nil {
			b.logger.Errorw("poll failed", "channel", name, "error", err)
		}
	}
	// Dry runs never persist the checkpoint: nothing was actually relayed,
	// so the next live run must see these messages again.
	if b.dryRun {
		return
	}
	if err := b.state.Save(); err != nil {
		b.logger.Errorw("failed to save bridge state", "error", err)
	}
}

func (b *Bridge) pollChannel(ctx context.Context, name string, channelID string) error {
	path := fmt.Sprintf("/channels/%s/messages?limit=%d", channelID, pollBatchSize)
	if after := b.state.Get(name); after != "" {
		path += "&after=" + after
	}

	data, err := b.discord.Get(ctx, path)
	if err != nil {
		return err
	}
	var messages []discord.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("failed to parse messages: %w", err)
	}

	// Discord returns newest first; relay oldest first.
	for i := len(messages) - 1; i >= 0; i-- {
		msg := messages[i]
		// The checkpoint advances past skipped messages too, otherwise a
		// bot post at the head of the channel would be re-fetched forever.
		b.state.Set(name, msg.ID)

		if msg.Author.Bot || msg.Content == "" {
			continue
		}
		if err := b.telegram.Send(ctx, Format(name, msg.Content)); err != nil {
			b.logger.Errorw("failed to relay message", "channel", name, "message", msg.ID, "error", err)
			continue
		}
		b.logger.Infow("relayed message", "channel", name, "message", msg.ID)
	}
	return nil
}

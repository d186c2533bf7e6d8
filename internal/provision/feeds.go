package provision

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"rill-community/internal/catalog"
	"rill-community/internal/discord"
	"rill-community/internal/permission"
)

// feedCategory is where the incremental variant installs feed channels. The
// category must already exist; this path never restructures the server.
const feedCategory = "BOTS"

// AddFeeds provisions the bot feed channels into the existing BOTS category
// without touching anything else. It is idempotent: channels that already
// exist are reused and channels that already have pins are left alone.
func (e *Engine) AddFeeds(ctx context.Context) error {
	feeds := e.catalog.FeedChannels()

	if e.dryRun {
		var names []string
		for _, ch := range feeds {
			names = append(names, ch.Name)
		}
		e.logger.Infow("dry run, would provision feed channels",
			"category", feedCategory, "channels", names)
		return nil
	}

	parentID, existing, err := e.findFeedCategory(ctx)
	if err != nil {
		return err
	}

	if err := e.loadRoleIDs(ctx); err != nil {
		return err
	}
	overwrites := permission.Compile(catalog.TemplateReadOnly, e.guildID, e.roleIDs)

	for _, ch := range feeds {
		channelID := existing[ch.Name]
		if channelID != "" {
			e.logger.Infow("feed channel already exists", "channel", ch.Name, "id", channelID)
		} else {
			payload := discord.ChannelCreate{
				Name:                 ch.Name,
				Type:                 ch.Kind,
				ParentID:             parentID,
				Topic:                ch.Topic,
				RateLimitPerUser:     ch.Slowmode,
				PermissionOverwrites: overwrites,
			}
			data, err := e.client.Post(ctx, fmt.Sprintf("/guilds/%s/channels", e.guildID), payload)
			if err != nil {
				e.logger.Errorw("failed to create feed channel", "channel", ch.Name, "error", err)
				continue
			}
			var created discord.Channel
			if err := json.Unmarshal(data, &created); err != nil {
				e.logger.Errorw("failed to parse created feed channel", "channel", ch.Name, "error", err)
				continue
			}
			channelID = created.ID
			e.logger.Infow("created feed channel", "channel", ch.Name, "id", channelID)
		}

		if err := e.pinFeedContent(ctx, ch.Name, channelID); err != nil {
			e.logger.Errorw("failed to pin feed content", "channel", ch.Name, "error", err)
		}
	}
	return nil
}

// findFeedCategory locates the BOTS category and maps every existing channel
// name to its id. The skip check is server-wide: Discord channel names are not
// scoped to categories, so a feed channel parked elsewhere must not be
// recreated under BOTS.
func (e *Engine) findFeedCategory(ctx context.Context) (string, map[string]string, error) {
	data, err := e.client.Get(ctx, fmt.Sprintf("/guilds/%s/channels", e.guildID))
	if err != nil {
		return "", nil, fmt.Errorf("failed to list guild channels: %w", err)
	}
	var channels []discord.Channel
	if err := json.Unmarshal(data, &channels); err != nil {
		return "", nil, fmt.Errorf("failed to parse guild channels: %w", err)
	}

	var parentID string
	for _, ch := range channels {
		if ch.Type == discord.ChannelTypeCategory && strings.EqualFold(ch.Name, feedCategory) {
			parentID = ch.ID
			break
		}
	}
	if parentID == "" {
		return "", nil, fmt.Errorf("category %q not found, run a full setup first", feedCategory)
	}

	existing := make(map[string]string)
	for _, ch := range channels {
		if ch.Type == discord.ChannelTypeCategory {
			continue
		}
		existing[ch.Name] = ch.ID
	}
	return parentID, existing, nil
}

func (e *Engine) loadRoleIDs(ctx context.Context) error {
	data, err := e.client.Get(ctx, fmt.Sprintf("/guilds/%s/roles", e.guildID))
	if err != nil {
		return fmt.Errorf("failed to list guild roles: %w", err)
	}
	var roles []discord.Role
	if err := json.Unmarshal(data, &roles); err != nil {
		return fmt.Errorf("failed to parse guild roles: %w", err)
	}
	for _, role := range roles {
		e.roleIDs[role.Name] = role.ID
	}
	e.roleIDs["@everyone"] = e.guildID
	return nil
}

// pinFeedContent pins the channel's catalog content unless the channel has
// pins already. Messages still carrying placeholder links are skipped one by
// one here, unlike the full run, so finished feeds are not held hostage by
// unfinished ones.
func (e *Engine) pinFeedContent(ctx context.Context, name string, channelID string) error {
	messages := e.catalog.Pins[name]
	if len(messages) == 0 {
		return nil
	}

	data, err := e.client.Get(ctx, fmt.Sprintf("/channels/%s/pins", channelID))
	if err != nil {
		return fmt.Errorf("failed to list pins: %w", err)
	}
	var pinned []discord.Message
	if err := json.Unmarshal(data, &pinned); err != nil {
		return fmt.Errorf("failed to parse pins: %w", err)
	}
	if len(pinned) > 0 {
		e.logger.Infow("channel already has pins, leaving as is", "channel", name)
		return nil
	}

	for i, content := range messages {
		if strings.Contains(content, catalog.PlaceholderToken) {
			e.logger.Warnw("pinned content still has placeholder links, skipping message",
				"channel", name, "index", i)
			continue
		}
		if err := e.postAndPin(ctx, channelID, content); err != nil {
			e.logger.Errorw("failed to pin message", "channel", name, "index", i, "error", err)
		}
	}
	return nil
}

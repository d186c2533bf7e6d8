// Package provision reconciles a guild against the declared server catalog.
package provision

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"rill-community/internal/catalog"
	"rill-community/internal/discord"
	"rill-community/internal/permission"
)

// requiredRoles must resolve to live IDs before any channel is created; the
// overwrite templates reference them and a missing one would silently produce
// channels with weaker permissions than intended.
var requiredRoles = []string{"Founder", "Core Team", "Moderator", "Contributor", "Member", "Unverified"}

// defaultThreadRateLimit applies to forum channels that do not declare their
// own thread creation interval.
const defaultThreadRateLimit = 300

// Engine drives a guild toward the catalog's desired state. It is single-use:
// construct one per run.
type Engine struct {
	client  discord.Client
	logger  *zap.SugaredLogger
	guildID string
	catalog catalog.Catalog
	dryRun  bool

	roleIDs    map[string]string
	channelIDs map[string]string
}

func New(client discord.Client, logger *zap.SugaredLogger, guildID string, cat catalog.Catalog, dryRun bool) *Engine {
	return &Engine{
		client:     client,
		logger:     logger,
		guildID:    guildID,
		catalog:    cat,
		dryRun:     dryRun,
		roleIDs:    make(map[string]string),
		channelIDs: make(map[string]string),
	}
}

// Run executes the full reconciliation: reset existing channels, create the
// role hierarchy, create categories and channels, then pin content. Category
// creation failures do not stop the run but are reported in the returned
// error so the operator never mistakes a partial build for a clean one.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.resetChannels(ctx); err != nil {
		return err
	}
	if err := e.createRoles(ctx); err != nil {
		return err
	}
	if err := e.validateRequiredRoles(); err != nil {
		return err
	}

	failedCategories := e.createChannels(ctx)
	pinErr := e.pinMessages(ctx)

	if len(failedCategories) > 0 {
		return fmt.Errorf("provisioning incomplete, failed categories: %s", strings.Join(failedCategories, ", "))
	}
	if pinErr != nil {
		return pinErr
	}

	e.logFollowUps()
	return nil
}

// resetChannels deletes every existing channel so the catalog is applied to a
// blank guild. Not being able to list channels aborts the run; individual
// delete failures are logged and skipped. Skipped entirely in dry-run since
// there is nothing to preview beyond the intent.
func (e *Engine) resetChannels(ctx context.Context) error {
	if e.dryRun {
		e.logger.Infow("dry run, skipping channel reset")
		return nil
	}

	data, err := e.client.Get(ctx, fmt.Sprintf("/guilds/%s/channels", e.guildID))
	if err != nil {
		return fmt.Errorf("failed to list guild channels: %w", err)
	}
	var channels []discord.Channel
	if err := json.Unmarshal(data, &channels); err != nil {
		return fmt.Errorf("failed to parse guild channels: %w", err)
	}

	// Children before categories so no delete targets an already-gone parent.
	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].Type != discord.ChannelTypeCategory && channels[j].Type == discord.ChannelTypeCategory
	})

	for _, ch := range channels {
		if _, err := e.client.Delete(ctx, "/channels/"+ch.ID); err != nil {
			e.logger.Warnw("failed to delete channel", "channel", ch.Name, "error", err)
			continue
		}
		e.logger.Infow("deleted channel", "channel", ch.Name)
	}
	return nil
}

// createRoles ensures every catalog role exists, then reorders the stack so
// the catalog's slice order becomes the guild hierarchy.
func (e *Engine) createRoles(ctx context.Context) error {
	data, err := e.client.Get(ctx, fmt.Sprintf("/guilds/%s/roles", e.guildID))
	if err != nil {
		return fmt.Errorf("failed to list guild roles: %w", err)
	}
	var existing []discord.Role
	if err := json.Unmarshal(data, &existing); err != nil {
		return fmt.Errorf("failed to parse guild roles: %w", err)
	}
	for _, role := range existing {
		e.roleIDs[role.Name] = role.ID
	}
	// The @everyone role always shares the guild's ID.
	e.roleIDs["@everyone"] = e.guildID

	for _, role := range e.catalog.Roles {
		if id, ok := e.roleIDs[role.Name]; ok {
			e.logger.Infow("role already exists", "role", role.Name, "id", id)
			continue
		}
		payload := discord.RoleCreate{
			Name:        role.Name,
			Color:       role.Color,
			Hoist:       role.Hoist,
			Mentionable: role.Mentionable,
			Permissions: strconv.FormatUint(role.Permissions, 10),
		}
		data, err := e.client.Post(ctx, fmt.Sprintf("/guilds/%s/roles", e.guildID), payload)
		if err != nil {
			e.logger.Errorw("failed to create role", "role", role.Name, "error", err)
			continue
		}
		var created discord.Role
		if err := json.Unmarshal(data, &created); err != nil {
			e.logger.Errorw("failed to parse created role", "role", role.Name, "error", err)
			continue
		}
		e.roleIDs[role.Name] = created.ID
		e.logger.Infow("created role", "role", role.Name, "id", created.ID)
	}

	return e.reorderRoles(ctx)
}

// reorderRoles applies the catalog hierarchy in one bulk update. The first
// catalog role gets the highest position.
func (e *Engine) reorderRoles(ctx context.Context) error {
	if e.dryRun {
		e.logger.Infow("dry run, skipping role reorder")
		return nil
	}
	if len(e.catalog.Roles) == 0 {
		return nil
	}

	total := len(e.catalog.Roles)
	positions := make([]discord.RolePosition, 0, total)
	for i, role := range e.catalog.Roles {
		id, ok := e.roleIDs[role.Name]
		if !ok {
			continue
		}
		positions = append(positions, discord.RolePosition{ID: id, Position: total - i})
	}

	if _, err := e.client.Patch(ctx, fmt.Sprintf("/guilds/%s/roles", e.guildID), positions); err != nil {
		e.logger.Warnw("failed to reorder roles, hierarchy must be fixed by hand", "error", err)
	}
	return nil
}

// validateRequiredRoles refuses to build channels when a template-referenced
// role is missing. In dry-run the IDs are synthetic anyway, so a warning is
// enough to keep the preview going.
func (e *Engine) validateRequiredRoles() error {
	var missing []string
	for _, name := range requiredRoles {
		if e.roleIDs[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if e.dryRun {
		e.logger.Warnw("required roles unresolved in dry run", "roles", missing)
		return nil
	}
	return fmt.Errorf("required roles missing, cannot compile channel permissions: %s", strings.Join(missing, ", "))
}

// createChannels builds each category and its children. A failed category is
// recorded and its children skipped; later categories still proceed.
func (e *Engine) createChannels(ctx context.Context) []string {
	var failed []string
	for _, cat := range e.catalog.Structure {
		catID, err := e.createCategory(ctx, cat)
		if err != nil {
			e.logger.Errorw("failed to create category, skipping its channels",
				"category", cat.Name, "error", err)
			failed = append(failed, cat.Name)
			continue
		}
		for _, ch := range cat.Channels {
			if err := e.createChannel(ctx, cat, ch, catID); err != nil {
				e.logger.Errorw("failed to create channel", "channel", ch.Name, "error", err)
			}
		}
	}
	return failed
}

func (e *Engine) createCategory(ctx context.Context, cat catalog.Category) (string, error) {
	payload := discord.ChannelCreate{
		Name:                 cat.Name,
		Type:                 discord.ChannelTypeCategory,
		PermissionOverwrites: permission.Compile(cat.Template, e.guildID, e.roleIDs),
	}
	data, err := e.client.Post(ctx, fmt.Sprintf("/guilds/%s/channels", e.guildID), payload)
	if err != nil {
		return "", err
	}
	var created discord.Channel
	if err := json.Unmarshal(data, &created); err != nil {
		return "", fmt.Errorf("failed to parse created category: %w", err)
	}
	e.logger.Infow("created category", "category", cat.Name, "id", created.ID)
	return created.ID, nil
}

func (e *Engine) createChannel(ctx context.Context, cat catalog.Category, ch catalog.Channel, parentID string) error {
	payload := discord.ChannelCreate{
		Name:                 ch.Name,
		Type:                 ch.Kind,
		ParentID:             parentID,
		Topic:                ch.Topic,
		PermissionOverwrites: permission.Compile(ch.EffectiveTemplate(cat), e.guildID, e.roleIDs),
	}
	switch ch.Kind {
	case discord.ChannelTypeForum:
		payload.DefaultThreadRateLimitPerUser = ch.ThreadRateLimit
		if payload.DefaultThreadRateLimitPerUser == 0 {
			payload.DefaultThreadRateLimitPerUser = defaultThreadRateLimit
		}
	case discord.ChannelTypeText:
		payload.RateLimitPerUser = ch.Slowmode
	}

	data, err := e.client.Post(ctx, fmt.Sprintf("/guilds/%s/channels", e.guildID), payload)
	if err != nil {
		return err
	}
	var created discord.Channel
	if err := json.Unmarshal(data, &created); err != nil {
		return fmt.Errorf("failed to parse created channel: %w", err)
	}
	e.channelIDs[ch.Name] = created.ID
	e.logger.Infow("created channel", "channel", ch.Name, "id", created.ID)
	return nil
}

// pinMessages posts and pins the catalog content. It refuses to pin anything
// while placeholder links remain: half-finished onboarding content pinned in a
// live server is worse than none.
func (e *Engine) pinMessages(ctx context.Context) error {
	if unfinished := e.placeholderChannels(); len(unfinished) > 0 {
		return fmt.Errorf("pinned content still contains %s, not pinning anything; affected channels: %s",
			catalog.PlaceholderToken, strings.Join(unfinished, ", "))
	}

	for _, name := range e.pinOrder() {
		channelID := e.channelIDs[name]
		if channelID == "" {
			e.logger.Warnw("no channel recorded for pinned content, skipping", "channel", name)
			continue
		}
		if kind, _ := e.catalog.ChannelKind(name); kind == discord.ChannelTypeForum {
			// Forum content lives in threads; nothing to pin at channel level.
			e.logger.Infow("skipping pins for forum channel", "channel", name)
			continue
		}
		for i, content := range e.catalog.Pins[name] {
			if err := e.postAndPin(ctx, channelID, content); err != nil {
				e.logger.Errorw("failed to pin message", "channel", name, "index", i, "error", err)
			}
		}
	}
	return nil
}

func (e *Engine) postAndPin(ctx context.Context, channelID string, content string) error {
	data, err := e.client.Post(ctx, fmt.Sprintf("/channels/%s/messages", channelID), discord.MessageCreate{Content: content})
	if err != nil {
		return err
	}
	var msg discord.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("failed to parse posted message: %w", err)
	}
	if _, err := e.client.Put(ctx, fmt.Sprintf("/channels/%s/pins/%s", channelID, msg.ID), nil); err != nil {
		return err
	}
	return nil
}

// placeholderChannels lists channels whose pinned content still carries the
// placeholder token.
func (e *Engine) placeholderChannels() []string {
	var names []string
	for name, messages := range e.catalog.Pins {
		for _, msg := range messages {
			if strings.Contains(msg, catalog.PlaceholderToken) {
				names = append(names, name)
				break
			}
		}
	}
	sort.Strings(names)
	return names
}

// pinOrder walks pin targets in catalog structure order so runs are
// deterministic instead of following map iteration.
func (e *Engine) pinOrder() []string {
	var names []string
	for _, cat := range e.catalog.Structure {
		for _, ch := range cat.Channels {
			if _, ok := e.catalog.Pins[ch.Name]; ok {
				names = append(names, ch.Name)
			}
		}
	}
	return names
}

// logFollowUps names the setup steps the API cannot perform.
func (e *Engine) logFollowUps() {
	if e.dryRun {
		return
	}
	e.logger.Infow("manual follow-ups remain",
		"steps", []string{
			"enable Community features in server settings",
			"configure the verification gate on roles-and-verification",
			"invite and configure bots: MonitoRSS, CoinGecko Bot, Whale Alert Bot",
			"add the verification button and ticket button",
		})
}

package provision

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rill-community/internal/catalog"
	"rill-community/internal/discord"
)

const testGuild = "900100"

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		Roles: []catalog.Role{
			{Name: "Founder", Color: 0xF97316, Hoist: true},
			{Name: "Core Team"},
			{Name: "Moderator"},
			{Name: "Contributor"},
			{Name: "Member"},
			{Name: "Unverified"},
		},
		Structure: []catalog.Category{
			{
				Name:     "START HERE",
				Template: catalog.TemplateReadOnly,
				Channels: []catalog.Channel{
					{Name: "welcome", Kind: discord.ChannelTypeText, Topic: "Start here.", Slowmode: 3},
					{Name: "research", Kind: discord.ChannelTypeForum},
				},
			},
		},
		Pins: map[string][]string{
			"welcome": {"Welcome aboard."},
		},
	}
}

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func newEngine(client discord.Client, cat catalog.Catalog, dryRun bool) *Engine {
	return New(client, zap.NewNop().Sugar(), testGuild, cat, dryRun)
}

func TestRunFreshGuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := discord.NewMockClient(ctrl)
	ctx := context.Background()

	// Reset: two leftover channels, children deleted before the category.
	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/channels").Return(raw(t, []discord.Channel{
		{ID: "old-cat", Type: discord.ChannelTypeCategory, Name: "OLD"},
		{ID: "old-chan", Type: discord.ChannelTypeText, Name: "old-general", ParentID: "old-cat"},
	}), nil)
	gomock.InOrder(
		client.EXPECT().Delete(ctx, "/channels/old-chan").Return(json.RawMessage("{}"), nil),
		client.EXPECT().Delete(ctx, "/channels/old-cat").Return(json.RawMessage("{}"), nil),
	)

	// Roles: none exist, all six get created.
	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/roles").Return(json.RawMessage("[]"), nil)
	client.EXPECT().Post(ctx, "/guilds/"+testGuild+"/roles", gomock.Any()).Times(6).DoAndReturn(
		func(_ context.Context, _ string, body any) (json.RawMessage, error) {
			rc := body.(discord.RoleCreate)
			return raw(t, discord.Role{ID: "r-" + rc.Name, Name: rc.Name}), nil
		})

	var positions []discord.RolePosition
	client.EXPECT().Patch(ctx, "/guilds/"+testGuild+"/roles", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, body any) (json.RawMessage, error) {
			positions = body.([]discord.RolePosition)
			return json.RawMessage("[]"), nil
		})

	var channelPayloads []discord.ChannelCreate
	client.EXPECT().Post(ctx, "/guilds/"+testGuild+"/channels", gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, _ string, body any) (json.RawMessage, error) {
			cc := body.(discord.ChannelCreate)
			channelPayloads = append(channelPayloads, cc)
			return raw(t, discord.Channel{ID: "c-" + cc.Name, Name: cc.Name}), nil
		})

	client.EXPECT().Post(ctx, "/channels/c-welcome/messages", discord.MessageCreate{Content: "Welcome aboard."}).
		Return(raw(t, discord.Message{ID: "m1"}), nil)
	client.EXPECT().Put(ctx, "/channels/c-welcome/pins/m1", nil).Return(json.RawMessage("{}"), nil)

	err := newEngine(client, testCatalog(), false).Run(ctx)
	require.NoError(t, err)

	// Hierarchy: first catalog role sits on top of the stack.
	require.Len(t, positions, 6)
	assert.Equal(t, discord.RolePosition{ID: "r-Founder", Position: 6}, positions[0])
	assert.Equal(t, discord.RolePosition{ID: "r-Unverified", Position: 1}, positions[5])

	require.Len(t, channelPayloads, 3)

	cat := channelPayloads[0]
	assert.Equal(t, "START HERE", cat.Name)
	assert.Equal(t, discord.ChannelTypeCategory, cat.Type)
	assert.Len(t, cat.PermissionOverwrites, 2)

	welcome := channelPayloads[1]
	assert.Equal(t, "c-START HERE", welcome.ParentID)
	assert.Equal(t, 3, welcome.RateLimitPerUser)
	assert.Zero(t, welcome.DefaultThreadRateLimitPerUser)
	assert.Len(t, welcome.PermissionOverwrites, 2)

	forum := channelPayloads[2]
	assert.Equal(t, discord.ChannelTypeForum, forum.Type)
	assert.Equal(t, 300, forum.DefaultThreadRateLimitPerUser)
	assert.Zero(t, forum.RateLimitPerUser)
}

func TestRunAbortsWhenChannelListFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := discord.NewMockClient(ctrl)
	ctx := context.Background()

	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/channels").
		Return(nil, &discord.StatusError{Method: "GET", Path: "/guilds/" + testGuild + "/channels", Status: 403})

	err := newEngine(client, testCatalog(), false).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list guild channels")
}

func TestRunAbortsWhenRequiredRoleMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := discord.NewMockClient(ctrl)
	ctx := context.Background()

	cat := testCatalog()
	cat.Roles = nil // nothing declared, nothing live

	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/channels").Return(json.RawMessage("[]"), nil)
	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/roles").Return(json.RawMessage("[]"), nil)

	err := newEngine(client, cat, false).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required roles missing")
	assert.Contains(t, err.Error(), "Founder")
}

func TestRunPlaceholderGuardBlocksAllPins(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := discord.NewMockClient(ctrl)
	ctx := context.Background()

	cat := testCatalog()
	cat.Pins = map[string][]string{
		"welcome": {"Docs: [here](" + catalog.PlaceholderToken + ")"},
	}

	existingRoles := make([]discord.Role, 0, len(cat.Roles))
	for i, role := range cat.Roles {
		existingRoles = append(existingRoles, discord.Role{ID: fmt.Sprintf("r%d", i), Name: role.Name})
	}

	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/channels").Return(json.RawMessage("[]"), nil)
	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/roles").Return(raw(t, existingRoles), nil)
	client.EXPECT().Patch(ctx, "/guilds/"+testGuild+"/roles", gomock.Any()).Return(json.RawMessage("[]"), nil)
	client.EXPECT().Post(ctx, "/guilds/"+testGuild+"/channels", gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, _ string, body any) (json.RawMessage, error) {
			cc := body.(discord.ChannelCreate)
			return raw(t, discord.Channel{ID: "c-" + cc.Name, Name: cc.Name}), nil
		})
	// No message posts and no pin puts: the guard fires before any call.

	err := newEngine(client, cat, false).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), catalog.PlaceholderToken)
	assert.Contains(t, err.Error(), "welcome")
}

func TestRunFailedCategorySkipsChildrenAndReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := discord.NewMockClient(ctrl)
	ctx := context.Background()

	cat := testCatalog()
	cat.Structure = append(cat.Structure, catalog.Category{
		Name:     "TEAM",
		Template: catalog.TemplateTeamOnly,
		Channels: []catalog.Channel{
			{Name: "team-general", Kind: discord.ChannelTypeText},
		},
	})
	cat.Pins = nil

	existingRoles := make([]discord.Role, 0, len(cat.Roles))
	for i, role := range cat.Roles {
		existingRoles = append(existingRoles, discord.Role{ID: fmt.Sprintf("r%d", i), Name: role.Name})
	}

	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/channels").Return(json.RawMessage("[]"), nil)
	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/roles").Return(raw(t, existingRoles), nil)
	client.EXPECT().Patch(ctx, "/guilds/"+testGuild+"/roles", gomock.Any()).Return(json.RawMessage("[]"), nil)

	var created []string
	client.EXPECT().Post(ctx, "/guilds/"+testGuild+"/channels", gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, _ string, body any) (json.RawMessage, error) {
			cc := body.(discord.ChannelCreate)
			if cc.Name == "START HERE" {
				return nil, &discord.StatusError{Method: "POST", Path: "/guilds/" + testGuild + "/channels", Status: 400}
			}
			created = append(created, cc.Name)
			return raw(t, discord.Channel{ID: "c-" + cc.Name, Name: cc.Name}), nil
		})

	err := newEngine(client, cat, false).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "START HERE")

	// The failed category's children were never attempted; the healthy
	// category still got built.
	assert.Equal(t, []string{"TEAM", "team-general"}, created)
}

func TestRunDryRunWithSimulatedClient(t *testing.T) {
	// The real dry-run wiring, end to end: no mocks, no network. The
	// simulated client's synthetic payloads must carry every stage.
	client := discord.NewSimulatedClient(zap.NewNop().Sugar())

	err := newEngine(client, testCatalog(), true).Run(context.Background())
	require.NoError(t, err)
}

func TestRunBotsOnlyCatalog(t *testing.T) {
	botsOnly := catalog.Catalog{Structure: nil}
	for _, c := range catalog.Default().Structure {
		if c.Name == "BOTS" {
			botsOnly.Structure = []catalog.Category{{
				Name:     c.Name,
				Template: catalog.TemplateReadOnly,
				Channels: c.Channels,
			}}
		}
	}
	require.Len(t, botsOnly.Structure, 1)

	tests := []struct {
		name           string
		liveRoles      []discord.Role
		wantOverwrites int
	}{
		{name: "unverified missing", liveRoles: nil, wantOverwrites: 1},
		{name: "unverified resolved", liveRoles: []discord.Role{{ID: "u1", Name: "Unverified"}}, wantOverwrites: 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := discord.NewMockClient(ctrl)
			ctx := context.Background()

			client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/roles").Return(raw(t, test.liveRoles), nil)

			var payloads []discord.ChannelCreate
			client.EXPECT().Post(ctx, "/guilds/"+testGuild+"/channels", gomock.Any()).Times(8).DoAndReturn(
				func(_ context.Context, _ string, body any) (json.RawMessage, error) {
					cc := body.(discord.ChannelCreate)
					payloads = append(payloads, cc)
					return raw(t, discord.Channel{ID: "c-" + cc.Name, Name: cc.Name}), nil
				})

			err := newEngine(client, botsOnly, true).Run(ctx)
			require.NoError(t, err)

			require.Len(t, payloads, 8)
			assert.Equal(t, "BOTS", payloads[0].Name)
			for _, cc := range payloads[1:] {
				assert.Len(t, cc.PermissionOverwrites, test.wantOverwrites)
				assert.Equal(t, testGuild, cc.PermissionOverwrites[0].ID)
			}
		})
	}
}

func TestRunDryRunSkipsResetAndReorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := discord.NewMockClient(ctrl)
	ctx := context.Background()

	cat := testCatalog()
	cat.Pins = nil

	// No channel listing, no deletes, no reorder patch in dry run.
	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/roles").Return(json.RawMessage("[]"), nil)
	client.EXPECT().Post(ctx, "/guilds/"+testGuild+"/roles", gomock.Any()).Times(6).DoAndReturn(
		func(_ context.Context, _ string, body any) (json.RawMessage, error) {
			rc := body.(discord.RoleCreate)
			return raw(t, discord.Role{ID: "sim-" + rc.Name, Name: rc.Name}), nil
		})
	client.EXPECT().Post(ctx, "/guilds/"+testGuild+"/channels", gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, _ string, body any) (json.RawMessage, error) {
			cc := body.(discord.ChannelCreate)
			return raw(t, discord.Channel{ID: "sim-" + cc.Name, Name: cc.Name}), nil
		})

	err := newEngine(client, cat, true).Run(ctx)
	require.NoError(t, err)
}

package bridge

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rill-community/internal/discord"
)

const testGuild = "900100"

type captureSender struct {
	sent []string
	err  error
}

func (s *captureSender) Send(_ context.Context, text string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, text)
	return nil
}

func guildChannels(t *testing.T) []byte {
	t.Helper()
	return []byte(`[
		{"id":"a1","type":5,"name":"announcements"},
		{"id":"d1","type":5,"name":"dev-updates"},
		{"id":"g1","type":0,"name":"general"}
	]`)
}

func newTestBridge(t *testing.T, client discord.Client, sender Sender) *Bridge {
	t.Helper()
	b, err := New(client, sender, zap.NewNop().Sugar(), testGuild, filepath.Join(t.TempDir(), "state.json"), false)
	require.NoError(t, err)
	return b
}

func TestRunOnceRelaysInChronologicalOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := discord.NewMockClient(ctrl)
	sender := &captureSender{}
	ctx := context.Background()

	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/channels").Return(guildChannels(t), nil)
	// Discord returns newest first.
	client.EXPECT().Get(ctx, "/channels/a1/messages?limit=10").Return([]byte(`[
		{"id":"12","content":"Second post","author":{"id":"u1"}},
		{"id":"11","content":"First post","author":{"id":"u1"}}
	]`), nil)
	client.EXPECT().Get(ctx, "/channels/d1/messages?limit=10").Return([]byte(`[]`), nil)

	b := newTestBridge(t, client, sender)
	require.NoError(t, b.Run(ctx, 0, true))

	require.Len(t, sender.sent, 2)
	assert.True(t, strings.HasPrefix(sender.sent[0], "📢 *RillCoin Announcement*"))
	assert.Contains(t, sender.sent[0], "First post")
	assert.Contains(t, sender.sent[1], "Second post")
	assert.Equal(t, "12", b.state.Get("announcements"))
}

func TestPollSkipsBotAndEmptyMessagesButAdvances(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := discord.NewMockClient(ctrl)
	sender := &captureSender{}
	ctx := context.Background()

	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/channels").Return(guildChannels(t), nil)
	client.EXPECT().Get(ctx, "/channels/a1/messages?limit=10").Return([]byte(`[
		{"id":"23","content":"","author":{"id":"u1"}},
		{"id":"22","content":"Automated ping","author":{"id":"b9","bot":true}},
		{"id":"21","content":"Real update","author":{"id":"u1"}}
	]`), nil)
	client.EXPECT().Get(ctx, "/channels/d1/messages?limit=10").Return([]byte(`[]`), nil)

	b := newTestBridge(t, client, sender)
	require.NoError(t, b.Run(ctx, 0, true))

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], "Real update")
	// Checkpoint moves past the skipped head so they are not re-fetched.
	assert.Equal(t, "23", b.state.Get("announcements"))
}

func TestPollResumesFromCheckpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := discord.NewMockClient(ctrl)
	sender := &captureSender{}
	ctx := context.Background()

	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/channels").Return(guildChannels(t), nil)
	client.EXPECT().Get(ctx, "/channels/a1/messages?limit=10&after=40").Return([]byte(`[]`), nil)
	client.EXPECT().Get(ctx, "/channels/d1/messages?limit=10").Return([]byte(`[]`), nil)

	b := newTestBridge(t, client, sender)
	b.state.Set("announcements", "40")
	require.NoError(t, b.Run(ctx, 0, true))
	assert.Empty(t, sender.sent)
}

func TestRunFailsWhenNoWatchedChannelExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := discord.NewMockClient(ctrl)
	ctx := context.Background()

	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/channels").Return([]byte(`[
		{"id":"g1","type":0,"name":"general"}
	]`), nil)

	b := newTestBridge(t, client, &captureSender{})
	err := b.Run(ctx, 0, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watched channels")
}

func TestDryRunDoesNotPersistCheckpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := discord.NewMockClient(ctrl)
	sender := &captureSender{}
	ctx := context.Background()

	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/channels").Return(guildChannels(t), nil)
	client.EXPECT().Get(ctx, "/channels/a1/messages?limit=10").Return([]byte(`[
		{"id":"51","content":"Preview only","author":{"id":"u1"}}
	]`), nil)
	client.EXPECT().Get(ctx, "/channels/d1/messages?limit=10").Return([]byte(`[]`), nil)

	statePath := filepath.Join(t.TempDir(), "state.json")
	b, err := New(client, sender, zap.NewNop().Sugar(), testGuild, statePath, true)
	require.NoError(t, err)
	require.NoError(t, b.Run(ctx, 0, true))

	// The next live run must see the message again.
	_, err = os.Stat(statePath)
	assert.True(t, os.IsNotExist(err))
}

func TestPollKeepsCheckpointMovingWhenSendFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := discord.NewMockClient(ctrl)
	sender := &captureSender{err: errors.New("telegram down")}
	ctx := context.Background()

	client.EXPECT().Get(ctx, "/guilds/"+testGuild+"/channels").Return(guildChannels(t), nil)
	client.EXPECT().Get(ctx, "/channels/a1/messages?limit=10").Return([]byte(`[
		{"id":"31","content":"Will not reach telegram","author":{"id":"u1"}}
	]`), nil)
	client.EXPECT().Get(ctx, "/channels/d1/messages?limit=10").Return([]byte(`[]`), nil)

	b := newTestBridge(t, client, sender)
	require.NoError(t, b.Run(ctx, 0, true))
	assert.Equal(t, "31", b.state.Get("announcements"))
}

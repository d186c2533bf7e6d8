package bridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStateMissingFileStartsFresh(t *testing.T) {
	state, err := LoadState(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, state.Get("announcements"))
}

func TestStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	state, err := LoadState(path)
	require.NoError(t, err)
	state.Set("announcements", "12345")
	state.Set("dev-updates", "67890")
	require.NoError(t, state.Save())

	reloaded, err := LoadState(path)
	require.NoError(t, err)
	assert.Equal(t, "12345", reloaded.Get("announcements"))
	assert.Equal(t, "67890", reloaded.Get("dev-updates"))
}

func TestLoadStateRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadState(path)
	require.Error(t, err)
}

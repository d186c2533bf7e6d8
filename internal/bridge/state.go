package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// State is the bridge's persistent checkpoint: the last relayed message ID
// per watched channel. It survives restarts so no message is forwarded twice.
type State struct {
	path string

	LastIDs map[string]string `json:"last_ids"`
}

// LoadState reads the checkpoint file. A missing file yields a fresh state;
// a corrupt one is an error, since silently restarting from zero would replay
// every message into Telegram.
func LoadState(path string) (*State, error) {
	state := &State{path: path, LastIDs: make(map[string]string)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bridge state: %w", err)
	}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to parse bridge state %s: %w", path, err)
	}
	if state.LastIDs == nil {
		state.LastIDs = make(map[string]string)
	}
	return state, nil
}

func (s *State) Get(channel string) string {
	return s.LastIDs[channel]
}

func (s *State) Set(channel string, messageID string) {
	s.LastIDs[channel] = messageID
}

func (s *State) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bridge state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write bridge state: %w", err)
	}
	return nil
}

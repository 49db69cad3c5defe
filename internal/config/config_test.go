package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.hcl")
	hcl := `
server {
  address   = ":9090"
  log_level = "debug"
}

room {
  small_blind = 50
  big_blind   = 100
}
`
	require.NoError(t, os.WriteFile(path, []byte(hcl), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Address)
	require.Equal(t, "debug", cfg.Server.LogLevel)
	require.Equal(t, 50, cfg.Room.SmallBlind)
	require.Equal(t, 100, cfg.Room.BigBlind)
	require.Equal(t, Default().Room.StartingStack, cfg.Room.StartingStack)
}

func TestRoomConfigConversion(t *testing.T) {
	cfg := Default()
	rc := cfg.RoomConfig()
	require.Equal(t, cfg.Room.SmallBlind, rc.SmallBlind)
	require.Equal(t, cfg.Room.ActionTimeMs, rc.ActionTimeMs)
}

// Package config loads the server's HCL bootstrap file: the bind address,
// log level, and the default per-room config auto-created rooms (the
// legacy join path) start from. Per-room config a client supplies over
// the wire in create_room.config always takes precedence over these
// defaults — this file only seeds what a room looks like before anyone
// has said otherwise.
package config

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-rooms/internal/room"
)

// ServerConfig is the top-level HCL document shape.
type ServerConfig struct {
	Server ServerSettings `hcl:"server,block"`
	Room   RoomDefaults   `hcl:"room,block"`
}

// ServerSettings controls the listener and logging.
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// RoomDefaults seeds the config an auto-created room starts with.
type RoomDefaults struct {
	SmallBlind      int `hcl:"small_blind,optional"`
	BigBlind        int `hcl:"big_blind,optional"`
	StartingStack   int `hcl:"starting_stack,optional"`
	RebuyHands      int `hcl:"rebuy_hands,optional"`
	RoomDurationSec int `hcl:"room_duration_sec,optional"`
	ActionTimeMs    int `hcl:"action_time_ms,optional"`
}

// Default returns the configuration used when no HCL file is present.
func Default() ServerConfig {
	return ServerConfig{
		Server: ServerSettings{
			Address:  ":8080",
			LogLevel: "info",
		},
		Room: RoomDefaults{
			SmallBlind:      5,
			BigBlind:        10,
			StartingStack:   1000,
			RebuyHands:      3,
			RoomDurationSec: 0,
			ActionTimeMs:    20000,
		},
	}
}

// Load reads an HCL config file, falling back to Default if path doesn't
// exist. Unset fields in a present file still fall back to Default's
// values field by field.
func Load(path string) (ServerConfig, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return ServerConfig{}, diags
	}

	var parsed ServerConfig
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return ServerConfig{}, diags
	}

	if parsed.Server.Address != "" {
		cfg.Server.Address = parsed.Server.Address
	}
	if parsed.Server.LogLevel != "" {
		cfg.Server.LogLevel = parsed.Server.LogLevel
	}
	if parsed.Room.SmallBlind != 0 {
		cfg.Room.SmallBlind = parsed.Room.SmallBlind
	}
	if parsed.Room.BigBlind != 0 {
		cfg.Room.BigBlind = parsed.Room.BigBlind
	}
	if parsed.Room.StartingStack != 0 {
		cfg.Room.StartingStack = parsed.Room.StartingStack
	}
	if parsed.Room.RebuyHands != 0 {
		cfg.Room.RebuyHands = parsed.Room.RebuyHands
	}
	if parsed.Room.RoomDurationSec != 0 {
		cfg.Room.RoomDurationSec = parsed.Room.RoomDurationSec
	}
	if parsed.Room.ActionTimeMs != 0 {
		cfg.Room.ActionTimeMs = parsed.Room.ActionTimeMs
	}
	return cfg, nil
}

// RoomConfig converts the loaded defaults into a room.Config.
func (c ServerConfig) RoomConfig() room.Config {
	return room.Config{
		SmallBlind:      c.Room.SmallBlind,
		BigBlind:        c.Room.BigBlind,
		StartingStack:   c.Room.StartingStack,
		RebuyHands:      c.Room.RebuyHands,
		RoomDurationSec: c.Room.RoomDurationSec,
		ActionTimeMs:    c.Room.ActionTimeMs,
	}
}

// Package asset embeds the default state machine config and level manifests.
package asset

import _ "embed"

// DefaultFSMConfig is the game session state machine
//
//go:embed fsm.toml
var DefaultFSMConfig string

// DefaultLevels is the built-in level manifest
//
//go:embed levels.toml
var DefaultLevels string

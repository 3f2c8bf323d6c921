// Package replay records a session's inputs and UI triggers and re-simulates them.
// The core is deterministic, so inputs plus triggers reproduce a run exactly.
package replay

import (
	"errors"
	"time"
)

// Bundle file names
const (
	ManifestFile = "manifest.json"
	InputsFile   = "inputs.bin.zst"
	EventsFile   = "events.jsonl.sz"
)

// FormatVersion is the bundle layout version written to the manifest
const FormatVersion = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported replay version")
	ErrUnknownTrigger     = errors.New("unknown trigger in replay")
	ErrClosed             = errors.New("recorder closed")
	ErrMismatch           = errors.New("replay recorded against different data")
)

// Manifest describes a recording bundle
type Manifest struct {
	Version     int    `json:"version"`
	CreatedAt   string `json:"created_at"`
	TickRate    int    `json:"tick_rate"`
	Ticks       uint64 `json:"ticks"`
	Triggers    int    `json:"triggers"`
	LevelsHash  string `json:"levels_sha256,omitempty"`
	FSMHash     string `json:"fsm_sha256,omitempty"`
	InputsPath  string `json:"inputs_path"`
	EventsPath  string `json:"events_path"`
	Description string `json:"description,omitempty"`
}

// Trigger is one recorded UI trigger, applied before the simulation of Tick
type Trigger struct {
	Tick  uint64 `json:"tick"`
	Type  string `json:"type"`
	Index int    `json:"index,omitempty"` // Level for EventSelectLevel
}

// Meta is caller-supplied context stored in the manifest
type Meta struct {
	LevelsSource string // Raw manifest text, hashed
	FSMSource    string // Raw FSM config text, hashed
	Description  string
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

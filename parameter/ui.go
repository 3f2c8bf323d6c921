package parameter

import "time"

// Terminal key-hold emulation
// Terminals report press and auto-repeat but never release, so an action stays held
// for a window after the last event. The first window bridges the OS repeat delay.
const (
	KeyHoldInitial = 550 * time.Millisecond
	KeyHoldRepeat  = 90 * time.Millisecond
)

// Menu layout in terminal cells
const (
	MenuButtonWidth   = 24
	MenuButtonSpacing = 2
	MenuTitleRow      = 3
	MenuFirstButtonY  = 8
)

// Glyphs
const (
	PlayerRightChar = '▶'
	PlayerLeftChar  = '◀'
	PlatformChar    = '▀'
	MoverChar       = '▒'
	PickupChar      = '♦'
	HazardChar      = '▲'
	GateChar        = '█'
)

// HUD rows reserved above the playfield
const HUDRows = 2

package input

// IntentType discriminates one-shot UI actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Ctrl+Q, Ctrl+C
	IntentEscape // ESC, context-dependent back
	IntentResize // Terminal resize event

	// Menu navigation
	IntentUp
	IntentDown
	IntentActivate    // Enter, Space
	IntentSelectLevel // 1-9, Index holds the zero-based level
	IntentInstructions

	// Result and pause screens
	IntentRestart
	IntentMenu
	IntentNext

	// Mouse
	IntentClick // Left press, X/Y in cells
)

// Intent is a parsed UI action
// Pure data; the binary maps it to session triggers through the current layout
type Intent struct {
	Type  IntentType
	Index int
	X, Y  int
}

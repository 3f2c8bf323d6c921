package event

// EventType identifies a state machine trigger
// Zero is reserved for the per-tick evaluation ("Tick" in config files)
type EventType int

const (
	// === Menu ===

	// EventStart opens level selection
	// Trigger: Menu "Start" button | Payload: nil
	EventStart EventType = iota + 1

	// EventShowInstructions opens the instructions screen
	// Trigger: Menu button | Payload: nil
	EventShowInstructions

	// EventQuit ends the program
	// Trigger: Menu button, Ctrl+C | Payload: nil
	EventQuit

	// EventSelectLevel loads the chosen level with fresh lives
	// Trigger: LevelSelect button | Payload: *SelectLevelPayload
	EventSelectLevel

	// EventBack returns to the main menu from a sub-screen
	// Trigger: Esc, "Back" button | Payload: nil
	EventBack

	// === Play ===

	// EventPauseToggle flips between Playing and Paused
	// Trigger: pause key edge in the input snapshot | Payload: nil
	EventPauseToggle

	// EventResume continues a paused level without reloading it
	// Trigger: Paused "Resume" button | Payload: nil
	EventResume

	// EventRestart reloads the current level with fresh lives
	// Trigger: Paused / WinScreen / GameOver button | Payload: nil
	EventRestart

	// EventMenu abandons the level and returns to the main menu
	// Trigger: Paused / WinScreen / GameOver button | Payload: nil
	EventMenu

	// EventNextLevel loads the following level, guarded by HasNextLevel
	// Trigger: WinScreen button | Payload: nil
	EventNextLevel

	// === Session ===

	// EventLevelComplete fires when the player touches the open gate
	// Trigger: GameSession tick | Payload: nil
	EventLevelComplete

	// EventPlayerOutOfLives fires when the last life is lost
	// Trigger: GameSession tick | Payload: nil
	EventPlayerOutOfLives
)

// SelectLevelPayload carries the zero-based index of the chosen level
type SelectLevelPayload struct {
	Index int `toml:"index"`
}

// GameEvent is a queued trigger with its optional payload
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // Session tick at push time, for replay logs
}

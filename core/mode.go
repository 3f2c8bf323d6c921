package core

// GameState is the high-level screen the session is on
type GameState uint8

const (
	StateMenu GameState = iota
	StateLevelSelect
	StateInstructions
	StateLoading
	StatePlaying
	StatePaused
	StateWinScreen
	StateGameOver
	StateQuit // Terminal, the binary exits
)

var gameStateNames = [...]string{
	StateMenu:         "Menu",
	StateLevelSelect:  "LevelSelect",
	StateInstructions: "Instructions",
	StateLoading:      "Loading",
	StatePlaying:      "Playing",
	StatePaused:       "Paused",
	StateWinScreen:    "WinScreen",
	StateGameOver:     "GameOver",
	StateQuit:         "Quit",
}

func (s GameState) String() string {
	if int(s) < len(gameStateNames) {
		return gameStateNames[s]
	}
	return "Unknown"
}

// ParseGameState resolves a state name as written in FSM config
func ParseGameState(name string) (GameState, bool) {
	for i, n := range gameStateNames {
		if n == name {
			return GameState(i), true
		}
	}
	return 0, false
}

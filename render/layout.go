package render

import (
	"fmt"

	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/engine"
	"github.com/lixenwraith/snowhop/event"
	"github.com/lixenwraith/snowhop/parameter"
)

// Button is a clickable menu entry; Index carries the level for EventSelectLevel
type Button struct {
	Label   string
	Hint    string // Shown under the column while the button is selected
	Trigger event.EventType
	Index   int
	X, Y, W int
}

// LevelInfo is what level select shows for one level
type LevelInfo struct {
	Name        string
	Description string
}

// Contains reports whether cell (x, y) is on the button
func (b Button) Contains(x, y int) bool {
	return y == b.Y && x >= b.X && x < b.X+b.W
}

// Layout describes one screen's title, text and buttons
// Rebuilt from the frame every render; holds no state of its own
type Layout struct {
	Title    string
	Subtitle string
	Lines    []string
	Error    string // Shown below Lines
	Buttons  []Button
	Overlay  bool // Drawn over the level instead of a blank screen
}

// Hit returns the button under cell (x, y)
func (l Layout) Hit(x, y int) (Button, bool) {
	for _, b := range l.Buttons {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// Clamp keeps a keyboard selection inside the button list
func (l Layout) Clamp(i int) int {
	n := len(l.Buttons)
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// InstructionLines is the help screen text
var InstructionLines = []string{
	"Goal: collect every gift in the level, then reach the cabin door",
	"",
	"Controls:",
	"  Left/Right or A/D   move",
	"  Space, Up or W      jump: tap for a hop, hold for a higher leap",
	"  P or Esc            pause",
	"",
	"Rules:",
	"  You have 3 lives; falling into the void or touching a spike costs one",
	"  The door opens once all gifts are collected",
	"  Orange platforms move; stand on them to ride along",
}

// NewLayout builds the layout for the frame's state on a cols x rows screen
func NewLayout(f engine.Frame, levels []LevelInfo, cols, rows int) Layout {
	var l Layout
	switch f.State {
	case core.StateMenu:
		l.Title = "SNOWHOP"
		l.Subtitle = "Deliver the gifts before the night is over"
		if f.LoadError != "" {
			l.Error = "Could not load level: " + f.LoadError
		}
		l.Buttons = []Button{
			{Label: "Start", Trigger: event.EventStart},
			{Label: "Instructions", Trigger: event.EventShowInstructions},
			{Label: "Quit", Trigger: event.EventQuit},
		}

	case core.StateLevelSelect:
		l.Title = "Select Level"
		for i, lv := range levels {
			l.Buttons = append(l.Buttons, Button{
				Label:   fmt.Sprintf("%d. %s", i+1, lv.Name),
				Hint:    lv.Description,
				Trigger: event.EventSelectLevel,
				Index:   i,
			})
		}
		l.Buttons = append(l.Buttons, Button{Label: "Back", Trigger: event.EventBack})

	case core.StateInstructions:
		l.Title = "How to Play"
		l.Lines = InstructionLines
		l.Buttons = []Button{{Label: "Back", Trigger: event.EventBack}}

	case core.StatePaused:
		l.Title = "Paused"
		l.Subtitle = "Press P or Esc to continue"
		l.Overlay = true
		l.Buttons = []Button{
			{Label: "Resume", Trigger: event.EventResume},
			{Label: "Restart", Trigger: event.EventRestart},
			{Label: "Menu", Trigger: event.EventMenu},
		}

	case core.StateWinScreen:
		l.Title = "Level Complete!"
		l.Overlay = true
		l.Lines = []string{
			fmt.Sprintf("Gifts delivered: %d/%d", f.Collected, f.Total),
			fmt.Sprintf("Lives left: %d", f.Lives),
		}
		if f.HasNextLevel {
			l.Buttons = append(l.Buttons, Button{Label: "Next Level", Trigger: event.EventNextLevel})
		} else {
			l.Subtitle = "All levels complete. Merry Christmas!"
		}
		l.Buttons = append(l.Buttons,
			Button{Label: "Restart", Trigger: event.EventRestart},
			Button{Label: "Menu", Trigger: event.EventMenu},
		)

	case core.StateGameOver:
		l.Title = "Game Over"
		l.Overlay = true
		l.Lines = []string{
			fmt.Sprintf("You fell on level %d", f.LevelIndex+1),
			fmt.Sprintf("Gifts collected: %d/%d", f.Collected, f.Total),
		}
		l.Buttons = []Button{
			{Label: "Restart", Trigger: event.EventRestart},
			{Label: "Menu", Trigger: event.EventMenu},
		}

	default:
		return l
	}

	l.place(cols, rows)
	return l
}

// place centers buttons in a column below the text block
func (l *Layout) place(cols, rows int) {
	w := parameter.MenuButtonWidth
	for _, b := range l.Buttons {
		w = max(w, len(b.Label)+4)
	}
	x := max((cols-w)/2, 0)

	text := len(l.Lines)
	if l.Error != "" {
		text++
	}
	y := parameter.MenuFirstButtonY + text
	if text > 0 {
		y++
	}
	// Keep the column on screen for short terminals
	need := len(l.Buttons) * parameter.MenuButtonSpacing
	if y+need > rows {
		y = max(rows-need, parameter.MenuTitleRow+2)
	}

	for i := range l.Buttons {
		l.Buttons[i].X = x
		l.Buttons[i].Y = y + i*parameter.MenuButtonSpacing
		l.Buttons[i].W = w
	}
}

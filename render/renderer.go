package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/engine"
	"github.com/lixenwraith/snowhop/parameter"
)

// TerminalRenderer draws frames and layouts onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	mode   ColorMode
	width  int
	height int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, mode ColorMode) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, mode: mode, width: w, height: h}
}

// Size returns the current screen size in cells
func (r *TerminalRenderer) Size() (int, int) {
	return r.width, r.height
}

// Resize refreshes the cached size after a terminal resize
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.screen.Sync()
}

func (r *TerminalRenderer) color(c tcell.Color) tcell.Color {
	if r.mode == ColorMode256 {
		return To256(c)
	}
	return c
}

func (r *TerminalRenderer) style(fg, bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(r.color(fg)).Background(r.color(bg))
}

// RenderFrame draws the whole screen: level and HUD when one is shown, then the layout
// selected is the highlighted button index
func (r *TerminalRenderer) RenderFrame(f engine.Frame, l Layout, selected int) {
	bg := r.style(RgbText, RgbBackground)
	r.screen.SetStyle(bg)
	r.screen.Clear()

	if showsLevel(f.State) && f.Player != nil {
		r.drawLevel(f)
		r.drawHUD(f)
	}
	r.drawLayout(l, selected)

	r.screen.Show()
}

func showsLevel(s core.GameState) bool {
	switch s {
	case core.StatePlaying, core.StatePaused, core.StateWinScreen, core.StateGameOver:
		return true
	}
	return false
}

func (r *TerminalRenderer) drawLevel(f engine.Frame) {
	v := NewViewport(r.width, r.height)

	for _, p := range f.Platforms {
		ch := parameter.PlatformChar
		if p.Movable {
			ch = parameter.MoverChar
		}
		r.fillRect(v, p.Box, ch, r.style(PlatformColor(p.Color, p.Movable), RgbBackground))
	}

	gate := RgbGateClosed
	if f.GateOpen {
		gate = RgbGateOpen
	}
	r.fillRect(v, f.Gate, parameter.GateChar, r.style(gate, RgbBackground))

	for _, h := range f.Hazards {
		r.fillRect(v, h, parameter.HazardChar, r.style(RgbHazard, RgbBackground))
	}
	for _, p := range f.Pickups {
		x, y := v.Cell(p.X+p.W/2, p.Y+p.H/2)
		r.setCell(v, x, y, parameter.PickupChar, r.style(RgbPickup, RgbBackground))
	}

	ch := parameter.PlayerRightChar
	if !f.Player.FacingRight {
		ch = parameter.PlayerLeftChar
	}
	r.fillRect(v, f.Player.Box, ch, r.style(RgbPlayer, RgbBackground))
}

func (r *TerminalRenderer) fillRect(v Viewport, box core.Rect, ch rune, st tcell.Style) {
	x0, y0, x1, y1 := v.CellRect(box)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.setCell(v, x, y, ch, st)
		}
	}
}

func (r *TerminalRenderer) setCell(v Viewport, x, y int, ch rune, st tcell.Style) {
	if v.Visible(x, y) {
		r.screen.SetContent(x, y, ch, nil, st)
	}
}

func (r *TerminalRenderer) drawHUD(f engine.Frame) {
	hud := r.style(RgbText, RgbHUDBg)
	for y := 0; y < parameter.HUDRows; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, hud)
		}
	}
	r.text(0, 0, HUDStatus(f), hud)

	x := 1
	for _, h := range HUDHints(f) {
		x = r.text(x, 1, h.Text, hud.Foreground(r.color(hintColor(h.Kind)))) + 3
	}
}

func hintColor(k HintKind) tcell.Color {
	switch k {
	case HintDoorOpen:
		return RgbGateOpen
	case HintMover:
		return RgbHint
	case HintPause:
		return RgbDimText
	default:
		return RgbText
	}
}

func (r *TerminalRenderer) drawLayout(l Layout, selected int) {
	if l.Title == "" && len(l.Buttons) == 0 {
		return
	}

	bg := RgbBackground
	if l.Overlay {
		bg = RgbHUDBg
		r.box(l)
	}
	r.centered(parameter.MenuTitleRow, l.Title, r.style(RgbTitle, bg).Bold(true))
	if l.Subtitle != "" {
		r.centered(parameter.MenuTitleRow+1, l.Subtitle, r.style(RgbDimText, bg))
	}

	row := parameter.MenuTitleRow + 3
	for _, line := range l.Lines {
		r.centered(row, line, r.style(RgbText, bg))
		row++
	}
	if l.Error != "" {
		r.centered(row, l.Error, r.style(RgbError, bg))
	}

	selected = l.Clamp(selected)
	for i, b := range l.Buttons {
		fill := RgbButton
		if i == selected {
			fill = RgbButtonSel
		}
		st := r.style(RgbButtonText, fill)
		for x := b.X; x < b.X+b.W; x++ {
			r.screen.SetContent(x, b.Y, ' ', nil, st)
		}
		r.text(b.X+(b.W-len(b.Label))/2, b.Y, b.Label, st)
	}

	if n := len(l.Buttons); n > 0 && l.Buttons[selected].Hint != "" {
		last := l.Buttons[n-1]
		r.centered(last.Y+parameter.MenuButtonSpacing, l.Buttons[selected].Hint, r.style(RgbDimText, bg))
	}
}

// box clears a panel behind an overlay layout
func (r *TerminalRenderer) box(l Layout) {
	top := parameter.MenuTitleRow - 1
	bottom := parameter.MenuTitleRow + 3 + len(l.Lines)
	left, right := r.width/4, r.width-r.width/4
	for _, b := range l.Buttons {
		bottom = max(bottom, b.Y+1)
		left = min(left, b.X-2)
		right = max(right, b.X+b.W+2)
	}
	st := r.style(RgbText, RgbHUDBg)
	for y := max(top, 0); y <= bottom && y < r.height; y++ {
		for x := max(left, 0); x < right && x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

func (r *TerminalRenderer) centered(y int, s string, st tcell.Style) {
	r.text((r.width-len([]rune(s)))/2, y, s, st)
}

// text writes s starting at (x, y), clipped to the screen; returns the column after the last rune
func (r *TerminalRenderer) text(x, y int, s string, st tcell.Style) int {
	if y < 0 || y >= r.height {
		return x
	}
	for _, ch := range s {
		if x >= 0 && x < r.width {
			r.screen.SetContent(x, y, ch, nil, st)
		}
		x++
	}
	return x
}

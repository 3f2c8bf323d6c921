package input

import "github.com/gdamore/tcell/v2"

// Action is a held gameplay control sampled into the per-tick snapshot
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionPause // Edge only, never held
	actionCount
)

// KeyEntry describes what a key does; a key may drive both a held action and an intent
type KeyEntry struct {
	Action Action
	Intent IntentType
	Index  int
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter)
	Keys map[tcell.Key]KeyEntry

	// Printable keys, matched case-insensitively for letters
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings: arrows or WASD to move, Space/Up/W to jump
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		Keys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Action: ActionPause, Intent: IntentEscape},
			tcell.KeyLeft:   {Action: ActionLeft},
			tcell.KeyRight:  {Action: ActionRight},
			tcell.KeyUp:     {Action: ActionJump, Intent: IntentUp},
			tcell.KeyDown:   {Intent: IntentDown},
			tcell.KeyEnter:  {Intent: IntentActivate},
			tcell.KeyTab:    {Intent: IntentDown},
		},
		Runes: map[rune]KeyEntry{
			'a': {Action: ActionLeft},
			'd': {Action: ActionRight},
			'w': {Action: ActionJump, Intent: IntentUp},
			's': {Intent: IntentDown},
			' ': {Action: ActionJump, Intent: IntentActivate},
			'p': {Action: ActionPause},
			'r': {Intent: IntentRestart},
			'm': {Intent: IntentMenu},
			'n': {Intent: IntentNext},
			'i': {Intent: IntentInstructions},
			'q': {Intent: IntentQuit},
		},
	}
	for d := '1'; d <= '9'; d++ {
		kt.Runes[d] = KeyEntry{Intent: IntentSelectLevel, Index: int(d - '1')}
	}
	return kt
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		e, ok := kt.Runes[r]
		return e, ok
	}
	e, ok := kt.Keys[ev.Key()]
	return e, ok
}

package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionStrike
	ActionFinishBout
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEnter:
		return ActionStrike
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case ' ', 's', 'S':
		return ActionStrike
	case 'a', 'A':
		return ActionFinishBout
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

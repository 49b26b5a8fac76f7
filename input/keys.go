package input

import "github.com/gdamore/tcell/v2"

// Action discriminates semantic key actions
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionLike
	ActionDislike
	ActionTempoUp
	ActionTempoDown
	ActionToggleMute
	ActionVolumeUp
	ActionVolumeDown
)

// MapKey translates a terminal key event into a semantic action
func MapKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return ActionQuit
	case tcell.KeyUp:
		return ActionTempoUp
	case tcell.KeyDown:
		return ActionTempoDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return ActionQuit
		case 'l':
			return ActionLike
		case 'd', 'x':
			return ActionDislike
		case '+', '=':
			return ActionTempoUp
		case '-', '_':
			return ActionTempoDown
		case 'm':
			return ActionToggleMute
		case ']':
			return ActionVolumeUp
		case '[':
			return ActionVolumeDown
		}
	}
	return ActionNone
}

// Package input reads single key presses from a terminal in raw mode.
package input

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Action represents what the user asked for
type Action int

const (
	ActionNone Action = iota
	ActionRegenerate
	ActionQuit
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionDump
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case ActionRegenerate:
		return "regenerate"
	case ActionQuit:
		return "quit"
	case ActionScrollUp:
		return "scroll_up"
	case ActionScrollDown:
		return "scroll_down"
	case ActionScrollLeft:
		return "scroll_left"
	case ActionScrollRight:
		return "scroll_right"
	case ActionDump:
		return "dump"
	default:
		return "none"
	}
}

// keyActions maps key codes to actions. Arrow keys are reported as
// "arrow_*" codes by ReadKey.
var keyActions = map[string]Action{
	"r":           ActionRegenerate,
	"R":           ActionRegenerate,
	"q":           ActionQuit,
	"Q":           ActionQuit,
	"ctrl_c":      ActionQuit,
	"escape":      ActionQuit,
	"arrow_up":    ActionScrollUp,
	"arrow_down":  ActionScrollDown,
	"arrow_left":  ActionScrollLeft,
	"arrow_right": ActionScrollRight,
	"k":           ActionScrollUp,
	"j":           ActionScrollDown,
	"h":           ActionScrollLeft,
	"l":           ActionScrollRight,
	"d":           ActionDump,
	"D":           ActionDump,
}

// MapKey converts a key code into an action
func MapKey(code string) Action {
	return keyActions[code]
}

// decodeKey turns the bytes of one key press into a key code
func decodeKey(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}

	// CSI (ESC [) and SS3 (ESC O) arrow sequences
	if buf[0] == 0x1b {
		if len(buf) >= 3 && (buf[1] == '[' || buf[1] == 'O') {
			switch buf[2] {
			case 'A':
				return "arrow_up"
			case 'B':
				return "arrow_down"
			case 'C':
				return "arrow_right"
			case 'D':
				return "arrow_left"
			}
			return ""
		}
		return "escape"
	}

	if buf[0] == 3 {
		return "ctrl_c"
	}

	if buf[0] >= 32 && buf[0] < 127 {
		return string(buf[0])
	}
	return ""
}

// ReadKey waits for a single key press and returns its code.
// The terminal is put into raw mode for the duration of the read.
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	// An escape sequence arrives in a single read on every terminal we care about.
	buf := make([]byte, 8)
	n, err := os.Stdin.Read(buf)
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}
	return decodeKey(buf[:n]), nil
}

// ReadAction waits for a key press and maps it to an action
func ReadAction() (Action, error) {
	code, err := ReadKey()
	if err != nil {
		return ActionNone, err
	}
	return MapKey(code), nil
}

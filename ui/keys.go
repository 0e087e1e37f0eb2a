package ui

import (
	"github.com/gdamore/tcell/v2"

	"minewalk/types"
)

// Command is what a key press asks the game to do.
type Command int

const (
	CommandNone Command = iota
	CommandMove
	CommandDigit
	CommandDelete
	CommandConfirm
	CommandReset
	CommandMenu
	CommandQuit
)

// Input is a decoded key press.
type Input struct {
	Command   Command
	Direction types.Direction // for CommandMove
	Digit     rune            // for CommandDigit
}

// Game is the part of the engine driven by the keyboard.
type Game interface {
	TryMove(d types.Direction) bool
	AppendStartRowDigit(r rune) bool
	DeleteStartRowDigit() bool
	ConfirmDesiredStartPosition()
	Reset()
}

// InputForKey decodes a key press. Arrows, hjkl and wasd move.
func InputForKey(event *tcell.EventKey) Input {
	switch event.Key() {
	case tcell.KeyUp:
		return Input{Command: CommandMove, Direction: types.North}
	case tcell.KeyRight:
		return Input{Command: CommandMove, Direction: types.East}
	case tcell.KeyDown:
		return Input{Command: CommandMove, Direction: types.South}
	case tcell.KeyLeft:
		return Input{Command: CommandMove, Direction: types.West}
	case tcell.KeyEnter:
		return Input{Command: CommandConfirm}
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return Input{Command: CommandDelete}
	case tcell.KeyEsc:
		return Input{Command: CommandQuit}
	case tcell.KeyRune:
		r := event.Rune()
		switch r {
		case 'k', 'w':
			return Input{Command: CommandMove, Direction: types.North}
		case 'l', 'd':
			return Input{Command: CommandMove, Direction: types.East}
		case 'j', 's':
			return Input{Command: CommandMove, Direction: types.South}
		case 'h', 'a':
			return Input{Command: CommandMove, Direction: types.West}
		case 'r', 'R':
			return Input{Command: CommandReset}
		case 'q':
			return Input{Command: CommandMenu}
		}
		if r >= '0' && r <= '9' {
			return Input{Command: CommandDigit, Digit: r}
		}
	}
	return Input{Command: CommandNone}
}

// Dispatch applies a game command. Menu and quit are left to the caller.
func Dispatch(g Game, in Input) {
	switch in.Command {
	case CommandMove:
		g.TryMove(in.Direction)
	case CommandDigit:
		g.AppendStartRowDigit(in.Digit)
	case CommandDelete:
		g.DeleteStartRowDigit()
	case CommandConfirm:
		g.ConfirmDesiredStartPosition()
	case CommandReset:
		g.Reset()
	}
}

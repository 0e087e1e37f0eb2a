package engine

import (
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"minewalk/board"
	"minewalk/player"
	"minewalk/types"
)

// BoardSize is the width and height of every minefield.
const BoardSize = 16

// maxStartRowDigits is enough to type any row of a 26 row board.
const maxStartRowDigits = 2

// GameEngine combines the board and the player into a turn based game.
// It is not safe for concurrent use; the UI drives it from one goroutine.
type GameEngine struct {
	output Renderer
	board  *board.Board
	player *player.Player
	log    logrus.FieldLogger

	cfg             GameConfig
	desiredStartRow string
	state           types.State
	moveCounter     int
	gameID          uuid.UUID
}

// New creates an engine drawing to output. Call Init before playing.
func New(output Renderer, b *board.Board, p *player.Player) *GameEngine {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return &GameEngine{
		output: output,
		board:  b,
		player: p,
		log:    discard,
	}
}

// SetLogger sets the logger used for game events.
func (e *GameEngine) SetLogger(l logrus.FieldLogger) {
	e.log = l
}

// State returns the current game phase.
func (e *GameEngine) State() types.State {
	return e.state
}

// MoveCounter returns the number of squares stepped on since the last reset.
func (e *GameEngine) MoveCounter() int {
	return e.moveCounter
}

// LivesRemaining is derived from the debris on the board: each exploded
// mine costs exactly one life, however often it is walked over.
func (e *GameEngine) LivesRemaining() int {
	return e.cfg.StartLives - e.board.ExplodedMines()
}

// GameID identifies the current field in logs.
func (e *GameEngine) GameID() uuid.UUID {
	return e.gameID
}

// Position returns where the player stands.
func (e *GameEngine) Position() types.Position {
	return e.player.Position()
}

// DesiredStartRow returns the typed starting row.
func (e *GameEngine) DesiredStartRow() string {
	return e.desiredStartRow
}

// Init stores the configuration and starts a fresh game.
func (e *GameEngine) Init(cfg GameConfig) {
	e.cfg = cfg
	e.desiredStartRow = ""
	if cfg.StartRow > 0 {
		e.desiredStartRow = strconv.Itoa(cfg.StartRow)
	}
	e.output.SetTitle(cfg.Title)
	e.Reset()
}

// Reset lays a new minefield and puts the player back before the start.
func (e *GameEngine) Reset() {
	if err := e.board.Init(BoardSize, BoardSize, e.cfg.DifficultyFactor); err != nil {
		panic(err)
	}
	e.moveCounter = 0
	e.state = types.NotStarted
	e.player.UpdatePosition(0, 0)
	e.player.OnTheBoard = false
	e.gameID = uuid.New()

	e.logger().WithFields(logrus.Fields{
		"difficulty": e.cfg.DifficultyFactor,
		"lives":      e.cfg.StartLives,
		"mines":      e.board.Mines(),
	}).Info("new minefield")

	e.RenderToOutput()
}

// canEditStartRow reports whether the player is waiting to enter the field.
func (e *GameEngine) canEditStartRow() bool {
	return !e.state.Finished() && !e.player.OnTheBoard
}

// AppendStartRowDigit adds a digit to the typed starting row.
func (e *GameEngine) AppendStartRowDigit(r rune) bool {
	if r < '0' || r > '9' || !e.canEditStartRow() || len(e.desiredStartRow) >= maxStartRowDigits {
		return false
	}
	e.desiredStartRow += string(r)
	e.RenderToOutput()
	return true
}

// DeleteStartRowDigit removes the last digit of the typed starting row.
func (e *GameEngine) DeleteStartRowDigit() bool {
	if len(e.desiredStartRow) == 0 || !e.canEditStartRow() {
		return false
	}
	e.desiredStartRow = e.desiredStartRow[:len(e.desiredStartRow)-1]
	e.RenderToOutput()
	return true
}

// ConfirmDesiredStartPosition places the player west of the typed row and
// steps them onto the field. Nothing happens if the row is not valid.
func (e *GameEngine) ConfirmDesiredStartPosition() {
	if !e.canEditStartRow() {
		return
	}
	row, err := strconv.Atoi(e.desiredStartRow)
	if err != nil || row <= 0 || row > e.board.Height() {
		return
	}

	e.state = types.FreeMovement
	e.player.UpdatePosition(-1, row-1)
	e.logger().WithField("row", row).Debug("entering field")
	e.player.OnTheBoard = e.TryMove(types.East)
}

// TryMove takes one step in direction d and reports whether the move was
// permitted. Steps off the edge of the field are rejected outright.
func (e *GameEngine) TryMove(d types.Direction) bool {
	if e.state != types.FreeMovement {
		return false
	}

	dx, dy := d.Delta()
	x, y := e.player.X()+dx, e.player.Y()+dy
	if !e.board.Contains(x, y) {
		return false
	}

	var (
		permitted bool
		freshHit  bool
	)

	if e.square(x, y) == types.Debris && e.player.OnTheBoard {
		// known debris costs nothing but cannot be stood on
		permitted = true
	} else {
		status, err := e.board.OccupySquare(x, y)
		if err != nil {
			panic(err)
		}
		switch status {
		case types.Safe:
			e.player.UpdatePosition(x, y)
			permitted = true
		case types.Mine:
			freshHit = true
			permitted = e.player.OnTheBoard
		case types.Debris:
			permitted = e.player.OnTheBoard
		}
		if status != types.Debris {
			e.moveCounter++
		}
	}

	log := e.logger().WithFields(logrus.Fields{
		"direction": d.String(),
		"x":         x,
		"y":         y,
		"permitted": permitted,
		"moves":     e.moveCounter,
		"lives":     e.LivesRemaining(),
	})
	if freshHit {
		log.Info("mine exploded")
	} else {
		log.Debug("move")
	}

	exhausted := e.LivesRemaining() <= 0
	if (!permitted && (exhausted || !e.player.OnTheBoard)) || (freshHit && exhausted) {
		if exhausted {
			e.state = types.Loser
			e.logger().WithField("moves", e.moveCounter).Info("game lost")
		}
		e.desiredStartRow = ""
		e.player.UpdatePosition(-1, -1)
		e.player.OnTheBoard = false
	}

	if e.player.X() == e.board.Width()-1 {
		e.state = types.Winner
		e.logger().WithFields(logrus.Fields{
			"moves": e.moveCounter,
			"lives": e.LivesRemaining(),
		}).Info("game won")
	}

	e.RenderToOutput()
	return permitted
}

func (e *GameEngine) square(x, y int) types.Status {
	status, err := e.board.GetSquare(x, y)
	if err != nil {
		panic(err)
	}
	return status
}

func (e *GameEngine) logger() logrus.FieldLogger {
	return e.log.WithField("game", e.gameID.String())
}

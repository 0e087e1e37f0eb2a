package engine

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"minewalk/board"
	"minewalk/types"
)

// infoMargin keeps the status text clear of the board.
const infoMargin = 10

// RenderToOutput redraws the whole game on the renderer.
func (e *GameEngine) RenderToOutput() {
	lines := e.View()
	e.output.Clear()
	e.output.Draw(lines)
}

// View assembles the title block and the board with the status text
// vertically centred to its left.
func (e *GameEngine) View() []types.Line {
	viewWidth, _ := e.output.Size()

	mine := e.output.SquareGlyph(types.Mine)
	title := fmt.Sprintf("%s %s %s", mine, e.cfg.Title, mine)
	titleWidth := runewidth.StringWidth(title)
	padding := nonNegative((viewWidth - titleWidth) / 2)

	lines := []types.Line{
		{},
		types.StringToLine(strings.Repeat(" ", padding)+title, types.ColorTitle),
		types.StringToLine(strings.Repeat(" ", nonNegative(padding-1))+strings.Repeat("═", titleWidth+2), types.ColorTitle),
		{},
	}

	boardLines := e.board.Render(e.state.Finished(), e.player.Position(), e.output)
	info := e.statusText()

	boardWidth := 0
	for _, l := range boardLines {
		if w := l.Width(); w > boardWidth {
			boardWidth = w
		}
	}
	padding = nonNegative(viewWidth - boardWidth - infoMargin)
	infoStart := (len(boardLines) - len(info)) / 2

	for i, line := range boardLines {
		prefix := strings.Repeat(" ", padding)
		if i >= infoStart && i-infoStart < len(info) {
			prefix = centerText(info[i-infoStart], padding)
		}
		row := types.StringToLine(prefix, types.ColorDefault)
		lines = append(lines, append(row, line...))
	}
	return lines
}

// statusText returns the instructions and status shown beside the board.
func (e *GameEngine) statusText() []string {
	var quitHint, banner, counters string

	switch e.state {
	case types.Loser:
		banner = "GAME OVER"
	case types.Winner:
		banner = "CONGRATULATIONS, YOU MADE IT!"
	default:
		if e.state == types.NotStarted || e.player.X() < 0 {
			banner = fmt.Sprintf("Starting row (1-%d), then Enter: %s_", e.board.Height(), e.desiredStartRow)
		} else {
			banner = "Position: " + board.PositionLabel(e.player.Position())
		}
	}

	if e.state.Finished() {
		quitHint = "Press ESC to quit or R to play again"
		counters = fmt.Sprintf("Mines on the field: %d", e.board.Mines())
	} else {
		counters = fmt.Sprintf("Lives remaining: %d", e.LivesRemaining())
	}

	return []string{
		"Navigate from West to East using the arrow keys",
		"Watch out for the mines!",
		"",
		quitHint,
		"",
		banner,
		counters,
		fmt.Sprintf("Moves: %d", e.moveCounter),
	}
}

// centerText centres text in a column of exactly width cells.
func centerText(text string, width int) string {
	pad := strings.Repeat(" ", nonNegative((width-runewidth.StringWidth(text))/2))
	return runewidth.FillRight(runewidth.Truncate(pad+text, width, ""), width)
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

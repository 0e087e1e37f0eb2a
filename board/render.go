package board

import (
	"strconv"
	"strings"

	"minewalk/types"
)

// PlayerGlyph marks the square the player is standing on.
const PlayerGlyph = "|>"

// GlyphSet maps a square status to its two character symbol.
type GlyphSet interface {
	SquareGlyph(status types.Status) string
}

// Render draws the board with a letter legend above and below and a row
// number legend on both sides. Rows are emitted north first. The legend
// entries matching the player's column and row are highlighted, and mines
// stay hidden unless showMines is set.
func (b *Board) Render(showMines bool, at types.Position, glyphs GlyphSet) []types.Line {
	lines := make([]types.Line, 0, b.height+4)

	// double digit row numbers need an extra column of padding
	yLegendPad := "  "
	if b.height > 9 {
		yLegendPad = "   "
	}

	xLegend := types.StringToLine(yLegendPad+"  ", types.ColorDefault)
	for x := 0; x < b.width; x++ {
		xLegend = append(xLegend, types.StringToLine(ColumnLegend(x)+" ", legendColor(at.X == x))...)
	}

	center := strings.Repeat("──", b.width)
	borderTop := types.StringToLine(yLegendPad+"┌─"+center+"─┐", types.ColorBorder)
	borderBottom := types.StringToLine(yLegendPad+"└─"+center+"─┘", types.ColorBorder)

	lines = append(lines, xLegend, borderTop)

	for y := b.height - 1; y >= 0; y-- {
		lineNum := strconv.Itoa(y + 1)
		legendPad := ""
		if b.height > 9 && y+1 <= 9 {
			legendPad = " "
		}

		line := types.Line{
			{Value: legendPad + lineNum, Color: legendColor(at.Y == y)},
			{Value: " "},
			{Value: "│", Color: types.ColorBorder},
			{Value: " "},
		}

		for x := 0; x < b.width; x++ {
			if at.X == x && at.Y == y {
				line = append(line, types.Glyph{Value: PlayerGlyph})
				continue
			}
			square := b.squares[b.index(x, y)]
			if square == types.Mine && !showMines {
				square = types.Safe
			}
			line = append(line, types.Glyph{Value: glyphs.SquareGlyph(square)})
		}

		line = append(line,
			types.Glyph{Value: " "},
			types.Glyph{Value: "│", Color: types.ColorBorder},
			types.Glyph{Value: " "},
			types.Glyph{Value: lineNum, Color: legendColor(at.Y == y)},
		)
		lines = append(lines, line)
	}

	lines = append(lines, borderBottom, xLegend)
	return lines
}

func legendColor(active bool) types.Color {
	if active {
		return types.ColorHighlight
	}
	return types.ColorLegend
}

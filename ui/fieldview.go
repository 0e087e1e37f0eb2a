// Package ui specifies custom controls for tview to play minewalk in the terminal.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"minewalk/config"
	"minewalk/types"
)

// Viewport size assumed until the field has been drawn once.
const (
	defaultWidth  = 120
	defaultHeight = 35
)

// FieldView is a tview box painting the lines produced by the game engine.
// It implements engine.Renderer.
type FieldView struct {
	Box      *tview.Box
	lines    []types.Line
	styles   map[types.Color]tcell.Style
	symbols  config.ConfigSymbols
	width    int
	height   int
	onResize func()
}

func NewFieldView(c *config.Config) *FieldView {
	field := &FieldView{
		Box:    tview.NewBox(),
		width:  defaultWidth,
		height: defaultHeight,
	}
	field.Box.SetBorder(true)
	field.Box.SetTitleAlign(tview.AlignCenter)
	field.SetConfig(c)
	field.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		// inside the border
		x, y, width, height = x+1, y+1, width-2, height-2
		if width < 1 || height < 1 {
			return x, y, 0, 0
		}
		if width != field.width || height != field.height {
			field.width, field.height = width, height
			if field.onResize != nil {
				field.onResize()
			}
		}

		for row, line := range field.lines {
			if row >= height {
				break
			}
			col := 0
			for _, g := range line {
				style, ok := field.styles[g.Color]
				if !ok {
					style = field.styles[types.ColorDefault]
				}
				for _, r := range g.Value {
					if col >= width {
						break
					}
					screen.SetContent(x+col, y+row, r, nil, style)
					col += runewidth.RuneWidth(r)
				}
			}
		}
		return x, y, width, height
	})
	return field
}

// SetConfig applies theme colours and symbols.
func (f *FieldView) SetConfig(c *config.Config) {
	colors := c.Theme.Colors
	base := tcell.StyleDefault.
		Background(tcell.PaletteColor(colors.Background)).
		Foreground(tcell.PaletteColor(colors.Foreground))
	f.styles = map[types.Color]tcell.Style{
		types.ColorDefault:   base,
		types.ColorLegend:    base.Foreground(tcell.PaletteColor(colors.Legend)),
		types.ColorHighlight: base.Foreground(tcell.PaletteColor(colors.Highlight)).Bold(true),
		types.ColorBorder:    base.Foreground(tcell.PaletteColor(colors.Border)),
		types.ColorTitle:     base.Foreground(tcell.PaletteColor(colors.Title)).Bold(true),
	}
	f.symbols = c.Theme.Symbols
	f.Box.SetBackgroundColor(tcell.PaletteColor(colors.Background))
	f.Box.SetBorderColor(tcell.PaletteColor(colors.Border))
	f.Box.SetTitleColor(tcell.PaletteColor(colors.Title))
}

// SetResizeFunc sets a function called when the drawable area changes size.
func (f *FieldView) SetResizeFunc(fn func()) {
	f.onResize = fn
}

func (f *FieldView) SetTitle(title string) {
	f.Box.SetTitle(" " + title + " ")
}

func (f *FieldView) SquareGlyph(status types.Status) string {
	switch status {
	case types.Mine:
		return f.symbols.Mine
	case types.Debris:
		return f.symbols.Debris
	}
	return f.symbols.Safe
}

func (f *FieldView) Size() (int, int) {
	return f.width, f.height
}

func (f *FieldView) Clear() {
	f.lines = nil
}

func (f *FieldView) Draw(lines []types.Line) {
	f.lines = lines
}

// Lines returns the lines currently on display.
func (f *FieldView) Lines() []types.Line {
	return f.lines
}

package ui

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"minewalk/board"
	"minewalk/config"
	"minewalk/types"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *FieldView
	sample    *board.Board
	cfg       *config.Config
	onDone    func()

	// Current selection
	selectedFieldColor  int
	selectedBorderColor int
	editingBorder       bool // true = editing border color, false = editing field color
}

// Field background colors to choose from
var fieldColors = []struct {
	code int
	name string
}{
	{0, "Black"},
	{16, "True Black"},
	{232, "Coal"},
	{234, "Charcoal"},
	{236, "Dark Gray"},
	{17, "Navy Blue"},
	{22, "Dark Green"},
	{52, "Dark Maroon"},
	{58, "Olive"},
	{94, "Saddle Brown"},
}

// Border and legend colors, bright enough to read on a dark field
var borderColors = []struct {
	code int
	name string
}{
	{12, "Blue"},
	{14, "Cyan"},
	{10, "Green"},
	{11, "Yellow"},
	{13, "Magenta"},
	{15, "White"},
	{109, "Steel Blue"},
	{214, "Orange Gold"},
	{250, "Gray"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                 cfg,
		onDone:              onDone,
		selectedFieldColor:  cfg.Theme.Colors.Background,
		selectedBorderColor: cfg.Theme.Colors.Border,
		sample:              board.New(rand.NewSource(3)),
	}
	if err := cc.sample.Init(8, 5, 0.25); err != nil {
		panic(err)
	}
	if _, err := cc.sample.OccupySquare(3, 2); err != nil {
		panic(err)
	}

	// Create the color list
	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	cc.populateColorList()

	// Handle selection change (preview)
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingBorder {
			if index >= 0 && index < len(borderColors) {
				cc.selectedBorderColor = borderColors[index].code
			}
		} else {
			if index >= 0 && index < len(fieldColors) {
				cc.selectedFieldColor = fieldColors[index].code
			}
		}
		cc.updatePreview()
	})

	// Handle selection confirm (apply)
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingBorder {
			cc.cfg.Theme.Colors.Border = cc.selectedBorderColor
			cc.save()
			// Switch back to field color selection
			cc.editingBorder = false
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.Background = cc.selectedFieldColor
		cc.save()
		onDone()
	})

	cc.preview = NewFieldView(cfg)
	cc.preview.SetTitle("Field Preview")
	cc.updatePreview()

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 34, 0, true).
		AddItem(cc.preview.Box, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) save() {
	// an unwritable config dir only loses the preference
	_ = cc.cfg.Save()
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	colors := fieldColors
	selected := cc.selectedFieldColor
	cc.colorList.SetTitle(" Select Field Color (Tab: switch to border) ")
	if cc.editingBorder {
		colors = borderColors
		selected = cc.selectedBorderColor
		cc.colorList.SetTitle(" Select Border Color (Tab: switch to field) ")
	}

	for i, c := range colors {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range colors {
		if c.code == selected {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

// updatePreview restyles the sample field with the colors being chosen.
func (cc *ColorConfigUI) updatePreview() {
	if cc.preview == nil {
		return
	}
	previewCfg := *cc.cfg
	previewCfg.Theme.Colors.Background = cc.selectedFieldColor
	previewCfg.Theme.Colors.Border = cc.selectedBorderColor
	cc.preview.SetConfig(&previewCfg)

	lines := []types.Line{{}}
	lines = append(lines, cc.sample.Render(true, types.Position{X: 2, Y: 2}, cc.preview)...)
	lines = append(lines, types.Line{}, types.StringToLine(
		fmt.Sprintf("  Field: %d  Border: %d", cc.selectedFieldColor, cc.selectedBorderColor), types.ColorLegend))
	cc.preview.Draw(lines)
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between field color and border color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingBorder = !cc.editingBorder
	cc.populateColorList()
}

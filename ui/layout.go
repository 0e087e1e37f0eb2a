package ui

import (
	"github.com/rivo/tview"
)

// ControlsHint lists the keys understood on the game page.
const ControlsHint = "  hjkl/↑↓←→ move   0-9 start row   ⏎ enter field   r new field   q menu   esc quit"

// NewHint creates the status bar shown below the field.
func NewHint() *tview.TextView {
	hint := tview.NewTextView()
	hint.SetText(ControlsHint)
	hint.SetTextColor(MenuColors.Hint)
	hint.SetBorderPadding(0, 0, 1, 1)
	return hint
}

// CreateGameLayout creates the main game layout with the field and a status bar.
func CreateGameLayout(field *FieldView, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(field.Box, 0, 1, true)
	mainFlex.AddItem(hint, 1, 0, false)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

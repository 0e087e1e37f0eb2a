package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the palette for the setup form and status bar.
var MenuColors = struct {
	Border     tcell.Color // Muted blue-gray for borders
	CardBG     tcell.Color // Dark gray background
	Label      tcell.Color // Light gray for labels
	Hint       tcell.Color // Dim gray for hints
	ButtonBG   tcell.Color // Button background
	ButtonText tcell.Color // Button text
}{
	Border:     tcell.PaletteColor(60),  // Muted blue-gray
	CardBG:     tcell.PaletteColor(236), // Dark gray
	Label:      tcell.PaletteColor(250), // Light gray
	Hint:       tcell.PaletteColor(245), // Dim gray
	ButtonBG:   tcell.PaletteColor(60),  // Nord blue
	ButtonText: tcell.PaletteColor(255), // White
}

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"minewalk/engine"
)

// difficultyLevels are the mine probabilities offered on the setup form.
var difficultyLevels = []struct {
	label  string
	factor float64
}{
	{"Stroll (5%)", 0.05},
	{"Normal (10%)", 0.1},
	{"Risky (20%)", 0.2},
	{"Reckless (30%)", 0.3},
}

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	cfg engine.GameConfig
}

// NewGameSetup creates a new game setup form starting from defaults.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		cfg:      defaults,
	}

	labels := make([]string, 0, len(difficultyLevels)+1)
	selected := -1
	for i, level := range difficultyLevels {
		labels = append(labels, level.label)
		if level.factor == defaults.DifficultyFactor {
			selected = i
		}
	}
	if selected == -1 {
		// keep a configured factor that is not one of the presets
		labels = append(labels, fmt.Sprintf("Custom (%.0f%%)", defaults.DifficultyFactor*100))
		selected = len(labels) - 1
	}

	form := tview.NewForm()

	form.AddDropDown("Mines", labels, selected, func(option string, index int) {
		if index < len(difficultyLevels) {
			setup.cfg.DifficultyFactor = difficultyLevels[index].factor
		} else {
			setup.cfg.DifficultyFactor = defaults.DifficultyFactor
		}
	})

	form.AddInputField("Lives", strconv.Itoa(defaults.StartLives), 4, tview.InputFieldInteger, func(text string) {
		if val, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && val > 0 {
			setup.cfg.StartLives = val
		}
	})

	startRow := ""
	if defaults.StartRow > 0 {
		startRow = strconv.Itoa(defaults.StartRow)
	}
	form.AddInputField(fmt.Sprintf("Start Row (1-%d)", engine.BoardSize), startRow, 4, func(text string, lastChar rune) bool {
		return lastChar >= '0' && lastChar <= '9' && len(text) <= 2
	}, func(text string) {
		if val, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && val >= 1 && val <= engine.BoardSize {
			setup.cfg.StartRow = val
		} else {
			setup.cfg.StartRow = 0
		}
	})

	form.AddButton("Start Game", func() {
		onStart(setup.cfg)
	})

	form.AddButton("Field Colors", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetFieldBackgroundColor(MenuColors.CardBG)
	form.SetLabelColor(MenuColors.Label)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	// Create help text
	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// Config returns the game configuration currently selected on the form.
func (s *GameSetupUI) Config() engine.GameConfig {
	return s.cfg
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}

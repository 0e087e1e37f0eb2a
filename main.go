// minewalk is a terminal game: cross a minefield from west to east.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"minewalk/board"
	"minewalk/config"
	"minewalk/engine"
	"minewalk/logging"
	"minewalk/player"
	"minewalk/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagDifficulty = flag.Float64("difficulty", -1, "Chance of a square holding a mine (0 to 0.99)")
	flagLives      = flag.Int("lives", 0, "Number of lives")
	flagRow        = flag.Int("row", -1, "Row to enter the field from (1-16, 0 to ask)")
	flagSeed       = flag.Int64("seed", 0, "Seed for mine placement (0 for random)")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagDebug      = flag.Bool("debug", false, "Write a debug log")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var field *ui.FieldView
var game *engine.GameEngine
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("minewalk %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	log, logCloser, err := logging.New(cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer logCloser.Close()

	quickStart := *flagQuickStart || *flagDifficulty >= 0 || *flagLives > 0 || *flagRow >= 0

	var src rand.Source
	if cfg.Game.Seed != 0 {
		src = rand.NewSource(cfg.Game.Seed)
	}

	app = tview.NewApplication()
	rootPage = tview.NewPages()

	field = ui.NewFieldView(cfg)
	game = engine.New(field, board.New(src), player.New())
	game.SetLogger(log)
	field.SetResizeFunc(game.RenderToOutput)

	gameFrame := ui.CreateGameLayout(field, ui.NewHint())

	field.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		in := ui.InputForKey(event)
		switch in.Command {
		case ui.CommandQuit:
			app.Stop()
		case ui.CommandMenu:
			rootPage.SwitchToPage("setup")
		case ui.CommandNone:
			return event
		default:
			ui.Dispatch(game, in)
		}
		return nil
	})

	setupUI := ui.NewGameSetup(cfg.GameConfig(),
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		// Refresh the field with new colors
		field.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			field.SetConfig(cfg)
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 50), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(cfg.GameConfig())
	}

	log.WithField("version", Version).Info("minewalk started")
	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		log.WithError(err).Error("application stopped")
		panic(err)
	}
}

// startGame lays a new field with the given configuration and shows it.
func startGame(gameCfg engine.GameConfig) {
	if gameCfg.Title == "" {
		gameCfg.Title = cfg.Game.Title
	}
	game.Init(gameCfg)
	rootPage.SwitchToPage("gameview")
	app.SetFocus(field.Box)
}

// applyFlags overrides configured defaults with command-line flags.
func applyFlags(c *config.Config) {
	if *flagDifficulty >= 0 {
		c.Game.DifficultyFactor = *flagDifficulty
	}
	if *flagLives > 0 {
		c.Game.Lives = *flagLives
	}
	if *flagRow >= 0 {
		c.Game.StartRow = *flagRow
	}
	if *flagSeed != 0 {
		c.Game.Seed = *flagSeed
	}
	if *flagDebug {
		c.Log.Enabled = true
		c.Log.Level = "debug"
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/mattn/go-runewidth"

	"minewalk/engine"
)

var (
	cfgFile = "minewalk/config.json"
	logFile = "minewalk/minewalk.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	Background int `json:"background"`
	Foreground int `json:"foreground"`
	Legend     int `json:"legend"`
	Highlight  int `json:"highlight"`
	Border     int `json:"border"`
	Title      int `json:"title"`
}

// ConfigSymbols are the two cell wide glyphs drawn for each square.
type ConfigSymbols struct {
	Safe   string `json:"safe"`
	Mine   string `json:"mine"`
	Debris string `json:"debris"`
}

type Theme struct {
	Colors  ConfigColors  `json:"colors"`
	Symbols ConfigSymbols `json:"symbols"`
}

// GameSettings are the defaults offered on the setup screen.
type GameSettings struct {
	Title            string  `json:"title"`
	DifficultyFactor float64 `json:"difficulty"`
	Lives            int     `json:"lives"`
	StartRow         int     `json:"start_row"`
	Seed             int64   `json:"seed"` // 0 seeds from the clock
}

// LogConfig controls the debug log written under the XDG state directory.
type LogConfig struct {
	Enabled bool   `json:"enabled"`
	Level   string `json:"level"`
	Path    string `json:"path,omitempty"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameSettings `json:"game"`
	Log   LogConfig    `json:"log"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err = readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, s := range []string{c.Theme.Symbols.Safe, c.Theme.Symbols.Mine, c.Theme.Symbols.Debris} {
		if runewidth.StringWidth(s) != 2 {
			return &InvalidConfig{fmt.Sprintf("symbol %q must be exactly two cells wide", s)}
		}
		for _, r := range s {
			if r < 32 || (r >= 127 && r <= 159) {
				return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
			}
		}
	}
	if c.Game.DifficultyFactor < 0 || c.Game.DifficultyFactor >= 1 {
		return &InvalidConfig{fmt.Sprintf("difficulty %v must be at least 0 and below 1", c.Game.DifficultyFactor)}
	}
	if c.Game.Lives < 1 {
		return &InvalidConfig{fmt.Sprintf("lives %d must be positive", c.Game.Lives)}
	}
	if c.Game.StartRow < 0 || c.Game.StartRow > engine.BoardSize {
		return &InvalidConfig{fmt.Sprintf("start row %d must be between 1 and %d, or 0 to ask", c.Game.StartRow, engine.BoardSize)}
	}
	return nil
}

// GameConfig returns the engine configuration for the configured defaults.
func (c *Config) GameConfig() engine.GameConfig {
	return engine.GameConfig{
		Title:            c.Game.Title,
		DifficultyFactor: c.Game.DifficultyFactor,
		StartLives:       c.Game.Lives,
		StartRow:         c.Game.StartRow,
	}
}

// LogPath returns the configured log path, defaulting to the XDG state directory.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	return xdg.StateFile(logFile)
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return nil
}

package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		Colors: ConfigColors{
			Background: 0,  // black
			Foreground: 2,  // green
			Legend:     15, // white
			Highlight:  9,  // red
			Border:     12, // blue
			Title:      9,
		},
		Symbols: ConfigSymbols{
			Safe:   "  ",
			Mine:   "<>",
			Debris: "XX",
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameSettings{
			Title:            "JUST FOR FUN :)",
			DifficultyFactor: 0.1,
			Lives:            5,
			StartRow:         1,
		},
		Log: LogConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

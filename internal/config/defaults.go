package config

const (
	defaultDataset      = "~/.local/share/cinelytics/movies.json"
	defaultDatabase     = "~/.local/share/cinelytics/cinelytics.db"
	defaultLogDir       = "~/.local/share/cinelytics/logs"
	defaultTopDirectors = 5
	defaultTopActors    = 10
	defaultChartEnabled = true
	defaultChartWidth   = 48
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Dataset:  defaultDataset,
			Database: defaultDatabase,
			LogDir:   defaultLogDir,
		},
		Analytics: Analytics{
			TopDirectors: defaultTopDirectors,
			TopActors:    defaultTopActors,
		},
		Chart: Chart{
			Enabled: defaultChartEnabled,
			Width:   defaultChartWidth,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package config

const (
	defaultLogDir         = "~/.local/share/mason/logs"
	defaultHistoryPath    = "~/.local/share/mason/history.db"
	defaultMATLABBinary   = "matlab"
	defaultMATLABFunction = "mason_analysis"
	defaultMATLABTimeout  = 3600
	defaultQuartoBinary   = "quarto"
	defaultReportTitle    = "mason reversal analysis"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:      defaultLogDir,
			HistoryPath: defaultHistoryPath,
		},
		MATLAB: MATLAB{
			Binary:         defaultMATLABBinary,
			Function:       defaultMATLABFunction,
			TimeoutSeconds: defaultMATLABTimeout,
		},
		Quarto: Quarto{
			Binary: defaultQuartoBinary,
		},
		Report: Report{
			Title: defaultReportTitle,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

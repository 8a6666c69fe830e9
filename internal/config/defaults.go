package config

const (
	defaultDataDir            = "~/.local/share/manna"
	defaultLogDir             = "~/.local/share/manna/logs"
	defaultExclusionFile      = "versiculos_excluidos.json"
	defaultCheckpointFile     = "checkpoint_devocionales.json"
	defaultAPIBind            = "127.0.0.1:7787"
	defaultGeminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel        = "gemini-2.0-flash-lite"
	defaultGeminiTimeout      = 60
	defaultAttempts           = 3
	defaultBackoffBaseSeconds = 4
	defaultBackoffCapSeconds  = 10
	defaultLanguage           = "es"
	defaultVersion            = "RVR1960"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:        defaultDataDir,
			LogDir:         defaultLogDir,
			ExclusionFile:  defaultExclusionFile,
			CheckpointFile: defaultCheckpointFile,
			APIBind:        defaultAPIBind,
		},
		Gemini: Gemini{
			BaseURL:        defaultGeminiBaseURL,
			Model:          defaultGeminiModel,
			TimeoutSeconds: defaultGeminiTimeout,
		},
		Generation: Generation{
			Attempts:           defaultAttempts,
			BackoffBaseSeconds: defaultBackoffBaseSeconds,
			BackoffCapSeconds:  defaultBackoffCapSeconds,
			DefaultLanguage:    defaultLanguage,
			DefaultVersion:     defaultVersion,
		},
		Archive: Archive{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

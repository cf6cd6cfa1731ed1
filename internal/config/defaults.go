package config

const (
	appleGroupContainer = "~/Library/Group Containers/243LU875E5.groups.com.apple.podcasts"

	defaultCacheDir            = appleGroupContainer + "/Library/Cache/Assets/TTML"
	defaultDatabasePath        = appleGroupContainer + "/Documents/MTLibrary.sqlite"
	defaultOutputDir           = "~/transcripts"
	defaultLogDir              = "~/.local/share/recast/logs"
	defaultTranscriptExtension = ".ttml"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir:     defaultCacheDir,
			DatabasePath: defaultDatabasePath,
			OutputDir:    defaultOutputDir,
			LogDir:       defaultLogDir,
		},
		Extraction: Extraction{
			IncludeTimestamps:   false,
			TranscriptExtension: defaultTranscriptExtension,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// Package constants defines shared filenames and defaults for lintrc.
package constants

const (
	// DefaultConfigName is the config file looked for when --config is not given.
	DefaultConfigName = ".eslintrc.json"

	// LogFilename is the rotating log file under the XDG data directory.
	LogFilename = "lintrc.log"

	// CacheFilename is the resolution cache database under the XDG data directory.
	CacheFilename = "cache.db"
)

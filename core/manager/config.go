package manager

import "time"

// Source values for Config.Source.
const (
	SourceLocal   = "local"
	SourceStorage = "storage"
)

// Config holds configuration for the project scanned by the manager.
type Config struct {
	// Root is the project folder, a directory path or a bucket prefix.
	Root string `mapstructure:"root" default:"."`
	// Source selects the file system backend (local, storage).
	Source string `mapstructure:"source" default:"local"`
	// MaxDepth bounds directory recursion below the root.
	MaxDepth int `mapstructure:"max_depth" default:"64"`
	// FanOut bounds concurrent subdirectory walks per directory.
	FanOut int `mapstructure:"fan_out" default:"8"`
	// LoadTimeoutSeconds bounds a single loader invocation.
	LoadTimeoutSeconds int `mapstructure:"load_timeout_seconds" default:"30"`
	// Persist enables saving the registry to the database.
	Persist bool `mapstructure:"persist" default:"true"`
}

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceLocal, SourceStorage:
		return true
	default:
		return false
	}
}

// LoadTimeout returns the loader timeout, or zero when unbounded.
func (c Config) LoadTimeout() time.Duration {
	if c.LoadTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.LoadTimeoutSeconds) * time.Second
}

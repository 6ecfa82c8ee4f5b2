package watch

import "time"

// Config holds configuration for the watcher.
type Config struct {
	// DebounceMillis is the quiet period before a batch of events is applied.
	DebounceMillis int `mapstructure:"debounce_ms" default:"250"`
}

// Debounce returns the quiet period, at least one millisecond.
func (c Config) Debounce() time.Duration {
	if c.DebounceMillis <= 0 {
		return time.Millisecond
	}
	return time.Duration(c.DebounceMillis) * time.Millisecond
}

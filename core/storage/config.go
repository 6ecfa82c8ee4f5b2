package storage

import (
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Config holds the object storage serving a project tree.
type Config struct {
	// Endpoint is host:port, optionally with an http:// or https:// scheme.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL forces TLS. An https:// endpoint enables it as well.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the project tree; PROJECT_ROOT is a prefix inside it.
	Bucket string `mapstructure:"bucket" default:"assets"`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and the wait for the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Host returns the endpoint without scheme or trailing slash.
func (c Config) Host() string {
	host := strings.TrimPrefix(c.Endpoint, "http://")
	host = strings.TrimPrefix(host, "https://")
	return strings.TrimSuffix(host, "/")
}

// Secure reports whether the client must use TLS.
func (c Config) Secure() bool {
	return c.UseSSL || strings.HasPrefix(c.Endpoint, "https://")
}

// Timeout returns the configured timeout, 30s when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

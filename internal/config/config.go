// Package config holds process configuration sourced from viper.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// Port is the listen port for the HTTP API.
	Port int
	// Locale is the default catalog locale for searches.
	Locale string
	// AuthToken, when set, is required in the Authorization header of
	// inbound requests.
	AuthToken string
	// CacheTTL is the time-to-live for cached search results.
	CacheTTL time.Duration
	// CacheDBFile, when set, switches the result cache to the persistent
	// SQLite store at this path.
	CacheDBFile string
)

// InitConfig initializes the global configuration from viper.
func InitConfig() {
	viper.SetDefault("port", 3000)
	viper.SetDefault("locale", "de")
	viper.SetDefault("cache.ttl", "10m")

	Port = viper.GetInt("port")
	Locale = viper.GetString("locale")
	AuthToken = viper.GetString("auth_token")
	CacheDBFile = viper.GetString("cache.dbfile")

	CacheTTL = 10 * time.Minute
	if ttl, err := time.ParseDuration(viper.GetString("cache.ttl")); err == nil && ttl > 0 {
		CacheTTL = ttl
	}
}

package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	InitConfig()

	assert.Equal(t, 3000, Port)
	assert.Equal(t, "de", Locale)
	assert.Empty(t, AuthToken)
	assert.Empty(t, CacheDBFile)
	assert.Equal(t, 10*time.Minute, CacheTTL)
}

func TestInitConfigOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("port", 8080)
	viper.Set("locale", "sv")
	viper.Set("auth_token", "secret")
	viper.Set("cache.ttl", "30m")
	viper.Set("cache.dbfile", "/tmp/cache.db")

	InitConfig()

	assert.Equal(t, 8080, Port)
	assert.Equal(t, "sv", Locale)
	assert.Equal(t, "secret", AuthToken)
	assert.Equal(t, "/tmp/cache.db", CacheDBFile)
	assert.Equal(t, 30*time.Minute, CacheTTL)
}

func TestInitConfigInvalidTTLFallsBack(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("cache.ttl", "not-a-duration")
	InitConfig()

	assert.Equal(t, 10*time.Minute, CacheTTL)
}

// Package cmd wires configuration, logging and the HTTP server together.
package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/shelfbridge/storytel-provider/internal/cache"
	"github.com/shelfbridge/storytel-provider/internal/config"
	"github.com/shelfbridge/storytel-provider/internal/provider"
	"github.com/shelfbridge/storytel-provider/internal/server"
	"github.com/shelfbridge/storytel-provider/internal/storytel"
)

// CLI represents the complete command structure for the provider.
type CLI struct {
	// Global flags
	Port      int    `help:"Port for the HTTP API" default:"3000" env:"PORT"`
	Locale    string `help:"Default catalog locale for searches" default:"de" env:"STORYTEL_LOCALE"`
	AuthToken string `help:"Require this value in the Authorization header of inbound requests" env:"AUTH_TOKEN"`

	// Cache flags
	CacheTTL    string `help:"Search result cache time-to-live (e.g. 10m)" default:"10m"`
	CacheDBFile string `help:"Path to a SQLite cache database; empty keeps the cache in memory"`

	Serve ServeCmd `cmd:"" default:"1" help:"Start the metadata provider server"`
}

// ServeCmd starts the HTTP server.
type ServeCmd struct{}

// Run starts the server and blocks until it fails.
func (s *ServeCmd) Run() error {
	store, err := newStore()
	if err != nil {
		return err
	}

	catalog := storytel.NewClient()
	engine := provider.New(catalog, store, config.Locale)
	srv := server.New(engine, config.AuthToken)

	addr := fmt.Sprintf(":%d", config.Port)
	slog.Info("Storytel provider listening", "addr", addr, "locale", config.Locale)
	return http.ListenAndServe(addr, srv)
}

func newStore() (cache.Store, error) {
	if config.CacheDBFile == "" {
		return cache.NewMemory(config.CacheTTL), nil
	}

	store, err := cache.NewSQLite(config.CacheDBFile, config.CacheTTL)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	slog.Info("Using persistent result cache", "dbfile", config.CacheDBFile)
	return store, nil
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()

	// Create CLI instance
	var cli CLI

	// Parse command line with Kong
	ctx := kong.Parse(&cli,
		kong.Name("storytel-provider"),
		kong.Description("An Audiobookshelf custom metadata provider for the Storytel catalog."),
		kong.UsageOnError(),
	)

	initConfig(&cli)

	// Execute the selected command
	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig(cli *CLI) {
	viper.SetDefault("port", 3000)
	viper.SetDefault("locale", "de")
	viper.SetDefault("cache.ttl", "10m")

	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// CLI flags (and their bound environment variables) win over the file.
	viper.Set("port", cli.Port)
	viper.Set("locale", cli.Locale)
	viper.Set("cache.ttl", cli.CacheTTL)
	if cli.AuthToken != "" {
		viper.Set("auth_token", cli.AuthToken)
	}
	if cli.CacheDBFile != "" {
		viper.Set("cache.dbfile", cli.CacheDBFile)
	}

	config.InitConfig()
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}

// Package commands implements the kvctl command line.
package commands

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	kvns "github.com/tarantool/go-kvns"
	"github.com/tarantool/go-kvns/internal/config"
)

// Flags holds the global flag values.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Backend    string
	Namespace  string
	FileRoot   string
}

// apply overrides config values with the flags that were set.
func (f *Flags) apply(cfg *config.Config) {
	if f.Backend != "" {
		cfg.Backend = config.Backend(f.Backend)
	}

	if f.Namespace != "" {
		cfg.Namespace = f.Namespace
	}

	if f.FileRoot != "" {
		cfg.File.Root = f.FileRoot
	}
}

// App is populated by the root Before hook and shared by all commands.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Namespace *kvns.Namespace
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "kvctl", "config.yaml")
}

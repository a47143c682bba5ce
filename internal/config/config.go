// Package config loads the kvctl configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tarantool/go-kvns/marshaller"
)

// Backend names a storage driver.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendS3     Backend = "s3"
)

// Config is the kvctl configuration.
type Config struct {
	Backend   Backend    `yaml:"backend"`
	Namespace string     `yaml:"namespace"`
	File      FileConfig `yaml:"file"`
	S3        S3Config   `yaml:"s3"`
}

// FileConfig configures the filesystem backend.
type FileConfig struct {
	Root string `yaml:"root"`
}

// S3Config configures the object-store backend.
type S3Config struct {
	Endpoint     string `yaml:"endpoint"`
	Region       string `yaml:"region"`
	AccessKey    string `yaml:"access_key"`
	SecretKey    string `yaml:"secret_key"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Backend:   BackendFile,
		Namespace: "default",
		File: FileConfig{
			Root: "./kv-data",
		},
		S3: S3Config{
			Endpoint:     "",
			Region:       "us-east-1",
			AccessKey:    "",
			SecretKey:    "",
			UsePathStyle: true,
		},
	}
}

// Load reads configuration from the given path over the defaults.
// If configPath is empty or doesn't exist, the defaults are returned.
// The result is not validated, so that flags can still override it.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &cfg, nil
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := marshaller.NewTypedYamlMarshaller[Config]().UnmarshalInto(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &cfg, nil
}

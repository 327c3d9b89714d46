package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr           string        `yaml:"addr"`
	DatabasePath   string        `yaml:"database_path"`
	APITimeout     time.Duration `yaml:"timeout"`
	StorageTimeout time.Duration `yaml:"storage_timeout"`
}

// LoadConfig builds the configuration from environment variables and,
// when path is non-empty, overlays the YAML file on top.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:           getEnv("QUIZCRAFT_ADDR", ":8080"),
		DatabasePath:   getEnv("QUIZCRAFT_DATABASE_PATH", "quizcraft.db"),
		APITimeout:     15 * time.Second,
		StorageTimeout: 5 * time.Second,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate reports configuration values the server cannot start with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.StorageTimeout <= 0 {
		return fmt.Errorf("storage_timeout must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

// Package config loads service configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds all service settings.
type Config struct {
	Server struct {
		Port        string `yaml:"port"`
		ReadTimeout int    `yaml:"read_timeout"`
	} `yaml:"server"`

	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`
}

// Default returns the configuration used when no file or env vars are set.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = "3000"
	cfg.Server.ReadTimeout = 60
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Password = "postgres"
	cfg.Database.Name = "catalyst"
	cfg.Database.SSLMode = "disable"
	return cfg
}

// Load reads the YAML file at path (if it exists) over the defaults, then
// applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	overrideEnv(&cfg.Server.Port, "MS_PORT")
	overrideEnv(&cfg.Database.Host, "DB_HOST")
	overrideEnv(&cfg.Database.Port, "DB_PORT")
	overrideEnv(&cfg.Database.User, "DB_USER")
	overrideEnv(&cfg.Database.Password, "DB_PASS")
	overrideEnv(&cfg.Database.Name, "DB_NAME")
	overrideEnv(&cfg.Database.SSLMode, "DB_SSLMODE")

	return cfg, nil
}

// DatabaseURL builds the Postgres connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User, c.Database.Password,
		c.Database.Host, c.Database.Port,
		c.Database.Name, c.Database.SSLMode)
}

func overrideEnv(target *string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		*target = val
	}
}

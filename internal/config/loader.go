package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	EnvDictionary    = "TYPOMAP_DICTIONARY"
	EnvRedisAddr     = "TYPOMAP_REDIS_ADDR"
	EnvRedisPassword = "TYPOMAP_REDIS_PASSWORD"
	EnvRedisDB       = "TYPOMAP_REDIS_DB"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads path on top of Default and then applies environment overrides.
// An empty path skips the file. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read the config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

// ApplyEnv overrides fields from TYPOMAP_* variables. Unset or empty variables are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvDictionary); v != "" {
		c.Dictionary = v
	}
	if v := getenv(EnvRedisAddr); v != "" {
		c.Redis.Addr = v
	}
	if v := getenv(EnvRedisPassword); v != "" {
		c.Redis.Password = v
	}
	if v := getenv(EnvRedisDB); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = i
		}
	}
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Marshal renders c as YAML, e.g. for writing a starter config.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

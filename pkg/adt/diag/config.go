package diag

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "ADT"
	EnvTest   = "test"

	FormatJSON    = "json"
	FormatConsole = "console"
)

var ErrUnknownFormat = errors.New("unknown log format")

type Config struct {
	Env       string `mapstructure:"env"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// IsTest reports whether the config describes a test run.
func (c Config) IsTest() bool {
	return strings.EqualFold(c.Env, EnvTest)
}

// Load reads Config from the process environment. Each existing file in
// envFiles is loaded first; variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("diag: load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetDefault("env", "production")
	v.SetDefault("log_level", "error")
	v.SetDefault("log_format", FormatJSON)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("diag: decode config: %w", err)
	}
	return cfg, nil
}

// Package config resolves process configuration from dotenv files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	// EnvEnvironment selects the deployment stage reported by /api/info.
	EnvEnvironment = "FASTAPI_ENV"
	// EnvPort overrides the listen port.
	EnvPort = "PORT"
	// EnvLogLevel sets the minimum log severity.
	EnvLogLevel = "LOG_LEVEL"

	DefaultEnvironment = "development"
	DefaultPort        = 8000
	DefaultLogLevel    = zapcore.InfoLevel

	defaultDotEnv = ".env"
)

// Config holds the values the server needs at startup.
type Config struct {
	Environment string
	Port        int
	LogLevel    zapcore.Level
}

// Addr returns the listen address, bound to all interfaces.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Environment: DefaultEnvironment,
		Port:        DefaultPort,
		LogLevel:    DefaultLogLevel,
	}
}

// Load reads the given dotenv files (".env" when none are given) into the
// process environment and builds a Config from it. Variables already present
// in the environment win over dotenv values. Missing dotenv files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{defaultDotEnv}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config using lookup to read variables.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvEnvironment); ok && strings.TrimSpace(v) != "" {
		cfg.Environment = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvPort); ok && strings.TrimSpace(v) != "" {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvPort, err)
		}
		if port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("parse %s: port %d out of range", EnvPort, port)
		}
		cfg.Port = port
	}

	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		level, err := zapcore.ParseLevel(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// Package config reads runtime defaults from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvStart       = "GRADIENT_START"
	EnvStop        = "GRADIENT_STOP"
	EnvCompression = "GRADIENT_COMPRESSION"
	EnvLogLevel    = "GRADIENT_LOG_LEVEL"
	EnvLogFormat   = "GRADIENT_LOG_FORMAT"
	EnvPort        = "GRADIENT_PORT"
)

// Config holds defaults for the CLI and server. Flags override them.
type Config struct {
	Start       string // Start color (default: #e6e6e6)
	Stop        string // Stop color (default: #b4b4b4)
	Compression string // default, none, speed or best
	LogLevel    string // logrus level name (default: info)
	LogFormat   string // text or json (default: text)
	Port        string // HTTP port for serve (default: 8080)
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Start:       "#e6e6e6",
		Stop:        "#b4b4b4",
		Compression: "default",
		LogLevel:    "info",
		LogFormat:   "text",
		Port:        "8080",
	}
}

// Load reads the given .env files (".env" when none are given) into the
// process environment and returns the resulting configuration. Variables
// already set in the environment win over file values. A missing file is
// reported through warnings, not as an error.
func Load(files ...string) (Config, []string, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	var warnings []string
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				warnings = append(warnings, fmt.Sprintf("no %s file found, using environment and defaults", f))
				continue
			}
			return Config{}, warnings, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Defaults()
	override(&cfg.Start, EnvStart)
	override(&cfg.Stop, EnvStop)
	override(&cfg.Compression, EnvCompression)
	override(&cfg.LogLevel, EnvLogLevel)
	override(&cfg.LogFormat, EnvLogFormat)
	override(&cfg.Port, EnvPort)
	return cfg, warnings, nil
}

func override(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

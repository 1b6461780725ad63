package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// Config holds the CLI configuration, read from a JSON file.
type Config struct {
	LogLevel      string `json:"log_level"`
	DataDir       string `json:"data_dir"`
	DatabasePath  string `json:"database_path"`
	DefaultOrder  int    `json:"default_order"`
	SentenceCount int    `json:"sentence_count"`
	WordLimit     int    `json:"word_limit"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "info",
		DataDir:       "./data",
		DatabasePath:  "./data/markovtext.db?_journal_mode=WAL&_busy_timeout=5000",
		DefaultOrder:  2,
		SentenceCount: 1,
		WordLimit:     1000,
	}
}

// loadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func loadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// The CLI can still run with defaults, so only warn.
				fmt.Printf("warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Package config implements JSON-on-disk configuration for the vdfproof
// demonstration binary: defaults supplied by a constructor, marshaled
// with encoding/json, written with 0600 permissions.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the config file's name within its containing directory.
const FileName = "vdfproof.json"

// Config holds the demonstration binary's settings: session parameters
// plus peer-transport and listen-address settings. The internal/peer and
// internal/keyagreement packages do not read it.
type Config struct {
	ModulusBits   int    `json:"modulus_bits"`
	TimeParameter uint64 `json:"time_parameter"`
	ListenOn      string `json:"listen_on"`
	Transport     string `json:"transport"` // "http" or "grpc"
	LogLevel      string `json:"log_level"`
	Version       int    `json:"version"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// Default returns reasonable defaults for the demonstration binary.
func Default() *Config {
	return &Config{
		ModulusBits:   2048,
		TimeParameter: 1_000_000,
		ListenOn:      "127.0.0.1:8420",
		Transport:     "http",
		LogLevel:      "info",
		Version:       1,
		CreatedAt:     currentTimestamp(),
		UpdatedAt:     currentTimestamp(),
	}
}

// Load reads a config from path, creating a default one if it doesn't
// exist yet.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating its parent directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg.UpdatedAt = currentTimestamp()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func currentTimestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Package config provides configuration management for Wallfetch

// Settings holds everything read from config.yaml.
type Settings struct {
	API           APISettings     `yaml:"api"`
	Search        SearchSettings  `yaml:"search"`
	DirectoryFile string          `yaml:"directory_file"`
	Server        ServerSettings  `yaml:"server"`
	History       HistorySettings `yaml:"history"`
}

// APISettings configures the wallhaven client.
type APISettings struct {
	BaseURL           string        `yaml:"base_url,omitempty"`  // empty uses the public wallhaven endpoint
	UserAgent         string        `yaml:"user_agent"`
	Timeout           time.Duration `yaml:"timeout"`             // 0 leaves the http.Client default (none)
	RequestsPerMinute int           `yaml:"requests_per_minute"` // 0 disables client side throttling
}

// SearchSettings overrides the wallhaven search policy. Empty fields keep
// the wallhaven package defaults.
type SearchSettings struct {
	Sorting    string `yaml:"sorting,omitempty"`
	Order      string `yaml:"order,omitempty"`
	Seed       string `yaml:"seed,omitempty"`
	Page       int    `yaml:"page,omitempty"`
	Categories string `yaml:"categories,omitempty"`
	Purity     string `yaml:"purity,omitempty"`
	AtLeast    string `yaml:"atleast,omitempty"`
	Ratios     string `yaml:"ratios,omitempty"`
	Colors     string `yaml:"colors,omitempty"`
	TopRange   string `yaml:"top_range,omitempty"`
}

// ServerSettings configures the local invocation API.
type ServerSettings struct {
	Port int `yaml:"port"`
}

// HistorySettings configures the wallpaper history database.
type HistorySettings struct {
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

// Default returns the settings used when no config file exists.
func Default() *Settings {
	return &Settings{
		API: APISettings{
			UserAgent:         AppName + "/" + AppVersion,
			RequestsPerMinute: 45,
		},
		DirectoryFile: DefaultDirectoryFile,
		Server:        ServerSettings{Port: DefaultServerPort},
		History:       HistorySettings{Path: filepath.Join(GetPath(), "history.db")},
	}
}

// GetPath returns the path to the user's config directory.
func GetPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "." + strings.ToLower(AppName)
	}
	return filepath.Join(dir, strings.ToLower(AppName))
}

// GetFilename returns the path to the user's config file.
func GetFilename() string {
	return filepath.Join(GetPath(), "config.yaml")
}

// Load reads settings from filename. A missing file is not an error and
// yields Default(); fields left empty in the file keep their defaults.
func Load(filename string) (*Settings, error) {
	s := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", filename, err)
	}
	s.fillDefaults()
	return s, nil
}

// Save writes the settings to filename, creating its directory.
func (s *Settings) Save(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}

// fillDefaults restores required fields a partial file may have zeroed.
func (s *Settings) fillDefaults() {
	d := Default()
	if s.API.UserAgent == "" {
		s.API.UserAgent = d.API.UserAgent
	}
	if s.DirectoryFile == "" {
		s.DirectoryFile = d.DirectoryFile
	}
	if s.Server.Port == 0 {
		s.Server.Port = d.Server.Port
	}
	if s.History.Path == "" {
		s.History.Path = d.History.Path
	}
}

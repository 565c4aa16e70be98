package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	defaultConfigName      = ".aocdown"
	defaultBaseURL         = "https://adventofcode.com"
	defaultUA              = "aocdown (+https://github.com/aocdown/aocdown)"
	defaultScaffoldCommand = "cargo"
)

var (
	errConfigNotFound = errors.New("config file not found")
	errMissingSession = errors.New("session_cookie is required in config")
)

// appConfig holds the contents of the .aocdown file.
type appConfig struct {
	SessionCookie   string `json:"session_cookie"`
	Year            *int   `json:"year,omitempty"`
	Day             *int   `json:"day,omitempty"`
	InitScaffold    *bool  `json:"init_scaffold,omitempty"`
	InitCargo       *bool  `json:"init_cargo,omitempty"`
	BaseURL         string `json:"base_url,omitempty"`
	UserAgent       string `json:"user_agent,omitempty"`
	ScaffoldCommand string `json:"scaffold_command,omitempty"`
}

// scaffoldEnabled reports whether the project skeleton should be created.
// init_scaffold takes precedence over the older init_cargo key.
func (c appConfig) scaffoldEnabled() bool {
	if c.InitScaffold != nil {
		return *c.InitScaffold
	}
	if c.InitCargo != nil {
		return *c.InitCargo
	}
	return false
}

// configPath returns the config location: the explicit flag value, then
// AOCDOWN_CONFIG, then .aocdown in the working directory.
func configPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv("AOCDOWN_CONFIG")); p != "" {
		return p
	}
	return defaultConfigName
}

// loadConfig loads configuration from the specified path. Unlike optional
// fields, a missing file or session cookie is an error.
func loadConfig(path string) (appConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return appConfig{}, fmt.Errorf("%w: %s", errConfigNotFound, path)
		}
		return appConfig{}, fmt.Errorf("stat config: %w", err)
	}

	var cfg appConfig
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return appConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.SessionCookie = strings.TrimSpace(cfg.SessionCookie)
	if cfg.SessionCookie == "" {
		return appConfig{}, errMissingSession
	}
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if strings.TrimSpace(cfg.UserAgent) == "" {
		cfg.UserAgent = defaultUA
	}
	if strings.TrimSpace(cfg.ScaffoldCommand) == "" {
		cfg.ScaffoldCommand = defaultScaffoldCommand
	}
	return cfg, nil
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configPath       = ".pydocmd.yml"
	defaultCacheSize = 256
)

// config carries the optional settings that travel outside the flag surface:
// interpreter selection and provider cache sizing.
type config struct {
	Python    string `yaml:"python" validate:"omitempty"`
	CacheSize int    `yaml:"cacheSize" validate:"omitempty,gt=0"`
}

// loadConfig reads .pydocmd.yml from the working directory when present and
// applies .env/environment overrides. Missing files are not an error.
func loadConfig() (*config, error) {
	cfg := &config{}
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configPath, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, err
	}
	_ = godotenv.Load() // a .env file is optional
	if python := os.Getenv("PYDOCMD_PYTHON"); python != "" {
		cfg.Python = python
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", configPath, err)
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = defaultCacheSize
	}
	return cfg, nil
}

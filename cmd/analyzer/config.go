package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/config"
)

// loadConfig resolves the effective configuration: environment values,
// overridden by the optional --config file, with defaults last.
func loadConfig() (*config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		fileCfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		if fileCfg.Port != 0 {
			cfg.Port = fileCfg.Port
		}
		if fileCfg.DatabaseURL != "" {
			cfg.DatabaseURL = fileCfg.DatabaseURL
		}
		if fileCfg.RankLimit != 0 {
			cfg.RankLimit = fileCfg.RankLimit
		}
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
		cfg.LogJSON = cfg.LogJSON || fileCfg.LogJSON
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

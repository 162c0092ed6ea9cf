package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service *svcConfig
}

type svcConfig struct {
	LogLevel      string `envconfig:"MIGRATION_DASHBOARD_LOG_LEVEL" default:"info"`
	DefaultSource string `envconfig:"MIGRATION_DASHBOARD_SOURCE" default:"rhv"`
	SheetName     string `envconfig:"MIGRATION_DASHBOARD_SHEET" default:""`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

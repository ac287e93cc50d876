package config

import (
	"time"

	"github.com/bigredeye/studreg/pkg/conf"
	"github.com/pkg/errors"
)

const DefaultStoragePath = "students.txt"

type Config struct {
	Storage struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"storage"`

	// Size 0 keeps every lookup a plain file scan.
	Cache struct {
		Size int64         `mapstructure:"size"`
		TTL  time.Duration `mapstructure:"ttl"`
	} `mapstructure:"cache"`

	Log struct {
		Dev        bool   `mapstructure:"dev"`
		Level      string `mapstructure:"level"`
		File       string `mapstructure:"file"`
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
	} `mapstructure:"log"`
}

func ParseConfig(path string) (*Config, error) {
	config := &Config{}
	err := conf.ParseConfig(config,
		conf.EnvPrefix("STUDREG"),
		conf.File(path),
		conf.Defaults(map[string]interface{}{
			"storage.path":    DefaultStoragePath,
			"cache.ttl":       "10m",
			"log.dev":         true,
			"log.level":       "warn",
			"log.max_size_mb": 10,
			"log.max_backups": 3,
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}
	if config.Storage.Path == "" {
		return nil, errors.New("Storage path is empty")
	}
	return config, nil
}

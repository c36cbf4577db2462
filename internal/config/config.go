// Package config loads the atlas configuration file and seeds defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// StorageConfig selects and configures the storage backend.
type StorageConfig struct {
	Type       string `json:"type" mapstructure:"type"`
	SqlitePath string `json:"sqlitePath" mapstructure:"sqlitePath"`
}

// Load reads configuration from a JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName("atlas.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// SetDefaults seeds every config key with its default value. Split out so
// tests and tools can run without a config file on disk.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./atlaslogs")

	viper.SetDefault("storage.type", "sqlite")
	viper.SetDefault("storage.sqlitePath", "./atlas.db")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "atlas")

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "atlas-metrics")
	viper.SetDefault("influx.bucket", "atlas_edits")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")
}

// Storage returns the configured storage settings.
func Storage() StorageConfig {
	return StorageConfig{
		Type:       viper.GetString("storage.type"),
		SqlitePath: viper.GetString("storage.sqlitePath"),
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ReadTimeoutSeconds     int    `mapstructure:"read_timeout_seconds"     validate:"gt=0"`
	WriteTimeoutSeconds    int    `mapstructure:"write_timeout_seconds"    validate:"gt=0"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// ReadTimeout returns the HTTP read timeout.
func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the HTTP write timeout.
func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// ShutdownTimeout bounds how long in-flight requests get to finish on shutdown.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// StoreConfig contains settings for the in-memory task store.
type StoreConfig struct {
	// ShardCount is the number of independently locked partitions.
	ShardCount int `mapstructure:"shard_count" validate:"gt=0,lte=1024"`
}

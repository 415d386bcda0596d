/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads the multitype CLI configuration.
//
// Values come from, in increasing precedence: Defaults, a YAML config file, and
// MULTITYPE_* environment variables. A .env file in the working directory is
// loaded into the environment first; it never overrides variables already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	mterrors "github.com/suparena/multitype/errors"
	"github.com/suparena/multitype/internal/log"
)

const (
	SourceFile     = "file"
	SourceDynamoDB = "dynamodb"

	// EnvPrefix prefixes every environment override, e.g. MULTITYPE_DYNAMODB_TABLE.
	EnvPrefix = "MULTITYPE"
)

// Config holds all configuration options for the multitype CLI.
type Config struct {
	Source    string         `mapstructure:"source"` // "file" (default) or "dynamodb"
	File      string         `mapstructure:"file"`
	DynamoDB  DynamoDBConfig `mapstructure:"dynamodb"`
	CacheTTL  time.Duration  `mapstructure:"cache_ttl"` // 0 disables the cache
	Strict    bool           `mapstructure:"strict"`    // fail on unknown entity names
	LogLevel  string         `mapstructure:"log_level"`
	MaxPooled int            `mapstructure:"max_pooled"`
}

// DynamoDBConfig selects the table partition the feed is read from.
type DynamoDBConfig struct {
	Table           string `mapstructure:"table"`
	Partition       string `mapstructure:"partition"`
	SortKeyPrefix   string `mapstructure:"sort_key_prefix"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	PageSize        int32  `mapstructure:"page_size"`
	MaxRetries      int    `mapstructure:"max_retries"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Source: SourceFile,
		File:   "feed.yaml",
		DynamoDB: DynamoDBConfig{
			PageSize:   100,
			MaxRetries: 3,
		},
		LogLevel:  "info",
		MaxPooled: 5,
	}
}

// Load reads the configuration. An empty path looks for multitype.yaml in the
// working directory and falls back to defaults when none exists.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v, Defaults())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("multitype")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "no config file found, using defaults")
	} else {
		log.Debug(log.CatConfig, "config loaded", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it during Unmarshal.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("source", d.Source)
	v.SetDefault("file", d.File)
	v.SetDefault("cache_ttl", d.CacheTTL)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("max_pooled", d.MaxPooled)
	v.SetDefault("dynamodb.table", d.DynamoDB.Table)
	v.SetDefault("dynamodb.partition", d.DynamoDB.Partition)
	v.SetDefault("dynamodb.sort_key_prefix", d.DynamoDB.SortKeyPrefix)
	v.SetDefault("dynamodb.region", d.DynamoDB.Region)
	v.SetDefault("dynamodb.endpoint", d.DynamoDB.Endpoint)
	v.SetDefault("dynamodb.access_key_id", d.DynamoDB.AccessKeyID)
	v.SetDefault("dynamodb.secret_access_key", d.DynamoDB.SecretAccessKey)
	v.SetDefault("dynamodb.page_size", d.DynamoDB.PageSize)
	v.SetDefault("dynamodb.max_retries", d.DynamoDB.MaxRetries)
}

// Validate checks that the selected source is fully specified.
func (c Config) Validate() error {
	switch c.Source {
	case SourceFile:
		if c.File == "" {
			return mterrors.NewValidationError("file", "is required when source is file")
		}
	case SourceDynamoDB:
		if c.DynamoDB.Table == "" {
			return mterrors.NewValidationError("dynamodb.table", "is required when source is dynamodb")
		}
		if c.DynamoDB.Partition == "" {
			return mterrors.NewValidationError("dynamodb.partition", "is required when source is dynamodb")
		}
		if c.DynamoDB.PageSize < 0 {
			return mterrors.NewValidationError("dynamodb.page_size", "must not be negative")
		}
	default:
		return mterrors.NewValidationError("source", fmt.Sprintf("unknown source %q (want %s or %s)", c.Source, SourceFile, SourceDynamoDB))
	}
	if c.CacheTTL < 0 {
		return mterrors.NewValidationError("cache_ttl", "must not be negative")
	}
	if c.MaxPooled < 0 {
		return mterrors.NewValidationError("max_pooled", "must not be negative")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return mterrors.NewValidationError("log_level", err.Error())
	}
	return nil
}

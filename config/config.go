/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config resolves redshiftctl settings from flags, environment,
// .env files and the YAML config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/suparena/redshiftctl/registry"
)

// EnvPrefix is prepended to every environment variable redshiftctl reads.
const EnvPrefix = "REDSHIFTCTL"

// Keys shared by the flag bindings and the config file.
const (
	KeyRegion        = "region"
	KeyProfile       = "profile"
	KeyEndpointURL   = "endpoint-url"
	KeyOutput        = "output"
	KeyVerbose       = "verbose"
	KeyAuditTable    = "audit-table"
	KeyConfirmImpact = "confirm-impact"
	KeyPageSize      = "page-size"
)

var outputFormats = []string{"table", "json", "yaml", "text"}

// Config is the resolved global configuration.
type Config struct {
	Region        string
	Profile       string
	EndpointURL   string
	Output        string
	Verbose       bool
	AuditTable    string
	ConfirmImpact registry.Impact
	PageSize      int32
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutput, "table")
	v.SetDefault(KeyConfirmImpact, registry.ImpactHigh.String())
	v.SetDefault(KeyPageSize, 100)
}

// LoadDotEnv loads a .env file from the working directory when present.
// Variables already set in the environment win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Init wires env lookup and the config file into v. cfgFile overrides the
// default $HOME/.redshiftctl.yaml. A missing default file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Debug("failed to find home directory", "error", err)
			return nil
		}
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".redshiftctl")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	slog.Debug("using config file", "file", v.ConfigFileUsed())
	return nil
}

// Resolve reads the resolved values out of v.
func Resolve(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Region:      v.GetString(KeyRegion),
		Profile:     v.GetString(KeyProfile),
		EndpointURL: v.GetString(KeyEndpointURL),
		Output:      strings.ToLower(v.GetString(KeyOutput)),
		Verbose:     v.GetBool(KeyVerbose),
		AuditTable:  v.GetString(KeyAuditTable),
		PageSize:    v.GetInt32(KeyPageSize),
	}

	if !slices.Contains(outputFormats, cfg.Output) {
		return nil, fmt.Errorf("invalid output format %q (valid: %s)", cfg.Output, strings.Join(outputFormats, ", "))
	}

	impact, err := registry.ParseImpact(v.GetString(KeyConfirmImpact))
	if err != nil {
		return nil, err
	}
	cfg.ConfirmImpact = impact

	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("invalid page size %d: must be positive", cfg.PageSize)
	}
	return cfg, nil
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/redshiftctl/registry"
)

func TestResolveDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Resolve(v)
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, registry.ImpactHigh, cfg.ConfirmImpact)
	assert.Equal(t, int32(100), cfg.PageSize)
}

func TestConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "redshiftctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: eu-west-1\noutput: json\nconfirm-impact: medium\n"), 0o600))

	t.Setenv("REDSHIFTCTL_PROFILE", "analytics")
	t.Setenv("REDSHIFTCTL_AUDIT_TABLE", "redshiftctl-audit")

	v := viper.New()
	SetDefaults(v)
	require.NoError(t, Init(v, path))

	cfg, err := Resolve(v)
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "analytics", cfg.Profile)
	assert.Equal(t, "redshiftctl-audit", cfg.AuditTable)
	assert.Equal(t, registry.ImpactMedium, cfg.ConfirmImpact)
}

func TestMissingExplicitConfig(t *testing.T) {
	v := viper.New()
	err := Init(v, filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestResolveRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"output", KeyOutput, "xml"},
		{"impact", KeyConfirmImpact, "extreme"},
		{"page size", KeyPageSize, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.val)
			_, err := Resolve(v)
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("REDSHIFTCTL_TEST_DOTENV=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("REDSHIFTCTL_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("REDSHIFTCTL_TEST_DOTENV"))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

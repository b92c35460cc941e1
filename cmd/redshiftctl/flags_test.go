/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleParams struct {
	Name    string            `validate:"required" flag:"name" help:"Name of the thing"`
	Count   *int32            `flag:"count" help:"How many"`
	Enabled *bool             `flag:"enabled" help:"Turn it on"`
	Size    int64             `flag:"size" help:"Size"`
	Keys    []string          `flag:"keys" help:"Keys"`
	Tags    map[string]string `flag:"tags" help:"Tags"`
	Since   *time.Time        `flag:"since" help:"Start"`
	Skip    string
}

func parseSample(t *testing.T, args ...string) sampleParams {
	t.Helper()
	var p sampleParams
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	finish := bindParams(fs, &p)
	require.NoError(t, fs.Parse(args))
	finish(fs)
	return p
}

func TestBindParams(t *testing.T) {
	t.Run("all kinds", func(t *testing.T) {
		p := parseSample(t,
			"--name", "analytics",
			"--count", "0",
			"--enabled=false",
			"--size", "42",
			"--keys", "a,b",
			"--tags", "env=dev,team=data",
			"--since", "2025-03-01T12:00:00Z",
		)

		assert.Equal(t, "analytics", p.Name)
		require.NotNil(t, p.Count)
		assert.Equal(t, int32(0), *p.Count)
		require.NotNil(t, p.Enabled)
		assert.False(t, *p.Enabled)
		assert.Equal(t, int64(42), p.Size)
		assert.Equal(t, []string{"a", "b"}, p.Keys)
		assert.Equal(t, map[string]string{"env": "dev", "team": "data"}, p.Tags)
		require.NotNil(t, p.Since)
		assert.True(t, p.Since.Equal(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("optional fields stay nil when not given", func(t *testing.T) {
		p := parseSample(t, "--name", "analytics")
		assert.Nil(t, p.Count)
		assert.Nil(t, p.Enabled)
		assert.Nil(t, p.Since)
		assert.Nil(t, p.Tags)
	})

	t.Run("untagged fields get no flag", func(t *testing.T) {
		var p sampleParams
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		bindParams(fs, &p)
		assert.Nil(t, fs.Lookup("skip"))
		assert.Contains(t, fs.Lookup("name").Usage, "(required)")
		assert.NotContains(t, fs.Lookup("size").Usage, "(required)")
	})

	t.Run("bad timestamp", func(t *testing.T) {
		var p sampleParams
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		bindParams(fs, &p)
		assert.Error(t, fs.Parse([]string{"--since", "yesterday"}))
	})

	t.Run("unsupported type panics", func(t *testing.T) {
		var p struct {
			Ratio float64 `flag:"ratio"`
		}
		assert.Panics(t, func() {
			bindParams(pflag.NewFlagSet("test", pflag.ContinueOnError), &p)
		})
	})
}

func TestIsRequired(t *testing.T) {
	assert.True(t, isRequired("required"))
	assert.True(t, isRequired("required,oneof=a b"))
	assert.False(t, isRequired("required_without=Other"))
	assert.False(t, isRequired("omitempty,min=1"))
}

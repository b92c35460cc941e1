/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rserrors "github.com/suparena/redshiftctl/errors"
)

type params struct {
	ClusterIdentifier *string `validate:"required" flag:"cluster-identifier"`
	NodeType          string  `validate:"required" flag:"node-type"`
	NumberOfNodes     *int32  `validate:"omitempty,min=1,max=128" flag:"number-of-nodes"`
	SnapshotType      string  `validate:"omitempty,oneof=manual automated" flag:"snapshot-type"`
	Untagged          string  `validate:"required"`
}

func TestStruct(t *testing.T) {
	id := "analytics"

	t.Run("valid", func(t *testing.T) {
		err := Struct(params{ClusterIdentifier: &id, NodeType: "ra3.xlplus", Untagged: "x"})
		assert.NoError(t, err)
	})

	t.Run("missing required fields", func(t *testing.T) {
		err := Struct(params{})
		require.Error(t, err)
		assert.True(t, rserrors.IsValidationError(err))
		assert.Contains(t, err.Error(), `"--cluster-identifier"`)
		assert.Contains(t, err.Error(), `"--node-type"`)
		assert.Contains(t, err.Error(), `"Untagged"`)
	})

	t.Run("range and enum", func(t *testing.T) {
		zero := int32(0)
		err := Struct(params{ClusterIdentifier: &id, NodeType: "dc2.large", Untagged: "x", NumberOfNodes: &zero, SnapshotType: "weekly"})
		require.Error(t, err)

		var ve *rserrors.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, err.Error(), "must be at least 1")
		assert.Contains(t, err.Error(), "must be one of: manual automated")
	})
}

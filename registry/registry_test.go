/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type indexed struct {
	ID string
}

func TestIndexMapRegistry(t *testing.T) {
	_, ok := GetIndexMap[indexed]()
	assert.False(t, ok)

	RegisterIndexMap[indexed](map[string]string{"PK": "ITEM#{ID}", "SK": "ITEM#{ID}"})

	m, ok := GetIndexMap[indexed]()
	require.True(t, ok)
	assert.Equal(t, "ITEM#{ID}", m["PK"])
}

func TestOperationRegistry(t *testing.T) {
	op := RegisterOperation(Operation{Name: "TestDescribeThings", Resource: "zz-thing", Verb: "list", Paginated: true})
	assert.False(t, op.Mutating())

	RegisterOperation(Operation{Name: "TestDeleteThing", Resource: "zz-thing", Verb: "delete", Impact: ImpactHigh})

	got, err := GetOperation("TestDeleteThing")
	require.NoError(t, err)
	assert.True(t, got.Mutating())
	assert.Equal(t, ImpactHigh, got.Impact)

	_, err = GetOperation("Missing")
	assert.Error(t, err)

	assert.Panics(t, func() {
		RegisterOperation(Operation{Name: "TestDeleteThing"})
	})
	assert.Panics(t, func() {
		RegisterOperation(Operation{})
	})

	var verbs []string
	for _, op := range Operations() {
		if op.Resource == "zz-thing" {
			verbs = append(verbs, op.Verb)
		}
	}
	assert.Equal(t, []string{"delete", "list"}, verbs)
}

func TestParseImpact(t *testing.T) {
	tests := map[string]Impact{
		"none":   ImpactNone,
		"LOW":    ImpactLow,
		"medium": ImpactMedium,
		"high":   ImpactHigh,
		"":       ImpactHigh,
	}
	for in, want := range tests {
		got, err := ParseImpact(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		if in != "" && in != "LOW" {
			assert.Equal(t, in, got.String())
		}
	}

	_, err := ParseImpact("extreme")
	assert.Error(t, err)
}

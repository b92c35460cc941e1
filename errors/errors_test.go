/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Cluster", "analytics")

	// Test error message
	expected := `Cluster with key "analytics" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("ClusterSnapshot", "nightly")

	expected := `ClusterSnapshot with key "nightly" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrAlreadyExists) {
		t.Error("AlreadyExistsError should match ErrAlreadyExists")
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "cluster-identifier",
			message:  "is required",
			expected: `validation failed for field "cluster-identifier": is required`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidInput) {
				t.Error("ValidationError should match ErrInvalidInput")
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestInvalidStateError(t *testing.T) {
	err := NewInvalidStateError("PauseCluster", "cluster is already paused")

	expected := "PauseCluster rejected: cluster is already paused"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsInvalidState(err) {
		t.Error("IsInvalidState should return true for InvalidStateError")
	}
}

func TestDeclinedError(t *testing.T) {
	withTarget := NewDeclinedError("DeleteCluster", "analytics")
	if withTarget.Error() != `DeleteCluster on "analytics" was not confirmed` {
		t.Errorf("unexpected message %q", withTarget.Error())
	}

	withoutTarget := NewDeclinedError("DeleteTags", "")
	if withoutTarget.Error() != "DeleteTags was not confirmed" {
		t.Errorf("unexpected message %q", withoutTarget.Error())
	}

	if !IsDeclined(withTarget) || !IsDeclined(withoutTarget) {
		t.Error("IsDeclined should return true for DeclinedError")
	}
}

func TestErrorWrapping(t *testing.T) {
	// Test that wrapped errors still match
	original := NewNotFoundError("Cluster", "analytics")
	wrapped := fmt.Errorf("describe failed: %w", original)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Wrapped NotFoundError should still match ErrNotFound")
	}

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	// Ensure sentinel errors are distinct
	sentinels := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrInvalidState,
		ErrDeclined,
		ErrEndpointUnreachable,
		ErrNoIndexMap,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Impact ranks how disruptive an operation is. Operations at or above the
// configured threshold require confirmation.
type Impact int

const (
	ImpactNone Impact = iota
	ImpactLow
	ImpactMedium
	ImpactHigh
)

func (i Impact) String() string {
	switch i {
	case ImpactNone:
		return "none"
	case ImpactLow:
		return "low"
	case ImpactMedium:
		return "medium"
	case ImpactHigh:
		return "high"
	default:
		return fmt.Sprintf("Impact(%d)", int(i))
	}
}

// ParseImpact converts a configuration value into an Impact.
func ParseImpact(s string) (Impact, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return ImpactNone, nil
	case "low":
		return ImpactLow, nil
	case "medium":
		return ImpactMedium, nil
	case "high", "":
		return ImpactHigh, nil
	default:
		return ImpactNone, fmt.Errorf("unknown impact %q (valid: none, low, medium, high)", s)
	}
}

// Operation describes one Redshift API operation exposed as a command.
type Operation struct {
	// Name is the Redshift API action, e.g. "DescribeClusters".
	Name string
	// Resource is the CLI noun, e.g. "cluster".
	Resource string
	// Verb is the CLI verb, e.g. "list" or "delete".
	Verb string
	// Paginated is true for Marker/MaxRecords listing operations.
	Paginated bool
	// Impact is ImpactNone for read-only operations.
	Impact Impact
}

// Mutating reports whether the operation changes remote state.
func (o Operation) Mutating() bool {
	return o.Impact > ImpactNone
}

var (
	operations = make(map[string]Operation)
	opMu       sync.RWMutex
)

// RegisterOperation adds op to the catalog.
// If an operation with the same name is already registered, it panics to prevent accidental overrides.
func RegisterOperation(op Operation) Operation {
	if op.Name == "" {
		panic("operation registry: operation name is required")
	}

	opMu.Lock()
	defer opMu.Unlock()
	if _, exists := operations[op.Name]; exists {
		panic(fmt.Sprintf("operation registry: operation %q already registered", op.Name))
	}
	operations[op.Name] = op
	return op
}

// GetOperation returns the registered operation with the given name.
func GetOperation(name string) (Operation, error) {
	opMu.RLock()
	defer opMu.RUnlock()
	op, ok := operations[name]
	if !ok {
		return Operation{}, fmt.Errorf("operation registry: no operation registered as %q", name)
	}
	return op, nil
}

// Operations returns the catalog sorted by resource, then verb.
func Operations() []Operation {
	opMu.RLock()
	defer opMu.RUnlock()

	out := make([]Operation, 0, len(operations))
	for _, op := range operations {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Resource != out[j].Resource {
			return out[i].Resource < out[j].Resource
		}
		return out[i].Verb < out[j].Verb
	})
	return out
}

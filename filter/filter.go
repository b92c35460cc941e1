/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package filter evaluates boolean expr-lang expressions against listed items.
//
// An item is exposed to the expression as its JSON field map, so a cluster can
// be matched with `ClusterStatus == "available" && NumberOfNodes > 2`.
package filter

import (
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

const maxNodes = 1000

// Filter is a compiled expression. The zero value and a nil *Filter match everything.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile parses source. An empty source yields a nil filter.
func Compile(source string) (*Filter, error) {
	if source == "" {
		return nil, nil
	}

	program, err := expr.Compile(source,
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
		expr.MaxNodes(maxNodes))
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", source, err)
	}
	return &Filter{source: source, program: program}, nil
}

// String returns the expression source.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}

// Match reports whether item satisfies the expression.
func (f *Filter) Match(item any) (bool, error) {
	if f == nil || f.program == nil {
		return true, nil
	}

	env, err := toEnv(item)
	if err != nil {
		return false, err
	}

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter %q: %w", f.source, err)
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q did not evaluate to a boolean", f.source)
	}
	return matched, nil
}

// Apply returns the items of in that match, preserving order.
func Apply[T any](f *Filter, in []T) ([]T, error) {
	if f == nil {
		return in, nil
	}

	out := make([]T, 0, len(in))
	for _, item := range in {
		ok, err := f.Match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func toEnv(item any) (map[string]any, error) {
	if m, ok := item.(map[string]any); ok {
		return m, nil
	}

	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item for filtering: %w", err)
	}

	env := make(map[string]any)
	if err := json.Unmarshal(data, &env); err != nil {
		// Scalars are exposed as "value".
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to decode item for filtering: %w", err)
		}
		return map[string]any{"value": v}, nil
	}
	return env, nil
}

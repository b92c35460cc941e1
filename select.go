/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package redshiftctl

import (
	"fmt"
	"sort"
	"strings"

	rserrors "github.com/suparena/redshiftctl/errors"
)

// SelectAll names the selector returning the whole value.
const SelectAll = "*"

// Selector projects a value of type T.
type Selector[T any] struct {
	Name    string
	Project func(T) any
}

// Field builds a Selector.
func Field[T any](name string, project func(T) any) Selector[T] {
	return Selector[T]{Name: name, Project: project}
}

// SelectorSet is the closed set of projections an operation supports.
type SelectorSet[T any] struct {
	def       string
	selectors map[string]Selector[T]
}

// NewSelectorSet builds a set whose default is def. An empty default or
// SelectAll returns the whole value.
func NewSelectorSet[T any](def string, selectors ...Selector[T]) SelectorSet[T] {
	set := SelectorSet[T]{def: def, selectors: make(map[string]Selector[T], len(selectors))}
	for _, sel := range selectors {
		if sel.Name == SelectAll {
			panic("selector name * is reserved")
		}
		set.selectors[sel.Name] = sel
	}
	if def != "" && def != SelectAll {
		if _, ok := set.selectors[def]; !ok {
			panic(fmt.Sprintf("default selector %q is not in the set", def))
		}
	}
	return set
}

// Default returns the name used when none is given.
func (s SelectorSet[T]) Default() string {
	if s.def == "" {
		return SelectAll
	}
	return s.def
}

// Names returns the valid selector names, SelectAll first.
func (s SelectorSet[T]) Names() []string {
	names := make([]string, 0, len(s.selectors)+1)
	for name := range s.selectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{SelectAll}, names...)
}

// Resolve returns the projection for name. An empty name selects the
// default; unknown names are rejected with the list of valid ones.
func (s SelectorSet[T]) Resolve(name string) (func(T) any, error) {
	if name == "" {
		name = s.Default()
	}
	if name == SelectAll {
		return func(v T) any { return v }, nil
	}
	sel, ok := s.selectors[name]
	if !ok {
		return nil, rserrors.NewValidationError("--select",
			fmt.Sprintf("unknown selector %q (valid: %s)", name, strings.Join(s.Names(), ", ")))
	}
	return sel.Project, nil
}

// ProjectAll applies project to every item.
func ProjectAll[T any](project func(T) any, items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = project(item)
	}
	return out
}

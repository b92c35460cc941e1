/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package confirm asks the operator before a mutating operation runs.
package confirm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/suparena/redshiftctl/registry"
)

// ErrNotInteractive is returned when a prompt is needed but stdin is not a terminal.
var ErrNotInteractive = errors.New("confirmation required but stdin is not a terminal; use --force to proceed")

// Request describes the operation awaiting confirmation.
type Request struct {
	Operation string
	Target    string
	Impact    registry.Impact
}

// Prompter answers confirmation requests.
type Prompter interface {
	Confirm(ctx context.Context, req Request) (bool, error)
}

// Required reports whether an operation of the given impact must be confirmed.
func Required(impact, threshold registry.Impact, force bool) bool {
	if force || impact == registry.ImpactNone {
		return false
	}
	return impact >= threshold
}

// TerminalPrompter asks on the controlling terminal.
type TerminalPrompter struct{}

// NewTerminalPrompter creates a terminal prompter.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// IsInteractive checks if we're running in an interactive terminal.
func (p *TerminalPrompter) IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// Confirm shows a yes/no prompt defaulting to no.
func (p *TerminalPrompter) Confirm(ctx context.Context, req Request) (bool, error) {
	if !p.IsInteractive() {
		return false, ErrNotInteractive
	}

	var ok bool
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title(req)).
			Description(fmt.Sprintf("Impact: %s", req.Impact)).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	)).RunWithContext(ctx)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

func title(req Request) string {
	if req.Target == "" {
		return fmt.Sprintf("Perform %s?", req.Operation)
	}
	return fmt.Sprintf("Perform %s on %q?", req.Operation, req.Target)
}

// Static answers every request with the same value.
type Static bool

// Confirm returns the static answer.
func (s Static) Confirm(context.Context, Request) (bool, error) {
	return bool(s), nil
}

// Func adapts a function to Prompter.
type Func func(ctx context.Context, req Request) (bool, error)

// Confirm calls f.
func (f Func) Confirm(ctx context.Context, req Request) (bool, error) {
	return f(ctx, req)
}

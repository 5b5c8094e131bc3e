// BuildSensei - PC Build Compatibility and Recommendation Engine
// Copyright 2026 BuildSensei Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/buildsensei/buildsensei

package engine

import (
	"errors"
	"fmt"

	"github.com/buildsensei/buildsensei/internal/models"
)

// ErrComponentNotFound is the sentinel matched by errors.Is when a
// component name does not resolve in the catalog. The catalog layer
// wraps it; the evaluator surfaces it as a NotFoundError naming the
// failed slot.
var ErrComponentNotFound = errors.New("component not found")

// NotFoundError reports which component slot failed to resolve.
// It is terminal for the evaluation that produced it.
type NotFoundError struct {
	Kind models.ComponentKind
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in catalog", e.Kind, e.Name)
}

// Unwrap makes errors.Is(err, ErrComponentNotFound) work.
func (e *NotFoundError) Unwrap() error {
	return ErrComponentNotFound
}

// ErrUnparsableModules is the sentinel for memory module descriptors
// that cannot be parsed.
var ErrUnparsableModules = errors.New("unparsable memory modules descriptor")

// ParseError reports an unparsable free-text field. It carries the
// offending raw string and is terminal for the evaluation.
type ParseError struct {
	Field string
	Raw   string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s from %q", e.Field, e.Raw)
}

// Unwrap makes errors.Is(err, ErrUnparsableModules) work for module
// descriptor failures.
func (e *ParseError) Unwrap() error {
	if e.Field == "module count" {
		return ErrUnparsableModules
	}
	return nil
}

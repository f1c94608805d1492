// SPDX-License-Identifier: MIT
//
// Package: wayfind/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (floors, rooms) is
// smaller than the allowed minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a constructor could not apply a core mutation
// or was nil.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf attaches method and step context to a core error under ErrConstructFailed.
func wrapf(method, step string, err error) error {
	return fmt.Errorf("%s: %s: %w: %w", method, step, ErrConstructFailed, err)
}

// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package segment

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedAlgorithm is returned for an unrecognized algorithm tag.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInvalidParameter is matched by every *ParameterError.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrBusy is returned when no run slot frees up before the caller's
	// context is done.
	ErrBusy = errors.New("segmentation capacity exhausted")
)

// ParameterError describes a rejected request parameter.
type ParameterError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Param, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidParameter) succeed.
func (e *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

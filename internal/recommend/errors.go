// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches any NotFoundError via errors.Is.
	ErrNotFound = errors.New("not found")

	// ErrInvalidParameter matches any InvalidParameterError via errors.Is.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// NotFoundError reports that a query title is not in the catalog.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("movie %q not found in catalog", e.Title)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidParameterError reports a query parameter rejected before any
// computation ran.
type InvalidParameterError struct {
	Param  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidParameter.
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// NewInvalidParameter builds an InvalidParameterError.
func NewInvalidParameter(param string, value any, reason string) *InvalidParameterError {
	return &InvalidParameterError{Param: param, Value: value, Reason: reason}
}

// ValidateLimit rejects a non-positive limit.
func ValidateLimit(limit int) error {
	if limit <= 0 {
		return NewInvalidParameter("limit", limit, "must be positive")
	}
	return nil
}

// ValidateMinCount rejects a negative minimum rating count.
func ValidateMinCount(minCount int) error {
	if minCount < 0 {
		return NewInvalidParameter("min_count", minCount, "must be non-negative")
	}
	return nil
}

// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/mynextmovie/internal/recommend"
	"github.com/tomtom215/mynextmovie/internal/validation"
)

// API error codes
const (
	CodeValidationError  = validation.CodeValidationError
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeMovieNotFound    = "MOVIE_NOT_FOUND"
	CodeRateLimited      = "RATE_LIMITED"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeTimeout          = "TIMEOUT"
	CodeInternalError    = "INTERNAL_ERROR"
)

// respondEngineError maps an engine error to a status code and error code.
func respondEngineError(w http.ResponseWriter, err error) {
	var notFound *recommend.NotFoundError
	var invalid *recommend.InvalidParameterError

	switch {
	case errors.As(err, &notFound):
		respondErrorDetails(w, http.StatusNotFound, CodeMovieNotFound,
			"Movie not found in dataset", map[string]interface{}{"title": notFound.Title}, nil)
	case errors.As(err, &invalid):
		respondErrorDetails(w, http.StatusBadRequest, CodeInvalidParameter, invalid.Error(),
			map[string]interface{}{"param": invalid.Param, "value": invalid.Value, "reason": invalid.Reason}, nil)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, CodeTimeout, "Request timed out", err)
	default:
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to generate recommendations", err)
	}
}

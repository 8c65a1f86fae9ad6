// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"

	"github.com/tomtom215/mynextmovie/internal/logging"
	"github.com/tomtom215/mynextmovie/internal/models"
	"github.com/tomtom215/mynextmovie/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag returns a weak validator for the response body.
func generateETag(data []byte) string {
	return `W/"` + strconv.FormatUint(xxhash.Sum64(data), 16) + `"`
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, data interface{}, queryTimeMS int64) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: queryTimeMS,
		},
	})
}

// respondError sends an error envelope. err, when non-nil, is logged but never
// sent to the client.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	respondErrorDetails(w, status, code, message, nil, err)
}

// respondErrorDetails is respondError with structured details.
func respondErrorDetails(w http.ResponseWriter, status int, code, message string, details map[string]interface{}, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: models.StatusError,
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// respondValidationError sends a 400 for a failed validateRequest.
func respondValidationError(w http.ResponseWriter, apiErr *models.APIError) {
	respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
}

// queryParamError reports a query parameter that is not an integer.
type queryParamError struct {
	key   string
	value string
}

func (e *queryParamError) Error() string {
	return fmt.Sprintf("%s must be an integer", e.key)
}

// respondQueryParamError sends a 400 for a malformed query parameter.
func respondQueryParamError(w http.ResponseWriter, err *queryParamError) {
	respondErrorDetails(w, http.StatusBadRequest, CodeValidationError, err.Error(),
		map[string]interface{}{"field": err.key, "tag": "integer", "value": err.value}, nil)
}

// getIntParam extracts an integer query parameter. A missing or empty
// parameter yields defaultValue; anything that is not an integer is an error.
func getIntParam(r *http.Request, key string, defaultValue int) (int, *queryParamError) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, &queryParamError{key: key, value: value}
	}
	return intValue, nil
}

// getOptionalIntParam is getIntParam for parameters whose absence matters.
func getOptionalIntParam(r *http.Request, key string) (*int, *queryParamError) {
	if strings.TrimSpace(r.URL.Query().Get(key)) == "" {
		return nil, nil
	}
	v, perr := getIntParam(r, key, 0)
	if perr != nil {
		return nil, perr
	}
	return &v, nil
}

// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide (it caches struct
// metadata). Besides the built-in tags it registers:
//
//   - notblank: the string contains something other than whitespace
//   - nocontrol: the string contains no control characters
//
// Field names in errors use the json tag, so a failure on
// recommend.SimilarRequest.Title is reported as "title", the same name the
// HTTP query parameter uses.
//
// Example usage:
//
//	req := recommend.SimilarRequest{Title: r.URL.Query().Get("title")}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
package validation

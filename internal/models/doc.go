// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

// Package models defines the JSON envelope and small payload types shared by
// the HTTP handlers. Recommendation payloads live in the recommend package.
package models

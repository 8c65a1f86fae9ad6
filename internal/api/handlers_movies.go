// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/mynextmovie/internal/models"
)

// sampleRequest holds the parameters of the sample endpoint.
type sampleRequest struct {
	N int `json:"n" validate:"min=0,max=1000"`
}

// searchRequest holds the parameters of the search endpoint.
type searchRequest struct {
	Query string `json:"q" validate:"required,notblank,max=200,nocontrol"`
	Limit int    `json:"limit" validate:"min=0"`
}

// SampleMovies handles GET /api/v1/movies/sample
// Returns the first n titles in catalog order, as the console menu shows them.
func (h *Handler) SampleMovies(w http.ResponseWriter, r *http.Request) {
	n, perr := getIntParam(r, "n", 0)
	if perr != nil {
		respondQueryParamError(w, perr)
		return
	}

	req := sampleRequest{N: n}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	titles := h.engine.SampleTitles(req.N)
	respondSuccess(w, models.TitleList{Titles: titles, Count: len(titles)}, 0)
}

// SearchMovies handles GET /api/v1/movies/search
// Finds titles containing q, ignoring case, to help pick an exact title.
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	limit, perr := getIntParam(r, "limit", 0)
	if perr != nil {
		respondQueryParamError(w, perr)
		return
	}

	req := searchRequest{Query: r.URL.Query().Get("q"), Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	movies := h.engine.SearchTitles(req.Query, req.Limit)
	respondSuccess(w, map[string]interface{}{
		"movies": movies,
		"count":  len(movies),
	}, 0)
}

// Genres handles GET /api/v1/movies/genres
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	genres := h.engine.Genres()
	if genres == nil {
		genres = []string{}
	}
	respondSuccess(w, models.GenreList{Genres: genres, Count: len(genres)}, 0)
}

// MovieByID handles GET /api/v1/movies/{id}
func (h *Handler) MovieByID(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		respondErrorDetails(w, http.StatusBadRequest, CodeValidationError, "id must be an integer",
			map[string]interface{}{"field": "id", "tag": "integer", "value": raw}, nil)
		return
	}

	movie, ok := h.engine.Movie(id)
	if !ok {
		respondErrorDetails(w, http.StatusNotFound, CodeMovieNotFound,
			"Movie not found in dataset", map[string]interface{}{"id": id}, nil)
		return
	}
	respondSuccess(w, movie, 0)
}

// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package api

import (
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/mynextmovie/internal/catalog"
	"github.com/tomtom215/mynextmovie/internal/models"
	"github.com/tomtom215/mynextmovie/internal/recommend"
	"github.com/tomtom215/mynextmovie/internal/recommend/algorithms"
)

// envelope mirrors models.APIResponse with a raw payload.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func exampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		[]catalog.Movie{
			catalog.NewMovie(1, "A", "Comedy|Drama"),
			catalog.NewMovie(2, "B", "Comedy"),
			catalog.NewMovie(3, "C", "Drama"),
		},
		[]catalog.RatingEvent{
			{MovieID: 1, Score: 4.0},
			{MovieID: 1, Score: 5.0},
			{MovieID: 2, Score: 3.0},
			{MovieID: 3, Score: 2.0},
		},
	)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return c
}

func emptyCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(nil, nil)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return c
}

func newTestEngine(t *testing.T, c *catalog.Catalog) *recommend.Engine {
	t.Helper()
	cfg := recommend.DefaultConfig()
	ic := algorithms.NewIndexCache(cfg.IndexCache.MaxEntries, cfg.IndexCache.TTL)
	e, err := recommend.NewEngine(cfg, c, algorithms.NewPopularity(),
		algorithms.NewContentMatcher(algorithms.WithIndexCache(ic)), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func newTestRouter(t *testing.T, c *catalog.Catalog) http.Handler {
	t.Helper()
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(NewHandler(newTestEngine(t, c), "test"), NewChiMiddleware(cfg)).SetupChi()
}

func doGet(t *testing.T, h http.Handler, path string, query url.Values) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func TestPopular(t *testing.T) {
	h := newTestRouter(t, exampleCatalog(t))

	rec, env := doGet(t, h, "/api/v1/recommendations/popular", url.Values{
		"genre": {"Comedy"}, "min_ratings": {"1"}, "limit": {"5"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if env.Status != models.StatusSuccess {
		t.Errorf("status = %q, want success", env.Status)
	}

	var resp recommend.PopularResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(resp.Items))
	}
	if resp.Items[0].Movie.Title != "A" || resp.Items[0].AverageRating != 4.5 || resp.Items[0].Count != 2 {
		t.Errorf("items[0] = %+v, want A 4.5 2", resp.Items[0])
	}
	if resp.Items[1].Movie.Title != "B" || resp.Items[1].AverageRating != 3.0 || resp.Items[1].Count != 1 {
		t.Errorf("items[1] = %+v, want B 3.0 1", resp.Items[1])
	}
	if resp.Metadata.RequestID != rec.Header().Get("X-Request-ID") {
		t.Errorf("metadata.request_id = %q, want header %q", resp.Metadata.RequestID, rec.Header().Get("X-Request-ID"))
	}
}

func TestPopular_DefaultsAndEmpty(t *testing.T) {
	h := newTestRouter(t, exampleCatalog(t))

	t.Run("no match yields empty array", func(t *testing.T) {
		rec, env := doGet(t, h, "/api/v1/recommendations/popular", url.Values{"genre": {"SciFi"}, "min_ratings": {"1"}})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var raw struct {
			Items json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(env.Data, &raw); err != nil {
			t.Fatalf("Failed to decode data: %v", err)
		}
		if string(raw.Items) != "[]" {
			t.Errorf("items = %s, want []", raw.Items)
		}
	})

	t.Run("omitted min_ratings takes the configured default", func(t *testing.T) {
		_, env := doGet(t, h, "/api/v1/recommendations/popular", url.Values{"genre": {"Comedy"}})
		var resp recommend.PopularResponse
		if err := json.Unmarshal(env.Data, &resp); err != nil {
			t.Fatalf("Failed to decode data: %v", err)
		}
		if resp.Query.MinCount != 10 || resp.Query.Limit != 10 {
			t.Errorf("query = %+v, want min_count 10 limit 10", resp.Query)
		}
		if len(resp.Items) != 0 {
			t.Errorf("len(items) = %d, want 0", len(resp.Items))
		}
	})
}

func TestPopular_BadParameters(t *testing.T) {
	h := newTestRouter(t, exampleCatalog(t))

	tests := []struct {
		name      string
		query     url.Values
		wantField string
	}{
		{"non-integer limit", url.Values{"limit": {"ten"}}, "limit"},
		{"non-integer min_ratings", url.Values{"min_ratings": {"1.5"}}, "min_ratings"},
		{"negative limit", url.Values{"limit": {"-1"}}, "limit"},
		{"negative min_ratings", url.Values{"min_ratings": {"-3"}}, "min_count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doGet(t, h, "/api/v1/recommendations/popular", tt.query)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if env.Error == nil || env.Error.Code != CodeValidationError {
				t.Fatalf("error = %+v, want %s", env.Error, CodeValidationError)
			}
			if env.Error.Details["field"] != tt.wantField {
				t.Errorf("details.field = %v, want %s", env.Error.Details["field"], tt.wantField)
			}
		})
	}
}

func TestSimilar(t *testing.T) {
	h := newTestRouter(t, exampleCatalog(t))

	rec, env := doGet(t, h, "/api/v1/recommendations/similar", url.Values{"title": {"A"}, "limit": {"2"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var resp recommend.SimilarResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
	want := []string{"B", "C"}
	if len(resp.Items) != len(want) {
		t.Fatalf("len(items) = %d, want %d", len(resp.Items), len(want))
	}
	for i, item := range resp.Items {
		if item.Movie.Title != want[i] {
			t.Errorf("items[%d].title = %q, want %q", i, item.Movie.Title, want[i])
		}
		if math.Abs(item.Similarity-1/math.Sqrt2) > 1e-9 {
			t.Errorf("items[%d].similarity = %v, want 0.7071", i, item.Similarity)
		}
	}
}

func TestSimilar_Errors(t *testing.T) {
	tests := []struct {
		name       string
		catalog    func(*testing.T) *catalog.Catalog
		query      url.Values
		wantStatus int
		wantCode   string
	}{
		{"unknown title", exampleCatalog, url.Values{"title": {"Z"}, "limit": {"1"}}, http.StatusNotFound, CodeMovieNotFound},
		{"title is case sensitive", exampleCatalog, url.Values{"title": {"a"}}, http.StatusNotFound, CodeMovieNotFound},
		{"missing title", exampleCatalog, url.Values{"limit": {"1"}}, http.StatusBadRequest, CodeValidationError},
		{"blank title", exampleCatalog, url.Values{"title": {"   "}}, http.StatusBadRequest, CodeValidationError},
		{"empty catalog", emptyCatalog, url.Values{"title": {"A"}}, http.StatusBadRequest, CodeInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t, tt.catalog(t))
			rec, env := doGet(t, h, "/api/v1/recommendations/similar", tt.query)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if env.Status != models.StatusError {
				t.Errorf("status = %q, want error", env.Status)
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestSimilar_NotFoundDetails(t *testing.T) {
	h := newTestRouter(t, exampleCatalog(t))
	_, env := doGet(t, h, "/api/v1/recommendations/similar", url.Values{"title": {"Z"}})
	if env.Error == nil || env.Error.Details["title"] != "Z" {
		t.Errorf("error = %+v, want details.title Z", env.Error)
	}
}

func TestDemo(t *testing.T) {
	h := newTestRouter(t, exampleCatalog(t))

	rec, env := doGet(t, h, "/api/v1/recommendations/demo", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var report recommend.DemoReport
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
	if report.Genre != "Comedy" {
		t.Errorf("genre = %q, want Comedy", report.Genre)
	}
	if report.QueryTitle != "A" {
		t.Errorf("query_title = %q, want A", report.QueryTitle)
	}
	if len(report.Similar) != 2 {
		t.Errorf("len(similar) = %d, want 2", len(report.Similar))
	}
}

func TestStatus(t *testing.T) {
	h := newTestRouter(t, exampleCatalog(t))
	doGet(t, h, "/api/v1/recommendations/popular", url.Values{"genre": {"Drama"}})
	doGet(t, h, "/api/v1/recommendations/similar", url.Values{"title": {"A"}})

	rec, env := doGet(t, h, "/api/v1/recommendations/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var data struct {
		Engine recommend.Status `json:"engine"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
	if !data.Engine.Ready || data.Engine.Catalog.Movies != 3 || data.Engine.Genres != 2 {
		t.Errorf("engine status = %+v, want ready, 3 movies, 2 genres", data.Engine)
	}
	if data.Engine.Metrics.PopularRequests != 1 {
		t.Errorf("popular_requests = %d, want 1", data.Engine.Metrics.PopularRequests)
	}
	if data.Engine.IndexCache == nil || data.Engine.IndexCache.Size != 1 {
		t.Errorf("index_cache = %+v, want one cached index", data.Engine.IndexCache)
	}
}

func TestMovieByID(t *testing.T) {
	h := newTestRouter(t, exampleCatalog(t))

	rec, env := doGet(t, h, "/api/v1/movies/2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	var movie catalog.Movie
	if err := json.Unmarshal(env.Data, &movie); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
	if movie.ID != 2 || movie.Title != "B" || movie.RawGenres != "Comedy" {
		t.Errorf("movie = %+v, want B", movie)
	}

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
	}{
		{"unknown id", "/api/v1/movies/99", http.StatusNotFound, CodeMovieNotFound},
		{"non-integer id", "/api/v1/movies/abc", http.StatusBadRequest, CodeValidationError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doGet(t, h, tt.path, nil)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		catalog    func(*testing.T) *catalog.Catalog
		path       string
		wantStatus int
	}{
		{"live", exampleCatalog, "/api/v1/health/live", http.StatusOK},
		{"live with empty catalog", emptyCatalog, "/api/v1/health/live", http.StatusOK},
		{"ready", exampleCatalog, "/api/v1/health/ready", http.StatusOK},
		{"not ready with empty catalog", emptyCatalog, "/api/v1/health/ready", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := doGet(t, newTestRouter(t, tt.catalog(t)), tt.path, nil)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestSampleMovies(t *testing.T) {
	h := newTestRouter(t, exampleCatalog(t))

	rec, env := doGet(t, h, "/api/v1/movies/sample", url.Values{"n": {"2"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var list models.TitleList
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
	if list.Count != 2 || list.Titles[0] != "A" || list.Titles[1] != "B" {
		t.Errorf("titles = %v, want [A B]", list.Titles)
	}

	for _, bad := range []string{"x", "-1", "5000"} {
		rec, _ := doGet(t, h, "/api/v1/movies/sample", url.Values{"n": {bad}})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("n=%s: status = %d, want 400", bad, rec.Code)
		}
	}
}

func TestSearchMovies(t *testing.T) {
	h := newTestRouter(t, exampleCatalog(t))

	rec, env := doGet(t, h, "/api/v1/movies/search", url.Values{"q": {"b"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var data struct {
		Movies []catalog.Movie `json:"movies"`
		Count  int             `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
	if data.Count != 1 || data.Movies[0].Title != "B" {
		t.Errorf("movies = %+v, want [B]", data.Movies)
	}

	rec, env = doGet(t, h, "/api/v1/movies/search", url.Values{"q": {" "}})
	if rec.Code != http.StatusBadRequest || env.Error == nil || env.Error.Code != CodeValidationError {
		t.Errorf("blank q: status = %d error = %+v, want 400 VALIDATION_ERROR", rec.Code, env.Error)
	}
}

func TestGenres(t *testing.T) {
	rec, env := doGet(t, newTestRouter(t, exampleCatalog(t)), "/api/v1/movies/genres", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var list models.GenreList
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
	if list.Count != 2 || list.Genres[0] != "Comedy" || list.Genres[1] != "Drama" {
		t.Errorf("genres = %v, want [Comedy Drama]", list.Genres)
	}

	_, env = doGet(t, newTestRouter(t, emptyCatalog(t)), "/api/v1/movies/genres", nil)
	var empty struct {
		Genres json.RawMessage `json:"genres"`
	}
	if err := json.Unmarshal(env.Data, &empty); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
	if string(empty.Genres) != "[]" {
		t.Errorf("genres = %s, want []", empty.Genres)
	}
}

// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/mynextmovie/internal/catalog"
	"github.com/tomtom215/mynextmovie/internal/recommend"
	"github.com/tomtom215/mynextmovie/internal/recommend/algorithms"
)

func newTestEngine(t *testing.T, cfg *recommend.Config) *recommend.Engine {
	t.Helper()
	c := catalog.MustNew(
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
	if cfg == nil {
		cfg = recommend.DefaultConfig()
	}
	e, err := recommend.NewEngine(cfg, c, algorithms.NewPopularity(), algorithms.NewContentMatcher(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func runMenu(t *testing.T, rec Recommender, input string) string {
	t.Helper()
	var out bytes.Buffer
	if err := NewMenu(rec, strings.NewReader(input), &out).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestMenu_Run(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		notWant []string
	}{
		{
			name:  "exit",
			input: "4\n",
			want: []string{
				"MAIN MENU",
				"1. Popularity-based Recommendations",
				"Enter your choice (1-4): ",
				"Thank you for using MyNextMovie Recommendation System!",
			},
			notWant: []string{"Press Enter to continue..."},
		},
		{
			name:  "invalid choice re-prompts",
			input: "9\n\n4\n",
			want: []string{
				"Invalid choice. Please enter 1, 2, 3, or 4.",
				"Press Enter to continue...",
				"Thank you for using",
			},
		},
		{
			name:  "popularity ranking",
			input: "1\nComedy\n1\n5\n\n4\n",
			want: []string{
				"POPULARITY-BASED RECOMMENDER",
				"TOP 5 COMEDY MOVIES:",
				"Movie: A\nAverage Rating: 4.50\nNumber of Ratings: 2\nGenres: Comedy|Drama\n",
				"Movie: B\nAverage Rating: 3.00\nNumber of Ratings: 1\nGenres: Comedy\n",
			},
			notWant: []string{"Movie: C"},
		},
		{
			name:  "popularity genre matches nothing",
			input: "1\nSciFi\n1\n5\n\n4\n",
			want:  []string{"No movies found in genre: SciFi"},
		},
		{
			name:  "popularity threshold too high",
			input: "1\nComedy\n50\n5\n\n4\n",
			want:  []string{"No movies found with at least 50 ratings"},
		},
		{
			name:  "popularity non-numeric answer",
			input: "1\nComedy\nten\n\n4\n",
			want:  []string{`Invalid number: "ten"`},
		},
		{
			name:    "popularity negative limit",
			input:   "1\nComedy\n1\n-1\n\n4\n",
			want:    []string{`Invalid number: "-1" (must be at least 1)`},
			notWant: []string{"TOP ", "ERROR: "},
		},
		{
			name:    "popularity zero limit",
			input:   "1\nComedy\n1\n0\n\n4\n",
			want:    []string{`Invalid number: "0" (must be at least 1)`},
			notWant: []string{"TOP 10", "Movie: A"},
		},
		{
			name:    "popularity negative threshold",
			input:   "1\nComedy\n-2\n\n4\n",
			want:    []string{`Invalid number: "-2" (must be at least 0)`},
			notWant: []string{"Number of recommendations: "},
		},
		{
			name:    "popularity zero threshold",
			input:   "1\nComedy\n0\n1\n\n4\n",
			want:    []string{"TOP 1 COMEDY MOVIES:", "Movie: A"},
			notWant: []string{"Movie: B"},
		},
		{
			name:    "content zero limit",
			input:   "2\nA\n0\n\n4\n",
			want:    []string{`Invalid number: "0" (must be at least 1)`},
			notWant: []string{"MOVIES SIMILAR TO"},
		},
		{
			name:  "content similarity",
			input: "2\nA\n2\n\n4\n",
			want: []string{
				"Sample movies from dataset:\n1. A\n2. B\n3. C\n",
				"Enter movie title from above list: ",
				"MOVIES SIMILAR TO 'A':",
				"1. B\n   Similarity Score: 0.71\n   Genres: Comedy\n",
				"2. C\n   Similarity Score: 0.71\n   Genres: Drama\n",
			},
		},
		{
			name:  "content unknown title",
			input: "2\nZ\n1\n\n4\n",
			want:  []string{"Movie 'Z' not found in dataset"},
		},
		{
			name:  "demonstration",
			input: "3\n\n4\n",
			want: []string{
				"DEMONSTRATION MODE",
				"1. Popularity-based demo for genre: Comedy",
				"   Minimum ratings: 10, Recommendations: 3",
				"   No movies meet the criteria",
				"2. Content-based demo\n   Movies similar to: A",
				"   1. B\n   2. C\n",
			},
		},
		{
			name:  "input ends mid-dialog",
			input: "1\nComedy\n",
			want:  []string{"Minimum number of ratings: "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runMenu(t, newTestEngine(t, nil), tt.input)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\n--- output ---\n%s", want, out)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(out, nw) {
					t.Errorf("output contains %q\n--- output ---\n%s", nw, out)
				}
			}
		})
	}
}

func TestMenu_PopularityOrder(t *testing.T) {
	out := runMenu(t, newTestEngine(t, nil), "1\ncomedy\n1\n5\n\n4\n")
	a, b := strings.Index(out, "Movie: A"), strings.Index(out, "Movie: B")
	if a < 0 || b < 0 || a > b {
		t.Errorf("A at %d, B at %d; want A listed before B", a, b)
	}
}

func TestMenu_DemoWithRatings(t *testing.T) {
	cfg := recommend.DefaultConfig()
	cfg.Demo.MinCount = 1
	cfg.Demo.Limit = 2

	out := runMenu(t, newTestEngine(t, cfg), "3\n\n4\n")
	for _, want := range []string{
		"   Minimum ratings: 1, Recommendations: 2",
		"   A - Rating: 4.50\n   B - Rating: 3.00\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n--- output ---\n%s", want, out)
		}
	}
}

func TestMenu_DemoEmptyCatalog(t *testing.T) {
	e := newTestEngine(t, nil)
	e.SetCatalog(catalog.MustNew(nil, nil))

	out := runMenu(t, e, "3\n\n4\n")
	for _, want := range []string{
		"   No movies found in genre: Drama",
		"   Movies similar to: Sample Movie",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n--- output ---\n%s", want, out)
		}
	}
}

func TestMenu_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewMenu(newTestEngine(t, nil), strings.NewReader("4\n"), &out).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestPrintBanner(t *testing.T) {
	var out bytes.Buffer
	PrintBanner(&out)
	want := "MYNEXTMOVIE RECOMMENDATION SYSTEM\n" + strings.Repeat("=", 50) + "\n"
	if out.String() != want {
		t.Errorf("PrintBanner() = %q, want %q", out.String(), want)
	}
}

func TestPrintLoadResult(t *testing.T) {
	tests := []struct {
		name  string
		stats catalog.LoadStats
		err   error
		want  []string
	}{
		{
			name:  "success",
			stats: catalog.LoadStats{MoviesRead: 3, RatingsRead: 4},
			want: []string{
				"SUCCESS: Data loaded successfully!",
				"Movies dataset: 3 movies",
				"Ratings dataset: 4 ratings",
			},
		},
		{
			name:  "success with skipped rows",
			stats: catalog.LoadStats{MoviesRead: 3, RatingsRead: 4, SkippedRatings: 2},
			want:  []string{"Skipped 2 malformed rows"},
		},
		{
			name: "failure",
			err:  errors.New("open movies.csv: no such file or directory"),
			want: []string{"ERROR: Could not load data files: open movies.csv: no such file or directory"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			PrintLoadResult(&out, tt.stats, tt.err)
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q\n--- output ---\n%s", want, out.String())
				}
			}
		})
	}
}

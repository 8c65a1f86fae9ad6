// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/mynextmovie/internal/catalog"
)

// PrintBanner writes the program title.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, "MYNEXTMOVIE RECOMMENDATION SYSTEM")
	fmt.Fprintln(w, strings.Repeat("=", wideRule))
}

// PrintLoadResult reports the outcome of loading the catalog files.
func PrintLoadResult(w io.Writer, stats catalog.LoadStats, err error) {
	if err != nil {
		fmt.Fprintf(w, "ERROR: Could not load data files: %v\n", err)
		fmt.Fprintln(w, "Please check MOVIES_PATH and RATINGS_PATH (or data.movies_path and data.ratings_path in the config file)")
		return
	}
	fmt.Fprintln(w, "SUCCESS: Data loaded successfully!")
	fmt.Fprintf(w, "Movies dataset: %d movies\n", stats.MoviesRead)
	fmt.Fprintf(w, "Ratings dataset: %d ratings\n", stats.RatingsRead)
	if skipped := stats.SkippedMovies + stats.SkippedRatings; skipped > 0 {
		fmt.Fprintf(w, "Skipped %d malformed rows\n", skipped)
	}
}

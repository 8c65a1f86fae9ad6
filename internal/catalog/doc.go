// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

/*
Package catalog holds the in-memory movie catalog that every recommendation
query reads from.

A Catalog is the joined view of movie metadata and rating events. It is built
once, either from CSV files on disk or directly from slices in tests, and is
never mutated afterwards. Queries borrow it read-only, so any number of
goroutines may read the same Catalog without locking.

# Loading

Two loader back ends read the MovieLens-style file pair:

  - LoadCSV streams both files with encoding/csv. It is the default and has no
    native dependencies.
  - LoadDuckDB scans both files with DuckDB's read_csv_auto on an in-memory
    database. It handles large rating files faster and tolerates quoting
    quirks that a strict CSV reader rejects.

Both back ends locate columns by header name and skip rows whose id or rating
does not parse. The number of skipped rows is reported in LoadStats.

# Genres

Genre fields are pipe-delimited ("Comedy|Drama"). ParseGenres splits on the
pipe, trims whitespace, and drops empty and duplicate tokens while keeping
first-seen order. The raw field is kept on Movie for display.

# Fingerprint

Every Catalog carries a 64-bit xxhash fingerprint over its movies and ratings.
Derived structures such as the genre index are cached under this key, so a
reloaded catalog with the same content reuses them and a changed one does not.
*/
package catalog

// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tomtom215/mynextmovie/internal/catalog"
	"github.com/tomtom215/mynextmovie/internal/recommend"
)

// Recommender is the engine surface the menu uses. Satisfied by *recommend.Engine.
type Recommender interface {
	Popular(ctx context.Context, req recommend.PopularRequest) (*recommend.PopularResponse, error)
	Similar(ctx context.Context, req recommend.SimilarRequest) (*recommend.SimilarResponse, error)
	Demo(ctx context.Context) (*recommend.DemoReport, error)
	SampleTitles(n int) []string
	Catalog() *catalog.Catalog
	GetConfig() *recommend.Config
}

const (
	wideRule   = 50
	narrowRule = 40

	// Labels printed by the demonstration when the catalog has no genres or
	// no movies.
	demoFallbackGenre = "Drama"
	demoFallbackTitle = "Sample Movie"
)

// errInputClosed ends the menu loop when the reader is exhausted.
var errInputClosed = errors.New("input closed")

// Menu is the interactive console front end.
type Menu struct {
	rec Recommender
	in  *bufio.Scanner
	out io.Writer
}

// NewMenu creates a menu reading answers from in and writing to out.
func NewMenu(rec Recommender, in io.Reader, out io.Writer) *Menu {
	return &Menu{rec: rec, in: bufio.NewScanner(in), out: out}
}

// Run shows the main menu until the user exits, the input ends, or ctx is
// canceled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.println()
		m.rule("=", wideRule)
		m.println("MAIN MENU")
		m.println("1. Popularity-based Recommendations")
		m.println("2. Content-based Recommendations")
		m.println("3. Run Demonstration")
		m.println("4. Exit")
		m.rule("=", wideRule)

		choice, err := m.prompt("Enter your choice (1-4): ")
		if err != nil {
			return m.endOfInput(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = m.popularity(ctx)
		case "2":
			err = m.content(ctx)
		case "3":
			err = m.demo(ctx)
		case "4":
			m.println("Thank you for using MyNextMovie Recommendation System!")
			return nil
		default:
			m.println("Invalid choice. Please enter 1, 2, 3, or 4.")
		}
		if err != nil {
			return m.endOfInput(err)
		}

		if _, err := m.prompt("Press Enter to continue..."); err != nil {
			return m.endOfInput(err)
		}
	}
}

func (m *Menu) popularity(ctx context.Context) error {
	m.println()
	m.println("POPULARITY-BASED RECOMMENDER")
	m.rule("-", narrowRule)

	genre, err := m.prompt("Enter genre: ")
	if err != nil {
		return err
	}
	genre = strings.TrimSpace(genre)

	minRatings, ok, err := m.promptInt("Minimum number of ratings: ", 0)
	if err != nil || !ok {
		return err
	}
	limit, ok, err := m.promptInt("Number of recommendations: ", 1)
	if err != nil || !ok {
		return err
	}

	if !m.anyInGenre(genre) {
		m.printf("No movies found in genre: %s\n", genre)
		return nil
	}

	resp, err := m.rec.Popular(ctx, recommend.PopularRequest{
		Genre:    genre,
		MinCount: &minRatings,
		Limit:    limit,
	})
	if err != nil {
		return m.reportError(ctx, err)
	}
	if len(resp.Items) == 0 {
		m.printf("No movies found with at least %d ratings\n", minRatings)
		return nil
	}

	m.printf("\nTOP %d %s MOVIES:\n", resp.Query.Limit, strings.ToUpper(genre))
	m.rule("=", wideRule)
	for _, item := range resp.Items {
		m.printf("Movie: %s\n", item.Movie.Title)
		m.printf("Average Rating: %.2f\n", item.AverageRating)
		m.printf("Number of Ratings: %d\n", item.Count)
		m.printf("Genres: %s\n", item.Movie.RawGenres)
		m.println()
	}
	return nil
}

func (m *Menu) content(ctx context.Context) error {
	m.println()
	m.println("CONTENT-BASED RECOMMENDER")
	m.rule("-", narrowRule)

	m.println("Sample movies from dataset:")
	for i, title := range m.rec.SampleTitles(0) {
		m.printf("%d. %s\n", i+1, title)
	}

	title, err := m.prompt("\nEnter movie title from above list: ")
	if err != nil {
		return err
	}
	title = strings.TrimSpace(title)

	limit, ok, err := m.promptInt("Number of recommendations: ", 1)
	if err != nil || !ok {
		return err
	}

	resp, err := m.rec.Similar(ctx, recommend.SimilarRequest{Title: title, Limit: limit})
	if err != nil {
		if errors.Is(err, recommend.ErrNotFound) {
			m.printf("Movie '%s' not found in dataset\n", title)
			return nil
		}
		return m.reportError(ctx, err)
	}

	m.printf("\nMOVIES SIMILAR TO '%s':\n", title)
	m.rule("=", wideRule)
	for i, item := range resp.Items {
		m.printf("%d. %s\n", i+1, item.Movie.Title)
		m.printf("   Similarity Score: %.2f\n", item.Similarity)
		m.printf("   Genres: %s\n", item.Movie.RawGenres)
		m.println()
	}
	return nil
}

func (m *Menu) demo(ctx context.Context) error {
	m.println()
	m.println("DEMONSTRATION MODE")
	m.rule("=", narrowRule)

	report, err := m.rec.Demo(ctx)
	if err != nil {
		return m.reportError(ctx, err)
	}

	genre := report.Genre
	if genre == "" {
		genre = demoFallbackGenre
	}
	m.printf("1. Popularity-based demo for genre: %s\n", genre)
	m.printf("   Minimum ratings: %d, Recommendations: %d\n", report.MinCount, m.rec.GetConfig().Demo.Limit)
	m.rule("-", wideRule)

	switch {
	case report.Genre == "":
		m.printf("   No movies found in genre: %s\n", genre)
	case len(report.Popular) == 0:
		m.println("   No movies meet the criteria")
	default:
		for _, item := range report.Popular {
			m.printf("   %s - Rating: %.2f\n", item.Movie.Title, item.AverageRating)
		}
	}

	title := report.QueryTitle
	if title == "" {
		title = demoFallbackTitle
	}
	m.println()
	m.println("2. Content-based demo")
	m.printf("   Movies similar to: %s\n", title)
	m.rule("-", wideRule)
	for i, item := range report.Similar {
		m.printf("   %d. %s\n", i+1, item.Movie.Title)
	}
	return nil
}

// anyInGenre reports whether any catalog movie matches the genre filter.
func (m *Menu) anyInGenre(genre string) bool {
	for _, movie := range m.rec.Catalog().Movies() {
		if movie.MatchesGenre(genre) {
			return true
		}
	}
	return false
}

// reportError prints a recoverable engine error. Cancellation is returned
// so Run can stop.
func (m *Menu) reportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	m.printf("ERROR: %v\n", err)
	return nil
}

// prompt writes label and reads one line.
func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return m.in.Text(), nil
}

// promptInt reads a whole number no smaller than lowest. ok is false when
// the answer was rejected; the message has already been printed.
func (m *Menu) promptInt(label string, lowest int) (value int, ok bool, err error) {
	answer, err := m.prompt(label)
	if err != nil {
		return 0, false, err
	}
	answer = strings.TrimSpace(answer)
	value, convErr := strconv.Atoi(answer)
	if convErr != nil {
		m.printf("Invalid number: %q\n", answer)
		return 0, false, nil
	}
	if value < lowest {
		m.printf("Invalid number: %q (must be at least %d)\n", answer, lowest)
		return 0, false, nil
	}
	return value, true, nil
}

// endOfInput turns the end of the reader into a clean stop.
func (m *Menu) endOfInput(err error) error {
	if errors.Is(err, errInputClosed) {
		m.println()
		return nil
	}
	return err
}

func (m *Menu) rule(char string, width int) {
	m.println(strings.Repeat(char, width))
}

func (m *Menu) println(a ...any) {
	_, _ = fmt.Fprintln(m.out, a...)
}

func (m *Menu) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(m.out, format, a...)
}

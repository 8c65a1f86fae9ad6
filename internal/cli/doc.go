// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

// Package cli implements the interactive console menu.
//
// The menu reads answers line by line from an io.Reader, writes prompts and
// results to an io.Writer, and gets every answer from a Recommender. It has
// no ranking logic of its own, so the console and the HTTP API always agree.
//
//	menu := cli.NewMenu(engine, os.Stdin, os.Stdout)
//	if err := menu.Run(ctx); err != nil {
//	    return err
//	}
//
// Run returns nil when the user picks Exit or the input ends.
package cli

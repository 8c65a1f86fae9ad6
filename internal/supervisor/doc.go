// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

/*
Package supervisor runs the long-lived parts of the server under suture v4.

# Overview

	RootSupervisor ("mynextmovie")
	├── BackgroundSupervisor ("background-layer")
	│   ├── CatalogReloadService (if CATALOG_RELOAD_INTERVAL > 0)
	│   └── UptimeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's failure decay and backoff.
Supervisor events are logged through sutureslog, which takes a *slog.Logger;
pass logging.NewSlogLogger() so they land in the zerolog stream.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddBackgroundService(services.NewUptimeService(started, 15*time.Second))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Service Contract

Services implement suture.Service:

  - return nil: stopped cleanly, not restarted
  - return an error: crashed, restarted
  - on ctx.Done(): return promptly

# Shutdown

Canceling the context passed to Serve stops every service. A service that
does not return within ShutdownTimeout shows up in UnstoppedServiceReport.
*/
package supervisor

// Package httpserver wraps net/http's Server with graceful shutdown, signal
// handling and functional options.
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run blocks until the context is canceled, SIGINT/SIGTERM arrives or the
// listener fails. Config carries env-tagged fields for construction through
// the config package.
package httpserver

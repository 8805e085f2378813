// Package logger builds configured log/slog loggers with environment-aware
// presets and context-driven attribute injection.
//
// New applies functional options over production-safe defaults (JSON, INFO)
// and wraps the handler so registered ContextExtractor functions can pull
// request-scoped values, such as request IDs, into every record:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "sessiondemo"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
package logger

// Package logger builds *slog.Logger values from functional options and
// injects attributes pulled from context.Context on every record.
//
// New selects a text or JSON handler, applies the level and static
// attributes, and wraps the result in LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks before delegating. Output defaults to
// stderr so that a command's stdout stays reserved for its report.
//
// Attribute helpers in attr.go (Error, Path, Rule, Count, RunID, ...) keep
// key names consistent across packages.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "unicleaner"),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.Info("document cleaned", logger.Path(path), logger.Count(total))
//
// WithFormat panics on an unknown format so that misconfiguration fails at
// startup. ParseLevel and ParseFormat convert configuration strings and
// return ErrInvalidLevel or ErrInvalidFormat instead.
package logger

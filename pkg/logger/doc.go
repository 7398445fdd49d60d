// Package logger builds the slog loggers used across httpkit and provides
// attribute helpers so that keys such as "cookie", "session_id" and "format"
// are spelled the same everywhere.
//
//	log := logger.New(
//	    logger.WithDevelopment(),
//	    logger.WithAttr(logger.Component("api")),
//	)
//	log.Debug("session cookie discarded", logger.Cookie("sid"), logger.Error(err))
//
// Loggers from New wrap their handler in a ContextHandler. It appends the
// results of ContextExtractor callbacks registered with WithContextExtractors
// and any attributes stored in the context with WithContextAttrs, so
// request-scoped values reach the output without being passed to each call:
//
//	ctx = logger.WithContextAttrs(ctx, logger.SessionID(id))
//	log.InfoContext(ctx, "profile updated")
//
// Cookie values are never logged, only their names.
package logger

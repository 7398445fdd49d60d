// Package requestid tags every request with a correlation id.
//
// The middleware reuses a valid incoming X-Request-ID header or generates a
// UUID, stores the id in the request context and echoes it back in the
// response. LoggerExtractor plugs the id into logger.New:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	handler = requestid.Middleware(handler)
//
// Client supplied ids longer than 128 bytes or with characters outside
// [a-zA-Z0-9_-] are replaced.
package requestid

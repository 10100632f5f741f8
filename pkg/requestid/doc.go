// Package requestid tags each HTTP request with an identifier carried in the
// X-Request-ID header, the request context and every log record.
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid

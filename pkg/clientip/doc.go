// Package clientip resolves the address of the client behind a request.
//
// FromHeaders checks the given proxy headers in order and falls back to
// RemoteAddr. GetIP uses DefaultHeaders. Middleware stores the result in the
// request context, where the rate limiter reads it as its key and
// LoggerExtractor adds it to log records:
//
//	r.Use(clientip.Middleware())
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
//
// Only trust headers your proxy sets. Behind no proxy at all, use
// clientip.Middleware("") so RemoteAddr is the sole source.
package clientip

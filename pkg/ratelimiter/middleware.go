package ratelimiter

import (
	"math"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/fizzbuzz/pkg/clientip"
)

// KeyFunc picks the bucket key for a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

// ByClientIP keys buckets by the address stored by clientip.Middleware,
// resolving it from the request when the middleware did not run.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

// ErrorResponder writes the response for a denied request (err == nil) or
// a store failure.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, res *Result, err error)

type middlewareConfig struct {
	key     KeyFunc
	respond ErrorResponder
}

type MiddlewareOption func(*middlewareConfig)

func WithKeyFunc(fn KeyFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.key = fn
		}
	}
}

func WithErrorResponder(fn ErrorResponder) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.respond = fn
		}
	}
}

// Middleware takes one token per request from the bucket keyed by the key
// function, ByClientIP unless overridden. The X-RateLimit-* headers are set
// on every limited request and Retry-After on denials.
func Middleware(b *Bucket, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{key: ByClientIP, respond: defaultResponder}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := cfg.key(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := b.Allow(r.Context(), key)
			if err != nil {
				cfg.respond(w, r, nil, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				// Round up so clients never retry early.
				secs := int(math.Ceil(res.RetryAfter().Seconds()))
				h.Set("Retry-After", strconv.Itoa(max(1, secs)))
				cfg.respond(w, r, res, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func defaultResponder(w http.ResponseWriter, _ *http.Request, _ *Result, err error) {
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

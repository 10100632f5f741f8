package clientip

import "net/http"

// Middleware resolves the client address with headers and stores it in the
// request context. With no headers DefaultHeaders are used. Pass a single
// empty string to trust RemoteAddr only.
func Middleware(headers ...string) func(http.Handler) http.Handler {
	if len(headers) == 0 {
		headers = DefaultHeaders
	}
	trusted := make([]string, 0, len(headers))
	for _, h := range headers {
		if h != "" {
			trusted = append(trusted, h)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := FromHeaders(r, trusted...)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), ip)))
		})
	}
}

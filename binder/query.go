package binder

import "net/http"

// Query binds URL query parameters into fields tagged `query:"name"`.
// Supported field types are string, signed integers, bool and pointers to them.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		q := r.URL.Query()
		return bindStruct(v, "query", func(name string) (string, bool) {
			if !q.Has(name) {
				return "", false
			}
			return q.Get(name), true
		}, ErrInvalidQuery)
	}
}

package binder

import "net/http"

// Path binds router path parameters into fields tagged `path:"name"` using
// extractor, usually chi.URLParam. Empty values are skipped.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return ErrInvalidPath
		}
		return bindStruct(v, "path", func(name string) (string, bool) {
			value := extractor(r, name)
			return value, value != ""
		}, ErrInvalidPath)
	}
}

package binder

import (
	"errors"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals decodes DataStar signals into v using its json tags: from the
// "datastar" query parameter on GET and from the body otherwise. Requests
// that carry no signals are reported as ErrNotApplicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet && !r.URL.Query().Has("datastar") {
			return ErrNotApplicable
		}
		if r.Method != http.MethodGet && r.ContentLength == 0 {
			return ErrNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return errors.Join(ErrInvalidSignals, err)
		}
		return nil
	}
}

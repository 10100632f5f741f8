// Package binder fills request structs for handler.Wrap.
//
// Query and Path use struct tags of the same name; Signals decodes the
// DataStar signal payload with the struct's json tags. A binder that has
// nothing to read returns ErrNotApplicable and Wrap moves on to the next.
//
//	type fieldRequest struct {
//	    Field string `path:"field"`
//	    Fizz  int    `json:"fizz"`
//	}
//
//	r.Post("/fields/{field}", handler.Wrap(h,
//	    handler.WithBinders[handler.Context, fieldRequest](
//	        binder.Path(chi.URLParam),
//	        binder.Signals(),
//	    ),
//	))
package binder

// Package handler adapts typed request handlers to net/http and renders templ
// components as full pages or DataStar SSE patches.
//
// A HandlerFunc receives a Context and a request struct filled by binders
// from package binder, and returns a Response:
//
//	type signals struct {
//	    Fizz int `json:"fizz"`
//	}
//
//	func (s *Service) validate(ctx handler.Context, req signals) handler.Response {
//	    return handler.TemplMulti(
//	        handler.Patch(views.Errors(...)),
//	        handler.Patch(views.Output(...)),
//	    )
//	}
//
//	r.Post("/validate", handler.Wrap(s.validate,
//	    handler.WithBinders[handler.Context, signals](binder.Signals()),
//	    handler.WithErrorHandler[handler.Context, signals](errHandler),
//	))
//
// Templ responses check IsDataStar: DataStar requests get element patches over
// server-sent events, other requests get HTML.
//
// Binding failures reach the error handler wrapped with ErrBadRequest;
// NewErrorHandler maps HTTPError values to status codes, logs with slog and
// renders a toast or an error page.
package handler

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/fizzbuzz/pkg/environment"
	"github.com/dmitrymomot/fizzbuzz/pkg/logger"
	"github.com/dmitrymomot/fizzbuzz/pkg/requestid"
)

// ErrorPageParams feeds the full-page error view.
type ErrorPageParams struct {
	Message    string
	Details    string
	StatusCode int
	RequestID  string
}

// ErrorToastParams feeds the toast shown for DataStar requests.
type ErrorToastParams struct {
	Message   string
	Type      string // "warning" for 4xx, "error" otherwise
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	ErrorPage  func(ErrorPageParams) templ.Component
	ErrorToast func(ErrorToastParams) templ.Component

	// Translate resolves HTTPError keys for the request language.
	Translate func(ctx context.Context, key string) string

	ToastTarget string                    // default "#toasts"
	ToastMode   datastar.ElementPatchMode // default PatchPrepend
}

type errorInfo struct {
	status  int
	message string
}

func classify(err error) errorInfo {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return errorInfo{status: httpErr.Code, message: httpErr.Key}
	}
	return errorInfo{status: ErrInternal.Code, message: ErrInternal.Key}
}

// NewErrorHandler logs err and renders a toast for DataStar requests or an
// error page otherwise. Error details are shown only in development.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toasts"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classify(err)
		id := requestid.FromContext(r.Context())

		level := slog.LevelError
		if info.status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Component("error_handler"),
			logger.Error(err),
			slog.Int("status", info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		message := info.message
		if cfg.Translate != nil {
			message = cfg.Translate(r.Context(), info.message)
		}

		var resp Response
		switch {
		case IsDataStar(r) && cfg.ErrorToast != nil:
			kind := "error"
			if info.status < http.StatusInternalServerError {
				kind = "warning"
			}
			resp = Templ(cfg.ErrorToast(ErrorToastParams{Message: message, Type: kind, RequestID: id}),
				WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
		case !IsDataStar(r) && cfg.ErrorPage != nil:
			params := ErrorPageParams{Message: message, StatusCode: info.status, RequestID: id}
			if environment.IsDevelopment(r.Context()) {
				params.Details = err.Error()
			}
			resp = TemplStatus(info.status, cfg.ErrorPage(params))
		default:
			http.Error(ctx.ResponseWriter(), message, info.status)
			return
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Component("error_handler"),
				logger.Error(renderErr),
			)
		}
	}
}

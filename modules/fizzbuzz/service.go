package fizzbuzz

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fizzbuzz/binder"
	"github.com/dmitrymomot/fizzbuzz/handler"
	fb "github.com/dmitrymomot/fizzbuzz/pkg/fizzbuzz"
	"github.com/dmitrymomot/fizzbuzz/pkg/i18n"
	"github.com/dmitrymomot/fizzbuzz/pkg/logger"
	"github.com/dmitrymomot/fizzbuzz/pkg/ratelimiter"
)

// Service serves the FizzBuzz form. Every request builds its own edit
// context and validator from the submitted values and releases them before
// responding.
type Service struct {
	cfg          Config
	tr           *i18n.Translator
	views        *Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	limiter      *ratelimiter.Bucket
}

type ServiceOption func(*Service)

// WithRateLimiter throttles the POST endpoints per client. Denied requests
// are rendered by the error handler, as a toast for DataStar clients.
func WithRateLimiter(b *ratelimiter.Bucket) ServiceOption {
	return func(s *Service) { s.limiter = b }
}

// NewService creates the form service. tr is required. Nil views fall back
// to DefaultViews, a nil error handler to one built from the views.
func NewService(cfg Config, tr *i18n.Translator, views *Views, log *slog.Logger, errorHandler handler.ErrorHandler[handler.Context], opts ...ServiceOption) *Service {
	if views == nil {
		views = DefaultViews()
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.MaxLines <= 0 {
		cfg.MaxLines = DefaultConfig().MaxLines
	}
	s := &Service{cfg: cfg, tr: tr, views: views, log: log}
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
			ErrorPage:  views.ErrorPage,
			ErrorToast: views.Toast,
			Translate:  func(ctx context.Context, key string) string { return tr.Tc(ctx, key) },
		})
	}
	s.errorHandler = errorHandler
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the module routes:
//
//	GET  /                page, initial values from ?fizz=&buzz=&stop=
//	POST /fields/{field}  field changed, patches the affected message lists
//	POST /validate        full pass, patches every list and the output
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithBinders[handler.Context, pageRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, pageRequest](s.errorHandler),
	))
	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(ratelimiter.Middleware(s.limiter, ratelimiter.WithErrorResponder(s.rateLimited)))
		}
		r.Post("/fields/{field}", handler.Wrap(s.fieldChanged,
			handler.WithBinders[handler.Context, fieldRequest](binder.Path(chi.URLParam), binder.Signals()),
			handler.WithErrorHandler[handler.Context, fieldRequest](s.errorHandler),
		))
		r.Post("/validate", handler.Wrap(s.validate,
			handler.WithBinders[handler.Context, formSignals](binder.Signals()),
			handler.WithErrorHandler[handler.Context, formSignals](s.errorHandler),
		))
	})

	return r
}

func (s *Service) rateLimited(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result, err error) {
	if err != nil {
		s.errorHandler(handler.NewContext(w, r), errors.Join(handler.ErrInternal, err))
		return
	}
	s.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
}

type pageRequest struct {
	Fizz *int `query:"fizz"`
	Buzz *int `query:"buzz"`
	Stop *int `query:"stop"`
}

type fieldRequest struct {
	Field string `path:"field"`
	formSignals
}

func (s *Service) page(ctx handler.Context, req pageRequest) handler.Response {
	model := &fb.Model{
		FizzValue: valueOr(req.Fizz, s.cfg.DefaultFizz),
		BuzzValue: valueOr(req.Buzz, s.cfg.DefaultBuzz),
		StopValue: valueOr(req.Stop, s.cfg.DefaultStop),
	}

	f, err := s.open(ctx, model)
	if err != nil {
		return handler.Error(err)
	}
	defer f.close()

	// Values given in the URL are checked right away.
	valid := true
	if req.Fizz != nil || req.Buzz != nil || req.Stop != nil {
		if valid, err = f.ec.Validate(); err != nil {
			return handler.Error(err)
		}
	}

	lang := i18n.GetLocale(ctx)
	params := PageParams{
		Lang:   lang,
		Title:  s.tr.T(lang, "fizzbuzz.title"),
		Submit: s.tr.T(lang, "fizzbuzz.submit"),
		Output: s.output(lang, model, valid),
	}
	for _, name := range fb.Fields {
		value, _ := model.Value(name)
		params.Fields = append(params.Fields, FieldParams{
			Name:     name,
			Signal:   signalName(name),
			Label:    s.tr.T(lang, "fizzbuzz.label."+signalName(name)),
			Value:    value,
			Messages: f.ec.FieldMessages(f.ec.Field(name)),
		})
	}

	return handler.Templ(s.views.Page(params))
}

func (s *Service) fieldChanged(ctx handler.Context, req fieldRequest) handler.Response {
	if !fb.IsField(req.Field) {
		return handler.Error(handler.ErrNotFound)
	}

	f, err := s.open(ctx, req.model())
	if err != nil {
		return handler.Error(err)
	}
	defer f.close()

	if err := f.ec.NotifyFieldChanged(f.ec.Field(req.Field)); err != nil {
		return handler.Error(err)
	}

	affected := fb.AffectedFields(req.Field)
	patches := make([]handler.TemplPatch, 0, len(affected))
	for _, name := range affected {
		patches = append(patches, handler.Patch(s.views.FieldErrors(FieldErrorsParams{
			Field:    name,
			Messages: f.ec.FieldMessages(f.ec.Field(name)),
		})))
	}

	s.log.DebugContext(ctx, "field changed",
		logger.Component("fizzbuzz_form"),
		logger.Field(req.Field),
		slog.Int("renders", f.renders),
	)
	return handler.TemplMulti(patches...)
}

func (s *Service) validate(ctx handler.Context, req formSignals) handler.Response {
	model := req.model()
	f, err := s.open(ctx, model)
	if err != nil {
		return handler.Error(err)
	}
	defer f.close()

	valid, err := f.ec.Validate()
	if err != nil {
		return handler.Error(err)
	}

	patches := make([]handler.TemplPatch, 0, len(fb.Fields)+1)
	for _, name := range fb.Fields {
		patches = append(patches, handler.Patch(s.views.FieldErrors(FieldErrorsParams{
			Field:    name,
			Messages: f.ec.FieldMessages(f.ec.Field(name)),
		})))
	}
	lang := i18n.GetLocale(ctx)
	patches = append(patches, handler.Patch(s.views.Output(s.output(lang, model, valid))))

	s.log.DebugContext(ctx, "form validated",
		logger.Component("fizzbuzz_form"),
		slog.Bool("valid", valid),
		slog.Int("renders", f.renders),
	)
	return handler.TemplMultiWithSignals(map[string]any{"valid": valid}, patches...)
}

// output renders at most MaxLines of the sequence, and only for a valid model.
func (s *Service) output(lang string, model *fb.Model, valid bool) OutputParams {
	out := OutputParams{Title: s.tr.T(lang, "fizzbuzz.output.title")}
	if !valid {
		out.Notice = s.tr.T(lang, "fizzbuzz.output.invalid")
		return out
	}

	out.Visible = true
	for n, line := range fb.Sequence(model) {
		if n > s.cfg.MaxLines {
			out.Notice = s.tr.T(lang, "fizzbuzz.output.truncated", "count", strconv.Itoa(s.cfg.MaxLines))
			break
		}
		out.Lines = append(out.Lines, line)
	}
	return out
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

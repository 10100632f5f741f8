// Command fizzbuzz serves the FizzBuzz form over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/fizzbuzz/modules/fizzbuzz"
	"github.com/dmitrymomot/fizzbuzz/pkg/clientip"
	"github.com/dmitrymomot/fizzbuzz/pkg/config"
	"github.com/dmitrymomot/fizzbuzz/pkg/environment"
	"github.com/dmitrymomot/fizzbuzz/pkg/httpserver"
	"github.com/dmitrymomot/fizzbuzz/pkg/i18n"
	"github.com/dmitrymomot/fizzbuzz/pkg/logger"
	"github.com/dmitrymomot/fizzbuzz/pkg/ratelimiter"
	"github.com/dmitrymomot/fizzbuzz/pkg/requestid"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"APP_NAME" envDefault:"fizzbuzz"`
	LogLevel    string `env:"LOG_LEVEL"`
	DefaultLang string `env:"DEFAULT_LANG" envDefault:"en"`

	// TrustedProxyHeaders lists the headers holding the client address,
	// checked in order. Empty means RemoteAddr only.
	TrustedProxyHeaders []string `env:"TRUSTED_PROXY_HEADERS" envDefault:"CF-Connecting-IP,X-Forwarded-For,X-Real-IP"`

	HTTP      httpserver.Config
	Form      fizzbuzz.Config
	RateLimit ratelimiter.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), fizzbuzz.Locales, fizzbuzz.LocalesDir),
		i18n.WithDefaultLanguage(cfg.DefaultLang),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(environment.Parse(cfg.Env) == environment.Development),
	)
	if err != nil {
		return errors.Join(errors.New("load translations"), err)
	}

	store := ratelimiter.NewMemoryStore()
	defer store.Close()
	limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		return err
	}

	form := fizzbuzz.NewService(cfg.Form, tr, nil, log, nil, fizzbuzz.WithRateLimiter(limiter))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	// The leading "" keeps an empty list from falling back to DefaultHeaders.
	r.Use(clientip.Middleware(append([]string{""}, cfg.TrustedProxyHeaders...)...))
	r.Use(environment.Middleware(environment.Parse(cfg.Env)))
	r.Use(i18n.Middleware(tr))
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Mount("/", form.Handle())

	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}

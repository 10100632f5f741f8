package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator resolves dot-separated keys ("fizzbuzz.stop_at_least") against
// nested catalogs loaded from a TranslationAdapter.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	matcher        language.Matcher
	langs          []string
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when negotiation finds no match.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey makes T return the key when a translation is missing. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs missing keys at warn level.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.missingLogMode = enabled
	}
}

// NewTranslator loads the adapter's catalogs.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, tr := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if tr == nil {
			return nil, fmt.Errorf("%w for language %q", ErrNoTranslations, lang)
		}
	}

	t.translations = translations
	t.langs = supported(translations, t.defaultLang)
	t.matcher = newMatcher(t.langs)

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the loaded languages, default language first.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.langs)
}

// Negotiate picks the best supported language for an Accept-Language header.
func (t *Translator) Negotiate(acceptLanguage string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return negotiate(t.matcher, t.langs, acceptLanguage, t.defaultLang)
}

// Match maps a single language code ("es-MX") to a supported language, or "".
func (t *Translator) Match(lang string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return match(t.matcher, t.langs, lang)
}

func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key, substituting %{name} placeholders from key/value args.
// Missing translations yield the key, or "" when fallback to key is disabled.
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.lookup(lang, key); ok {
		return sprintf(s, args)
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td is T with an explicit fallback template.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if s, ok := t.lookup(lang, key); ok {
		return sprintf(s, args)
	}
	return sprintf(defaultValue, args)
}

// Tc translates key in the language stored on ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	catalog, ok := t.translations[lang]
	if !ok {
		t.missing("language not supported", lang, key)
		return "", false
	}

	var current any = catalog
	for part := range strings.SplitSeq(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			t.missing("translation not found", lang, key)
			return "", false
		}
		if current, ok = m[part]; !ok {
			t.missing("translation not found", lang, key)
			return "", false
		}
	}

	s, ok := current.(string)
	if !ok {
		t.missing("translation is not a string", lang, key)
	}
	return s, ok
}

func (t *Translator) missing(msg, lang, key string) {
	if t.missingLogMode {
		t.logger.Warn(msg, slog.String("lang", lang), slog.String("key", key))
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf replaces %{name} with the value following name in args. Unknown
// placeholders are kept; a trailing odd argument is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(m string) string {
		if v, ok := params[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

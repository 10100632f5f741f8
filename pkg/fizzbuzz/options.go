package fizzbuzz

import "log/slog"

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for validation diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// WithTranslator renders messages through t in lang instead of the built-in
// English texts. Keys missing from the catalog fall back to English.
func WithTranslator(t Translator, lang string) Option {
	return func(v *Validator) {
		if t == nil {
			return
		}
		v.translator = t
		if lang != "" {
			v.lang = lang
		}
	}
}

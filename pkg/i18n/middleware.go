package i18n

import (
	"net/http"
	"strings"
)

// LangQueryParam and LangCookie override Accept-Language when they name a
// supported language.
const (
	LangQueryParam = "lang"
	LangCookie     = "lang"
)

// Middleware stores the request language on the context. The "lang" query
// parameter wins over the "lang" cookie, which wins over Accept-Language.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), t.requestLanguage(r))))
		})
	}
}

func (t *Translator) requestLanguage(r *http.Request) string {
	if q := strings.TrimSpace(r.URL.Query().Get(LangQueryParam)); q != "" {
		if lang := t.Match(q); lang != "" {
			return lang
		}
	}
	if c, err := r.Cookie(LangCookie); err == nil {
		if lang := t.Match(c.Value); lang != "" {
			return lang
		}
	}
	return t.Negotiate(r.Header.Get("Accept-Language"))
}

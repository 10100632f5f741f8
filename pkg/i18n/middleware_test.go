package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fizzbuzz/pkg/i18n"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	tests := []struct {
		name   string
		target string
		cookie string
		accept string
		want   string
	}{
		{name: "default", target: "/", want: "en"},
		{name: "accept language", target: "/", accept: "es-MX", want: "es"},
		{name: "cookie beats header", target: "/", cookie: "en", accept: "es", want: "en"},
		{name: "query beats cookie", target: "/?lang=es", cookie: "en", want: "es"},
		{name: "unsupported query ignored", target: "/?lang=de", accept: "es", want: "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			h := i18n.Middleware(tr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = i18n.GetLocale(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: i18n.LangCookie, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

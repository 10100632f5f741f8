package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fizzbuzz/binder"
)

type request struct {
	Field   string `path:"field"`
	Fizz    int    `query:"fizz" json:"fizz"`
	Buzz    *int   `query:"buzz" json:"buzz"`
	Verbose bool   `query:"verbose"`
	Skipped string `query:"-"`
	hidden  int    `query:"hidden"`
}

func TestQuery(t *testing.T) {
	t.Parallel()

	t.Run("binds tagged fields", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/?fizz=3&buzz=5&verbose=true&Skipped=x&hidden=1", nil)
		var req request
		require.NoError(t, binder.Query()(r, &req))

		assert.Equal(t, 3, req.Fizz)
		require.NotNil(t, req.Buzz)
		assert.Equal(t, 5, *req.Buzz)
		assert.True(t, req.Verbose)
		assert.Empty(t, req.Skipped)
		assert.Zero(t, req.hidden)
	})

	t.Run("missing values keep defaults", func(t *testing.T) {
		t.Parallel()

		req := request{Fizz: 7}
		require.NoError(t, binder.Query()(httptest.NewRequest(http.MethodGet, "/", nil), &req))
		assert.Equal(t, 7, req.Fizz)
		assert.Nil(t, req.Buzz)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()

		var req request
		err := binder.Query()(httptest.NewRequest(http.MethodGet, "/?fizz=abc", nil), &req)
		assert.ErrorIs(t, err, binder.ErrInvalidQuery)
	})

	t.Run("invalid target", func(t *testing.T) {
		t.Parallel()

		var n int
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.ErrorIs(t, binder.Query()(r, &n), binder.ErrInvalidTarget)
		assert.ErrorIs(t, binder.Query()(r, request{}), binder.ErrInvalidTarget)
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	params := map[string]string{"field": "StopValue"}
	extract := func(_ *http.Request, name string) string { return params[name] }

	var req request
	require.NoError(t, binder.Path(extract)(httptest.NewRequest(http.MethodPost, "/", nil), &req))
	assert.Equal(t, "StopValue", req.Field)

	assert.ErrorIs(t, binder.Path(nil)(httptest.NewRequest(http.MethodPost, "/", nil), &req), binder.ErrInvalidPath)
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("body", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"fizz":3,"buzz":5}`))
		r.Header.Set("Content-Type", "application/json")

		var req request
		require.NoError(t, binder.Signals()(r, &req))
		assert.Equal(t, 3, req.Fizz)
		require.NotNil(t, req.Buzz)
		assert.Equal(t, 5, *req.Buzz)
	})

	t.Run("query on get", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/?datastar="+url.QueryEscape(`{"fizz":4}`), nil)
		var req request
		require.NoError(t, binder.Signals()(r, &req))
		assert.Equal(t, 4, req.Fizz)
	})

	t.Run("not applicable", func(t *testing.T) {
		t.Parallel()

		var req request
		assert.ErrorIs(t, binder.Signals()(httptest.NewRequest(http.MethodGet, "/", nil), &req), binder.ErrNotApplicable)
		assert.ErrorIs(t, binder.Signals()(httptest.NewRequest(http.MethodPost, "/", nil), &req), binder.ErrNotApplicable)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"fizz":`))
		var req request
		assert.ErrorIs(t, binder.Signals()(r, &req), binder.ErrInvalidSignals)
	})
}

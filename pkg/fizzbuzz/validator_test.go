package fizzbuzz_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fizzbuzz/pkg/editform"
	"github.com/dmitrymomot/fizzbuzz/pkg/fizzbuzz"
	"github.com/dmitrymomot/fizzbuzz/pkg/logger"
)

const (
	msgFizz = "The Fizz value must be less than the Buzz value."
	msgBuzz = "The Buzz value must be greater than the Fizz value."
)

type form struct {
	model *fizzbuzz.Model
	ec    *editform.EditContext
	v     *fizzbuzz.Validator
}

func newForm(t *testing.T, fizz, buzz, stop int, opts ...fizzbuzz.Option) *form {
	t.Helper()

	model := &fizzbuzz.Model{FizzValue: fizz, BuzzValue: buzz, StopValue: stop}
	ec, err := editform.New(model)
	require.NoError(t, err)

	v, err := fizzbuzz.New(ec, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })

	return &form{model: model, ec: ec, v: v}
}

func (f *form) messages(name string) []string {
	return f.ec.FieldMessages(f.ec.Field(name))
}

func (f *form) change(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, f.ec.NotifyFieldChanged(f.ec.Field(name)))
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("missing edit context", func(t *testing.T) {
		t.Parallel()

		v, err := fizzbuzz.New(nil)
		require.Error(t, err)
		assert.Nil(t, v)
		assert.ErrorIs(t, err, fizzbuzz.ErrMissingEditContext)
		assert.True(t, fizzbuzz.IsConfigError(err))
	})

	t.Run("active after construction", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 3, 5, 15)
		assert.Equal(t, fizzbuzz.StateActive, f.v.State())
		assert.Empty(t, f.v.Messages())
	})
}

func TestFieldChanged(t *testing.T) {
	t.Parallel()

	t.Run("fizz not below buzz", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 5, 3, 15)
		f.change(t, fizzbuzz.FieldFizz)

		assert.Equal(t, []string{msgFizz}, f.messages(fizzbuzz.FieldFizz))
		assert.Empty(t, f.messages(fizzbuzz.FieldBuzz))
	})

	t.Run("buzz not above fizz", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 5, 5, 25)
		f.change(t, fizzbuzz.FieldBuzz)

		assert.Equal(t, []string{msgBuzz}, f.messages(fizzbuzz.FieldBuzz))
		assert.Empty(t, f.messages(fizzbuzz.FieldFizz))
	})

	t.Run("stop below product", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 3, 5, 10)
		f.change(t, fizzbuzz.FieldStop)

		assert.Equal(t,
			[]string{"The Stop value must be greater or equal to 15."},
			f.messages(fizzbuzz.FieldStop))
	})

	t.Run("stop equal to product", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 3, 5, 15)
		f.change(t, fizzbuzz.FieldStop)
		assert.Empty(t, f.messages(fizzbuzz.FieldStop))
	})

	t.Run("fixing buzz clears the fizz message", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 5, 3, 100)
		f.change(t, fizzbuzz.FieldFizz)
		require.NotEmpty(t, f.messages(fizzbuzz.FieldFizz))

		f.model.BuzzValue = 7
		f.change(t, fizzbuzz.FieldBuzz)

		assert.Empty(t, f.messages(fizzbuzz.FieldFizz))
		assert.Empty(t, f.messages(fizzbuzz.FieldBuzz))
	})

	t.Run("changing fizz leaves stop stale", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 3, 5, 10)
		f.change(t, fizzbuzz.FieldStop)
		require.Len(t, f.messages(fizzbuzz.FieldStop), 1)

		f.model.FizzValue = 1
		f.change(t, fizzbuzz.FieldFizz)

		// 1*5 <= 10 now, but only a Stop change or a full pass re-checks it.
		assert.Len(t, f.messages(fizzbuzz.FieldStop), 1)

		f.change(t, fizzbuzz.FieldStop)
		assert.Empty(t, f.messages(fizzbuzz.FieldStop))
	})

	t.Run("unknown field only clears and notifies", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 5, 3, 1)
		require.NoError(t, f.v.ValidateAll())
		before := len(f.ec.Messages())

		notified := 0
		sub := f.ec.OnValidationStateChanged(func(editform.ValidationStateChangedEvent) { notified++ })
		defer sub.Close()

		f.change(t, "Other")
		assert.Equal(t, 1, notified)
		assert.Len(t, f.ec.Messages(), before)
	})

	t.Run("repeated change keeps one message", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 5, 3, 15)
		f.change(t, fizzbuzz.FieldFizz)
		f.change(t, fizzbuzz.FieldFizz)
		assert.Len(t, f.messages(fizzbuzz.FieldFizz), 1)
	})
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	t.Run("valid model", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 3, 5, 15)
		ok, err := f.ec.Validate()
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, f.ec.Messages())
	})

	t.Run("every violated field reports", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 5, 3, 10)
		ok, err := f.ec.Validate()
		require.NoError(t, err)
		assert.False(t, ok)

		assert.Equal(t, []string{msgFizz}, f.messages(fizzbuzz.FieldFizz))
		assert.Equal(t, []string{msgBuzz}, f.messages(fizzbuzz.FieldBuzz))
		assert.Equal(t,
			[]string{"The Stop value must be greater or equal to 15."},
			f.messages(fizzbuzz.FieldStop))
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 5, 3, 10)
		require.NoError(t, f.v.ValidateAll())
		first := f.v.Messages()
		require.NoError(t, f.v.ValidateAll())
		assert.Equal(t, first, f.v.Messages())
	})

	t.Run("clears stale messages", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 3, 5, 10)
		f.change(t, fizzbuzz.FieldStop)
		require.NotEmpty(t, f.messages(fizzbuzz.FieldStop))

		f.model.StopValue = 30
		require.NoError(t, f.v.ValidateAll())
		assert.Empty(t, f.ec.Messages())
	})

	t.Run("notifies once", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 5, 3, 1)
		notified := 0
		sub := f.ec.OnValidationStateChanged(func(editform.ValidationStateChangedEvent) { notified++ })
		defer sub.Close()

		require.NoError(t, f.v.ValidateAll())
		assert.Equal(t, 1, notified)
	})
}

func TestInvariants(t *testing.T) {
	t.Parallel()

	for fizz := -3; fizz <= 6; fizz++ {
		for buzz := -3; buzz <= 6; buzz++ {
			for _, stop := range []int{-10, 0, 9, 10, 36, 100} {
				f := newForm(t, fizz, buzz, stop)
				require.NoError(t, f.v.ValidateAll())

				name := fmt.Sprintf("fizz=%d buzz=%d stop=%d", fizz, buzz, stop)
				assert.Equal(t, fizz >= buzz, len(f.messages(fizzbuzz.FieldFizz)) == 1, name)
				assert.Equal(t, buzz <= fizz, len(f.messages(fizzbuzz.FieldBuzz)) == 1, name)
				assert.Equal(t, stop < fizz*buzz, len(f.messages(fizzbuzz.FieldStop)) == 1, name)
				_ = f.v.Close()
			}
		}
	}
}

func TestModelMismatch(t *testing.T) {
	t.Parallel()

	type other struct{ Name string }

	buf := &bytes.Buffer{}
	ec, err := editform.New(&other{})
	require.NoError(t, err)

	v, err := fizzbuzz.New(ec, fizzbuzz.WithLogger(logger.New(logger.WithOutput(buf))))
	require.NoError(t, err)
	defer v.Close()

	err = v.ValidateAll()
	assert.ErrorIs(t, err, fizzbuzz.ErrModelMismatch)

	var cfgErr *fizzbuzz.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "fizzbuzz.ValidateAll", cfgErr.Op)
	assert.Contains(t, cfgErr.Error(), "*fizzbuzz_test.other")

	err = ec.NotifyFieldChanged(ec.Field(fizzbuzz.FieldFizz))
	assert.ErrorIs(t, err, editform.ErrHandlerFailed)
	assert.ErrorIs(t, err, fizzbuzz.ErrModelMismatch)

	assert.Empty(t, v.Messages())
	assert.Contains(t, buf.String(), "fizzbuzz_validator")
}

func TestClose(t *testing.T) {
	t.Parallel()

	t.Run("detaches from the edit context", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 5, 3, 1)
		require.NoError(t, f.v.Close())
		assert.Equal(t, fizzbuzz.StateDisposed, f.v.State())

		f.change(t, fizzbuzz.FieldFizz)
		ok, err := f.ec.Validate()
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, f.v.Messages())
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 3, 5, 15)
		require.NoError(t, f.v.Close())
		require.NoError(t, f.v.Close())
	})

	t.Run("operations fail after close", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 3, 5, 15)
		require.NoError(t, f.v.Close())

		assert.ErrorIs(t, f.v.ValidateAll(), fizzbuzz.ErrValidatorDisposed)
		assert.ErrorIs(t, f.v.ValidateField(f.ec.Field(fizzbuzz.FieldStop)), fizzbuzz.ErrValidatorDisposed)
	})

	t.Run("other validators keep working", func(t *testing.T) {
		t.Parallel()

		f := newForm(t, 5, 3, 15)
		second, err := fizzbuzz.New(f.ec)
		require.NoError(t, err)
		defer second.Close()

		require.NoError(t, f.v.Close())
		f.change(t, fizzbuzz.FieldFizz)
		assert.Equal(t, []string{msgFizz}, f.messages(fizzbuzz.FieldFizz))
	})
}

type mapTranslator map[string]string

func (m mapTranslator) Td(lang, key, defaultValue string, args ...string) string {
	msg, ok := m[lang+":"+key]
	if !ok {
		msg = defaultValue
	}
	for i := 0; i+1 < len(args); i += 2 {
		msg = strings.ReplaceAll(msg, "%{"+args[i]+"}", args[i+1])
	}
	return msg
}

func TestWithTranslator(t *testing.T) {
	t.Parallel()

	tr := mapTranslator{
		"es:" + fizzbuzz.KeyStopAtLeast: "El valor de Stop debe ser mayor o igual a %{min}.",
	}

	f := newForm(t, 5, 3, 10, fizzbuzz.WithTranslator(tr, "es"))
	require.NoError(t, f.v.ValidateAll())

	assert.Equal(t, []string{"El valor de Stop debe ser mayor o igual a 15."}, f.messages(fizzbuzz.FieldStop))
	assert.Equal(t, []string{msgFizz}, f.messages(fizzbuzz.FieldFizz), "missing keys fall back to English")
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))

	f := newForm(t, 3, 5, 10, fizzbuzz.WithLogger(log))
	f.change(t, fizzbuzz.FieldStop)

	assert.Contains(t, buf.String(), `"field":"StopValue"`)
	assert.Contains(t, buf.String(), `"messages":1`)
}

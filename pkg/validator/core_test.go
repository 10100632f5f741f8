package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fizzbuzz/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("renders placeholders", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:             "stop",
			Message:           "must be at least %{min}",
			TranslationValues: map[string]any{"min": 15},
		})
		assert.Equal(t, "validation failed: stop: must be at least 15", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "password", Message: "missing special character"})
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})

	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"too short", "missing special character"}, errs.Get("password"))
	assert.Empty(t, errs.Get("name"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestValidationError_TranslationArgs(t *testing.T) {
	verr := validator.ValidationError{
		TranslationValues: map[string]any{"min": 15, "field": "stop"},
	}
	assert.Equal(t, []string{"field", "stop", "min", "15"}, verr.TranslationArgs())
	assert.Empty(t, validator.ValidationError{}.TranslationArgs())
}

func TestValidationError_Render(t *testing.T) {
	t.Run("without values", func(t *testing.T) {
		verr := validator.ValidationError{Message: "plain %{min}"}
		assert.Equal(t, "plain %{min}", verr.Render())
	})

	t.Run("unknown placeholder is kept", func(t *testing.T) {
		verr := validator.ValidationError{
			Message:           "%{min} and %{max}",
			TranslationValues: map[string]any{"min": 1},
		}
		assert.Equal(t, "1 and %{max}", verr.Render())
	})
}

func TestRule_WithError(t *testing.T) {
	rule := validator.MinNum("stop", 10, 15).WithError("custom.key", "at least %{min}")

	assert.False(t, rule.Check())
	assert.Equal(t, "stop", rule.Error.Field)
	assert.Equal(t, "custom.key", rule.Error.TranslationKey)
	assert.Equal(t, "at least 15", rule.Error.Render())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.MinNum("a", 5, 1),
			validator.LessThanNum("b", 1, 2),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failing rules in order", func(t *testing.T) {
		err := validator.Apply(
			validator.LessThanNum("fizz", 5, 3),
			validator.MinNum("ok", 5, 1),
			validator.GreaterThanNum("buzz", 3, 5),
		)
		require.Error(t, err)
		require.True(t, validator.IsValidationError(err))

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "fizz", errs[0].Field)
		assert.Equal(t, "buzz", errs[1].Field)
	})

	t.Run("extract from wrapped error", func(t *testing.T) {
		err := fmt.Errorf("submit: %w", validator.Apply(validator.MaxNum("n", 10, 5)))
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, []string{"must be at most 5"}, errs.Get("n"))
	})

	t.Run("non validation errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
		assert.False(t, validator.IsValidationError(nil))
		assert.False(t, validator.IsValidationError(errors.New("other")))
	})
}

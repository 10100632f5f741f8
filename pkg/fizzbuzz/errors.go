package fizzbuzz

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingEditContext is returned by New when no edit context is supplied.
	ErrMissingEditContext = errors.New("fizzbuzz: validator requires an edit context; use it inside an edit form")

	// ErrModelMismatch is returned when the edit context is bound to a model
	// that does not provide FizzBuzz values.
	ErrModelMismatch = errors.New("fizzbuzz: validator requires a model of type FizzBuzz")

	// ErrValidatorDisposed is returned by operations on a closed validator.
	ErrValidatorDisposed = errors.New("fizzbuzz: validator is disposed")
)

// ConfigError reports a misconfigured form: the validator was attached without
// an edit context or to the wrong model. It is not caused by user input.
type ConfigError struct {
	Op    string
	Model any
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Model != nil {
		return fmt.Sprintf("%s: %v (got %T)", e.Op, e.Err, e.Model)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is a form configuration error.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

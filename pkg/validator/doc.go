// Package validator provides small, generic rule values that pair a boolean
// check with translation-friendly error metadata.
//
// A Rule is built by a helper such as MinNum or LessThanNum and evaluated with
// Apply, which collects every failing rule into ValidationErrors. The error
// metadata carries a TranslationKey and TranslationValues so callers can
// render the message through a translator instead of the built-in English text.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.LessThanNum("fizz", fizz, buzz),
//	    validator.MinNum("stop", stop, fizz*buzz).
//	        WithError("fizzbuzz.stop_at_least", "must be at least %{min}"),
//	)
//	for _, verr := range validator.ExtractValidationErrors(err) {
//	    fmt.Println(verr.Field, verr.Render())
//	}
//
// # Error Handling
//
// ValidationErrors implements error, so errors.As and ExtractValidationErrors
// recover the field-level details from a returned error.
//
// Rules are stateless values; the package holds no global state and is safe
// for concurrent use.
package validator

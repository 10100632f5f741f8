package fizzbuzz

import (
	"github.com/dmitrymomot/fizzbuzz/pkg/validator"
)

// Translation keys of the validator messages.
const (
	KeyFizzBelowBuzz = "fizzbuzz.fizz_below_buzz"
	KeyBuzzAboveFizz = "fizzbuzz.buzz_above_fizz"
	KeyStopAtLeast   = "fizzbuzz.stop_at_least"
)

// Default English messages. %{min} is replaced with FizzValue * BuzzValue.
const (
	MsgFizzBelowBuzz = "The Fizz value must be less than the Buzz value."
	MsgBuzzAboveFizz = "The Buzz value must be greater than the Fizz value."
	MsgStopAtLeast   = "The Stop value must be greater or equal to %{min}."
)

// Translator resolves a message key for a language, falling back to
// defaultValue, with %{name} substitution from key/value args.
// *i18n.Translator satisfies it.
type Translator interface {
	Td(lang, key, defaultValue string, args ...string) string
}

func fizzBelowBuzz(fizz, buzz int) validator.Rule {
	return validator.LessThanNum(FieldFizz, fizz, buzz).WithError(KeyFizzBelowBuzz, MsgFizzBelowBuzz)
}

func buzzAboveFizz(fizz, buzz int) validator.Rule {
	return validator.GreaterThanNum(FieldBuzz, buzz, fizz).WithError(KeyBuzzAboveFizz, MsgBuzzAboveFizz)
}

func stopAtLeastProduct(fizz, buzz, stop int) validator.Rule {
	return validator.MinNum(FieldStop, stop, fizz*buzz).WithError(KeyStopAtLeast, MsgStopAtLeast)
}

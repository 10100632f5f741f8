package fizzbuzz

import (
	"iter"
	"strconv"
)

// Field names of Model, as used in editform.FieldIdentifier.
const (
	FieldFizz = "FizzValue"
	FieldBuzz = "BuzzValue"
	FieldStop = "StopValue"
)

// Fields lists the model fields in validation order.
var Fields = []string{FieldFizz, FieldBuzz, FieldStop}

// Values is the capability the validator needs from a bound model.
type Values interface {
	FizzBuzzValues() (fizz, buzz, stop int)
}

// Model is the FizzBuzz form model.
type Model struct {
	FizzValue int `json:"fizz" form:"fizz" query:"fizz"`
	BuzzValue int `json:"buzz" form:"buzz" query:"buzz"`
	StopValue int `json:"stop" form:"stop" query:"stop"`
}

// FizzBuzzValues implements Values.
func (m *Model) FizzBuzzValues() (fizz, buzz, stop int) {
	return m.FizzValue, m.BuzzValue, m.StopValue
}

// Value returns the value of the named field and whether the name is known.
func (m *Model) Value(field string) (int, bool) {
	switch field {
	case FieldFizz:
		return m.FizzValue, true
	case FieldBuzz:
		return m.BuzzValue, true
	case FieldStop:
		return m.StopValue, true
	}
	return 0, false
}

// IsField reports whether name is one of the model fields.
func IsField(name string) bool {
	switch name {
	case FieldFizz, FieldBuzz, FieldStop:
		return true
	}
	return false
}

// AffectedFields returns the fields whose messages a change of name can touch.
// Fizz and Buzz are coupled; Stop stands alone. Unknown names affect nothing.
func AffectedFields(name string) []string {
	switch name {
	case FieldFizz:
		return []string{FieldFizz, FieldBuzz}
	case FieldBuzz:
		return []string{FieldBuzz, FieldFizz}
	case FieldStop:
		return []string{FieldStop}
	}
	return nil
}

// Sequence yields the FizzBuzz output for 1..stop: "FizzBuzz" for multiples of
// both fizz and buzz, "Fizz" or "Buzz" for multiples of one, the number
// otherwise. A zero divisor never matches.
func Sequence(v Values) iter.Seq2[int, string] {
	fizz, buzz, stop := v.FizzBuzzValues()
	return func(yield func(int, string) bool) {
		for n := 1; n <= stop; n++ {
			if !yield(n, say(n, fizz, buzz)) {
				return
			}
		}
	}
}

func say(n, fizz, buzz int) string {
	isFizz := fizz != 0 && n%fizz == 0
	isBuzz := buzz != 0 && n%buzz == 0
	switch {
	case isFizz && isBuzz:
		return "FizzBuzz"
	case isFizz:
		return "Fizz"
	case isBuzz:
		return "Buzz"
	}
	return strconv.Itoa(n)
}

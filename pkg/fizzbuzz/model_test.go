package fizzbuzz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fizzbuzz/pkg/fizzbuzz"
)

func collect(v fizzbuzz.Values) []string {
	var out []string
	for _, s := range fizzbuzz.Sequence(v) {
		out = append(out, s)
	}
	return out
}

func TestSequence(t *testing.T) {
	t.Parallel()

	t.Run("classic", func(t *testing.T) {
		t.Parallel()

		got := collect(&fizzbuzz.Model{FizzValue: 3, BuzzValue: 5, StopValue: 15})
		assert.Equal(t, []string{
			"1", "2", "Fizz", "4", "Buzz", "Fizz", "7", "8", "Fizz", "Buzz",
			"11", "Fizz", "13", "14", "FizzBuzz",
		}, got)
	})

	t.Run("zero divisors never match", func(t *testing.T) {
		t.Parallel()

		got := collect(&fizzbuzz.Model{FizzValue: 0, BuzzValue: 2, StopValue: 4})
		assert.Equal(t, []string{"1", "Buzz", "3", "Buzz"}, got)
	})

	t.Run("non-positive stop is empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, collect(&fizzbuzz.Model{FizzValue: 3, BuzzValue: 5, StopValue: 0}))
	})

	t.Run("early break", func(t *testing.T) {
		t.Parallel()

		n := 0
		for i := range fizzbuzz.Sequence(&fizzbuzz.Model{FizzValue: 3, BuzzValue: 5, StopValue: 100}) {
			n = i
			if i == 3 {
				break
			}
		}
		assert.Equal(t, 3, n)
	})
}

func TestAffectedFields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{fizzbuzz.FieldFizz, fizzbuzz.FieldBuzz}, fizzbuzz.AffectedFields(fizzbuzz.FieldFizz))
	assert.Equal(t, []string{fizzbuzz.FieldBuzz, fizzbuzz.FieldFizz}, fizzbuzz.AffectedFields(fizzbuzz.FieldBuzz))
	assert.Equal(t, []string{fizzbuzz.FieldStop}, fizzbuzz.AffectedFields(fizzbuzz.FieldStop))
	assert.Nil(t, fizzbuzz.AffectedFields("Other"))
}

func TestModelValue(t *testing.T) {
	t.Parallel()

	m := &fizzbuzz.Model{FizzValue: 1, BuzzValue: 2, StopValue: 3}
	for name, want := range map[string]int{
		fizzbuzz.FieldFizz: 1,
		fizzbuzz.FieldBuzz: 2,
		fizzbuzz.FieldStop: 3,
	} {
		got, ok := m.Value(name)
		assert.True(t, ok)
		assert.Equal(t, want, got)
		assert.True(t, fizzbuzz.IsField(name))
	}

	_, ok := m.Value("Other")
	assert.False(t, ok)
	assert.False(t, fizzbuzz.IsField("Other"))
}

package fizzbuzz

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	fb "github.com/dmitrymomot/fizzbuzz/pkg/fizzbuzz"
)

// intSignal accepts a JSON number or a numeric string, since bound inputs
// may send either. Empty and null decode to zero.
type intSignal int

func (n *intSignal) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	s := string(bytes.TrimSpace(b))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		*n = intSignal(v)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("not an integer: %q", s)
	}
	*n = intSignal(f)
	return nil
}

// formSignals are the DataStar signals bound to the inputs.
type formSignals struct {
	Fizz intSignal `json:"fizz"`
	Buzz intSignal `json:"buzz"`
	Stop intSignal `json:"stop"`
}

func (s formSignals) model() *fb.Model {
	return &fb.Model{FizzValue: int(s.Fizz), BuzzValue: int(s.Buzz), StopValue: int(s.Stop)}
}

// signalName maps a model field to its signal.
func signalName(field string) string {
	switch field {
	case fb.FieldFizz:
		return "fizz"
	case fb.FieldBuzz:
		return "buzz"
	case fb.FieldStop:
		return "stop"
	}
	return ""
}

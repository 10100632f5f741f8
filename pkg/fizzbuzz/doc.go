// Package fizzbuzz implements the FizzBuzz form model and the field validator
// that keeps its cross-field constraints visible in an editform.EditContext.
//
// The model has three integer fields: FizzValue, BuzzValue and StopValue.
// The validator enforces
//
//	FizzValue < BuzzValue
//	BuzzValue > FizzValue
//	StopValue >= FizzValue * BuzzValue
//
// by recording messages in its own editform.MessageStore. Values may break the
// constraints at any time; the validator only reports it.
//
// # Usage
//
//	model := &fizzbuzz.Model{FizzValue: 3, BuzzValue: 5, StopValue: 10}
//	ec, _ := editform.New(model)
//
//	v, err := fizzbuzz.New(ec, fizzbuzz.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	defer v.Close()
//
//	_ = ec.NotifyFieldChanged(ec.Field(fizzbuzz.FieldStop))
//	ec.FieldMessages(ec.Field(fizzbuzz.FieldStop))
//	// ["The Stop value must be greater or equal to 15."]
//
// # Field coupling
//
// A change of FizzValue also clears BuzzValue's messages and the other way
// round, so the Fizz/Buzz pair is always recomputed from whichever side
// changed. StopValue is only re-checked when StopValue itself changes or on
// a full pass (ValidateAll / EditContext.Validate). A Fizz or Buzz change
// that raises the product above StopValue leaves StopValue's messages stale
// until then.
//
// # Lifecycle
//
// A Validator is Active after New and Disposed after Close. Close detaches it
// from the edit context; a disposed validator rejects further calls with
// ErrValidatorDisposed and never touches its store again.
package fizzbuzz

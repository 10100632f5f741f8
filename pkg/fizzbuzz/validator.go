package fizzbuzz

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/fizzbuzz/pkg/editform"
	"github.com/dmitrymomot/fizzbuzz/pkg/logger"
	"github.com/dmitrymomot/fizzbuzz/pkg/statemachine"
	"github.com/dmitrymomot/fizzbuzz/pkg/validator"
)

// Lifecycle states of a Validator.
const (
	StateUninitialized = statemachine.StringState("uninitialized")
	StateActive        = statemachine.StringState("active")
	StateDisposed      = statemachine.StringState("disposed")
)

const (
	eventAttach  = statemachine.StringEvent("attach")
	eventDispose = statemachine.StringEvent("dispose")
)

// Validator checks the FizzBuzz constraints of the model bound to an edit
// context and records violations in its own message store.
type Validator struct {
	ec         *editform.EditContext
	store      *editform.MessageStore
	subs       []editform.Subscription
	lifecycle  *statemachine.SimpleStateMachine
	log        *slog.Logger
	translator Translator
	lang       string
}

// New attaches a validator to ec. It subscribes to field-changed and
// validation-requested notifications until Close is called.
func New(ec *editform.EditContext, opts ...Option) (*Validator, error) {
	if ec == nil {
		return nil, &ConfigError{Op: "fizzbuzz.New", Err: ErrMissingEditContext}
	}

	v := &Validator{
		ec:   ec,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		lang: "en",
	}
	for _, opt := range opts {
		opt(v)
	}

	v.lifecycle = statemachine.MustNew(StateUninitialized,
		statemachine.WithTransition(StateUninitialized, StateActive, eventAttach,
			statemachine.WithAction(v.attach)),
		statemachine.WithTransition(StateActive, StateDisposed, eventDispose,
			statemachine.WithAction(v.detach)),
	)
	if err := v.lifecycle.Fire(context.Background(), eventAttach, nil); err != nil {
		return nil, err
	}
	return v, nil
}

// State returns the lifecycle state.
func (v *Validator) State() statemachine.State {
	return v.lifecycle.Current()
}

// ValidateField re-checks the constraints that involve field and notifies the
// edit context that the validation state changed.
func (v *Validator) ValidateField(field editform.FieldIdentifier) error {
	values, err := v.values("fizzbuzz.ValidateField")
	if err != nil {
		return err
	}

	v.validateField(field, values)
	v.ec.NotifyValidationStateChanged()
	return nil
}

// ValidateAll clears every message, validates FizzValue, BuzzValue and
// StopValue in that order and notifies the edit context once.
func (v *Validator) ValidateAll() error {
	values, err := v.values("fizzbuzz.ValidateAll")
	if err != nil {
		return err
	}

	v.store.Clear()
	for _, name := range Fields {
		v.validateField(v.ec.Field(name), values)
	}
	v.ec.NotifyValidationStateChanged()
	return nil
}

// Messages returns a copy of the messages this validator recorded.
func (v *Validator) Messages() map[editform.FieldIdentifier][]string {
	return v.store.Snapshot()
}

// Close detaches the validator from the edit context. It is idempotent.
func (v *Validator) Close() error {
	ctx := context.Background()
	if !v.lifecycle.CanFire(ctx, eventDispose, nil) {
		return nil
	}
	return v.lifecycle.Fire(ctx, eventDispose, nil)
}

func (v *Validator) attach(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
	store, err := editform.NewMessageStore(v.ec)
	if err != nil {
		return errors.Join(ErrMissingEditContext, err)
	}
	v.store = store
	v.subs = []editform.Subscription{
		v.ec.OnFieldChanged(v.handleFieldChanged),
		v.ec.OnValidationRequested(v.handleValidationRequested),
	}
	return nil
}

func (v *Validator) detach(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
	var errs []error
	for _, sub := range v.subs {
		errs = append(errs, sub.Close())
	}
	v.subs = nil
	return errors.Join(errs...)
}

func (v *Validator) handleFieldChanged(e editform.FieldChangedEvent) error {
	return v.ValidateField(e.Field)
}

func (v *Validator) handleValidationRequested(editform.ValidationRequestedEvent) error {
	return v.ValidateAll()
}

// values checks the lifecycle and the bound model before a validation pass.
func (v *Validator) values(op string) (Values, error) {
	if v.State() != StateActive {
		return nil, ErrValidatorDisposed
	}

	model := v.ec.Model()
	values, ok := model.(Values)
	if !ok {
		err := &ConfigError{Op: op, Model: model, Err: ErrModelMismatch}
		v.log.Error("validator bound to wrong model",
			logger.Component("fizzbuzz_validator"),
			logger.Error(err),
		)
		return nil, err
	}
	return values, nil
}

func (v *Validator) validateField(field editform.FieldIdentifier, values Values) {
	fizz, buzz, stop := values.FizzBuzzValues()

	v.store.ClearField(field)

	var rules []validator.Rule
	switch field.FieldName {
	case FieldFizz:
		v.store.ClearField(v.ec.Field(FieldBuzz))
		rules = append(rules, fizzBelowBuzz(fizz, buzz))
	case FieldBuzz:
		v.store.ClearField(v.ec.Field(FieldFizz))
		rules = append(rules, buzzAboveFizz(fizz, buzz))
	case FieldStop:
		rules = append(rules, stopAtLeastProduct(fizz, buzz, stop))
	}

	verrs := validator.ExtractValidationErrors(validator.Apply(rules...))
	for _, verr := range verrs {
		v.store.Add(field, v.message(verr))
	}

	v.log.Debug("field validated",
		logger.Component("fizzbuzz_validator"),
		logger.Field(field.FieldName),
		slog.Int("messages", len(verrs)),
	)
}

func (v *Validator) message(verr validator.ValidationError) string {
	if v.translator == nil {
		return verr.Render()
	}
	return v.translator.Td(v.lang, verr.TranslationKey, verr.Message, verr.TranslationArgs()...)
}

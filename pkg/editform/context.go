package editform

import (
	"errors"
	"sync"
)

// EditContext tracks a bound model, field changes, validation requests and
// the message stores attached by validators.
type EditContext struct {
	model any

	mu                  sync.RWMutex
	fieldChanged        []*registration[FieldChangedHandler]
	validationRequested []*registration[ValidationRequestedHandler]
	stateChanged        []*registration[ValidationStateChangedHandler]
	stores              []*MessageStore
	modified            map[FieldIdentifier]struct{}
}

// New creates an edit context bound to model.
func New(model any) (*EditContext, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	return &EditContext{
		model:    model,
		modified: make(map[FieldIdentifier]struct{}),
	}, nil
}

// Model returns the bound model.
func (ec *EditContext) Model() any {
	return ec.model
}

// Field returns the identifier of the named field on the bound model.
func (ec *EditContext) Field(name string) FieldIdentifier {
	return Field(ec.model, name)
}

// OnFieldChanged attaches a field-changed handler.
func (ec *EditContext) OnFieldChanged(h FieldChangedHandler) Subscription {
	if h == nil {
		return noopSubscription{}
	}
	return register(&ec.mu, &ec.fieldChanged, h)
}

// OnValidationRequested attaches a validation-requested handler.
func (ec *EditContext) OnValidationRequested(h ValidationRequestedHandler) Subscription {
	if h == nil {
		return noopSubscription{}
	}
	return register(&ec.mu, &ec.validationRequested, h)
}

// OnValidationStateChanged attaches a validation-state-changed handler.
func (ec *EditContext) OnValidationStateChanged(h ValidationStateChangedHandler) Subscription {
	if h == nil {
		return noopSubscription{}
	}
	return register(&ec.mu, &ec.stateChanged, h)
}

// NotifyFieldChanged marks the field as modified and notifies field-changed
// handlers. Every handler runs; their errors are joined with ErrHandlerFailed.
func (ec *EditContext) NotifyFieldChanged(field FieldIdentifier) error {
	ec.mu.Lock()
	ec.modified[field] = struct{}{}
	ec.mu.Unlock()

	var errs []error
	for _, h := range snapshot(&ec.mu, &ec.fieldChanged) {
		if err := h(FieldChangedEvent{Field: field}); err != nil {
			errs = append(errs, err)
		}
	}
	return joinHandlerErrors(errs)
}

// Validate requests a full validation pass from all attached validators and
// reports whether the context holds no validation messages afterwards.
func (ec *EditContext) Validate() (bool, error) {
	var errs []error
	for _, h := range snapshot(&ec.mu, &ec.validationRequested) {
		if err := h(ValidationRequestedEvent{}); err != nil {
			errs = append(errs, err)
		}
	}
	return len(ec.Messages()) == 0, joinHandlerErrors(errs)
}

// NotifyValidationStateChanged tells the rendering layer that messages changed.
func (ec *EditContext) NotifyValidationStateChanged() {
	for _, h := range snapshot(&ec.mu, &ec.stateChanged) {
		h(ValidationStateChangedEvent{})
	}
}

// Messages returns all messages of all attached stores.
func (ec *EditContext) Messages() []string {
	var out []string
	for _, s := range ec.attachedStores() {
		out = append(out, s.all()...)
	}
	return out
}

// FieldMessages returns the messages recorded for field by all attached stores.
func (ec *EditContext) FieldMessages(field FieldIdentifier) []string {
	var out []string
	for _, s := range ec.attachedStores() {
		out = append(out, s.Messages(field)...)
	}
	return out
}

// IsValid reports whether no store holds a message for field.
func (ec *EditContext) IsValid(field FieldIdentifier) bool {
	return len(ec.FieldMessages(field)) == 0
}

// IsModified reports whether any field changed since creation or the last
// MarkAsUnmodified call.
func (ec *EditContext) IsModified() bool {
	ec.mu.RLock()
	defer ec.mu.RUnlock()
	return len(ec.modified) > 0
}

// IsFieldModified reports whether field changed.
func (ec *EditContext) IsFieldModified(field FieldIdentifier) bool {
	ec.mu.RLock()
	defer ec.mu.RUnlock()
	_, ok := ec.modified[field]
	return ok
}

// MarkAsUnmodified resets modification tracking for all fields.
func (ec *EditContext) MarkAsUnmodified() {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	clear(ec.modified)
}

func (ec *EditContext) attach(s *MessageStore) {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.stores = append(ec.stores, s)
}

func (ec *EditContext) attachedStores() []*MessageStore {
	ec.mu.RLock()
	defer ec.mu.RUnlock()
	return append([]*MessageStore(nil), ec.stores...)
}

func joinHandlerErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrHandlerFailed}, errs...)...)
}

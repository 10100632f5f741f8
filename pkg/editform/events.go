package editform

// FieldChangedEvent is delivered when a field value changed.
type FieldChangedEvent struct {
	Field FieldIdentifier
}

// ValidationRequestedEvent is delivered when a full validation pass was requested.
type ValidationRequestedEvent struct{}

// ValidationStateChangedEvent is delivered when validators changed the message set.
type ValidationStateChangedEvent struct{}

// FieldChangedHandler handles field-changed notifications.
type FieldChangedHandler func(FieldChangedEvent) error

// ValidationRequestedHandler handles validation-requested notifications.
type ValidationRequestedHandler func(ValidationRequestedEvent) error

// ValidationStateChangedHandler handles validation-state-changed notifications.
// It is called by the rendering layer and cannot fail.
type ValidationStateChangedHandler func(ValidationStateChangedEvent)

// Package editform provides the edit context a form host uses to track a bound
// model, field-level change notifications, validation requests and the
// validation messages produced by validators.
//
// An EditContext is created for one model instance. Validators attach to it by
// subscribing to its notifications and by writing messages into their own
// MessageStore. The rendering layer subscribes to validation-state-changed
// notifications and reads the aggregated messages back.
//
// # Usage
//
//	model := &fizzbuzz.Model{FizzValue: 3, BuzzValue: 5, StopValue: 15}
//	ec, err := editform.New(model)
//	if err != nil {
//		return err
//	}
//
//	sub := ec.OnFieldChanged(func(e editform.FieldChangedEvent) error {
//		store.ClearField(e.Field)
//		// ... re-check e.Field and add messages
//		ec.NotifyValidationStateChanged()
//		return nil
//	})
//	defer sub.Close()
//
//	if err := ec.NotifyFieldChanged(ec.Field("FizzValue")); err != nil {
//		return err
//	}
//	msgs := ec.FieldMessages(ec.Field("FizzValue"))
//
// # Dispatch
//
// Notifications are delivered synchronously, in registration order, on the
// goroutine that raised them. The handler list is copied before dispatch so a
// handler may close its own subscription. An EditContext is meant to be driven
// by one goroutine at a time; its mutex only protects the handler lists and
// the store registry.
package editform

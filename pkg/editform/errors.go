package editform

import "errors"

var (
	// ErrNilModel is returned when an edit context is created without a model.
	ErrNilModel = errors.New("editform: model cannot be nil")

	// ErrNilContext is returned when a message store is created without an edit context.
	ErrNilContext = errors.New("editform: edit context cannot be nil")

	// ErrHandlerFailed wraps errors returned by notification handlers.
	ErrHandlerFailed = errors.New("editform: notification handler failed")
)

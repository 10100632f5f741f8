package binder

import "errors"

var (
	// ErrNotApplicable tells handler.Wrap to skip a binder for this request.
	ErrNotApplicable = errors.New("binder: not applicable to request")

	ErrInvalidTarget  = errors.New("binder: target must be a non-nil pointer to struct")
	ErrInvalidQuery   = errors.New("binder: invalid query parameter")
	ErrInvalidPath    = errors.New("binder: invalid path parameter")
	ErrInvalidSignals = errors.New("binder: invalid datastar signals")
)

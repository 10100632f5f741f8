package ratelimiter

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig     = errors.New("ratelimiter: invalid configuration")
	ErrInvalidTokenCount = errors.New("ratelimiter: invalid token count")
	ErrNilStore          = errors.New("ratelimiter: nil store")
)

func errInvalid(name string, v any) error {
	return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v)
}

package editform

import "sync"

// Subscription is the handle returned when a handler is attached to an
// EditContext. Closing it detaches the handler.
type Subscription interface {
	// Close detaches the handler. It is idempotent and safe to call multiple times.
	Close() error
}

type subscription struct {
	once   sync.Once
	detach func()
}

func (s *subscription) Close() error {
	s.once.Do(s.detach)
	return nil
}

// noopSubscription is returned for nil handlers.
type noopSubscription struct{}

func (noopSubscription) Close() error { return nil }

// registration wraps a handler so it can be removed by identity.
type registration[H any] struct {
	handler H
}

// register appends h to list under mu and returns a subscription removing it.
func register[H any](mu *sync.RWMutex, list *[]*registration[H], h H) Subscription {
	reg := &registration[H]{handler: h}

	mu.Lock()
	*list = append(*list, reg)
	mu.Unlock()

	return &subscription{detach: func() {
		mu.Lock()
		defer mu.Unlock()
		for i, r := range *list {
			if r == reg {
				*list = append((*list)[:i:i], (*list)[i+1:]...)
				return
			}
		}
	}}
}

// snapshot copies the current handlers so dispatch runs without holding mu.
func snapshot[H any](mu *sync.RWMutex, list *[]*registration[H]) []H {
	mu.RLock()
	defer mu.RUnlock()

	handlers := make([]H, len(*list))
	for i, r := range *list {
		handlers[i] = r.handler
	}
	return handlers
}

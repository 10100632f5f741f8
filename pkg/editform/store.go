package editform

import (
	"slices"
	"sync"
)

// MessageStore holds validation messages keyed by field. Each validator owns
// one store; the EditContext it was created for aggregates all stores.
// Adding a message a field already has is a no-op.
type MessageStore struct {
	mu       sync.RWMutex
	messages map[FieldIdentifier][]string
	fields   []FieldIdentifier // first-insertion order, for stable output
}

// NewMessageStore creates a store attached to ec.
func NewMessageStore(ec *EditContext) (*MessageStore, error) {
	if ec == nil {
		return nil, ErrNilContext
	}
	s := &MessageStore{messages: make(map[FieldIdentifier][]string)}
	ec.attach(s)
	return s, nil
}

// Add records message for field.
func (s *MessageStore) Add(field FieldIdentifier, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(field, message)
}

// AddMany records several messages for field.
func (s *MessageStore) AddMany(field FieldIdentifier, messages ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range messages {
		s.add(field, m)
	}
}

func (s *MessageStore) add(field FieldIdentifier, message string) {
	current, ok := s.messages[field]
	if !ok {
		s.fields = append(s.fields, field)
	}
	if slices.Contains(current, message) {
		return
	}
	s.messages[field] = append(current, message)
}

// ClearField removes all messages recorded for field.
func (s *MessageStore) ClearField(field FieldIdentifier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[field]; !ok {
		return
	}
	delete(s.messages, field)
	s.fields = slices.DeleteFunc(s.fields, func(f FieldIdentifier) bool { return f == field })
}

// Clear removes every message.
func (s *MessageStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.messages)
	s.fields = s.fields[:0]
}

// Messages returns a copy of the messages recorded for field.
func (s *MessageStore) Messages(field FieldIdentifier) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.messages[field])
}

// Len returns the number of fields that have at least one message.
func (s *MessageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Snapshot returns a copy of the store content.
func (s *MessageStore) Snapshot() map[FieldIdentifier][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[FieldIdentifier][]string, len(s.messages))
	for f, m := range s.messages {
		out[f] = slices.Clone(m)
	}
	return out
}

func (s *MessageStore) all() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for _, f := range s.fields {
		out = append(out, s.messages[f]...)
	}
	return out
}

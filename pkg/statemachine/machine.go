package statemachine

import (
	"context"
	"fmt"
	"sync"
)

var _ StateMachine = (*SimpleStateMachine)(nil)

// Option configures a state machine during construction.
type Option func(*SimpleStateMachine) error

// TransitionOption configures a single transition with guards and actions.
type TransitionOption func(*Transition)

// SimpleStateMachine is an in-memory state machine.
// Transitions are indexed as [fromState][event][]Transition.
type SimpleStateMachine struct {
	initialState State
	currentState State
	transitions  map[string]map[string][]Transition
	mu           sync.RWMutex
}

// New creates a state machine starting in initialState.
func New(initialState State, opts ...Option) (*SimpleStateMachine, error) {
	if initialState == nil {
		return nil, ErrInvalidState
	}

	sm := &SimpleStateMachine{
		initialState: initialState,
		currentState: initialState,
		transitions:  make(map[string]map[string][]Transition),
	}
	for _, opt := range opts {
		if err := opt(sm); err != nil {
			return nil, err
		}
	}
	return sm, nil
}

// MustNew is like New but panics on invalid definitions.
// Intended for machines declared at package or constructor level.
func MustNew(initialState State, opts ...Option) *SimpleStateMachine {
	sm, err := New(initialState, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return sm
}

// WithTransition adds a transition to the state machine.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(sm *SimpleStateMachine) error {
		t := Transition{}
		for _, opt := range opts {
			opt(&t)
		}
		return sm.AddTransition(from, to, event, t.Guards, t.Actions)
	}
}

// WithGuard adds a guard to a transition.
func WithGuard(guard Guard) TransitionOption {
	return func(t *Transition) {
		if guard != nil {
			t.Guards = append(t.Guards, guard)
		}
	}
}

// WithAction adds an action to a transition.
func WithAction(action Action) TransitionOption {
	return func(t *Transition) {
		if action != nil {
			t.Actions = append(t.Actions, action)
		}
	}
}

func (sm *SimpleStateMachine) Current() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.currentState
}

func (sm *SimpleStateMachine) AddTransition(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	byEvent, ok := sm.transitions[from.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		sm.transitions[from.Name()] = byEvent
	}

	// Several transitions per from/event pair allow guard-based branching.
	byEvent[event.Name()] = append(byEvent[event.Name()], Transition{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	})
	return nil
}

func (sm *SimpleStateMachine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	t, err := sm.match(ctx, event, data)
	if err != nil {
		return err
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, sm.currentState, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	sm.currentState = t.To
	return nil
}

func (sm *SimpleStateMachine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	_, err := sm.match(ctx, event, data)
	return err == nil
}

func (sm *SimpleStateMachine) Reset() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.currentState = sm.initialState
	return nil
}

// match returns the first transition for event whose guards all pass.
// Callers hold sm.mu.
func (sm *SimpleStateMachine) match(ctx context.Context, event Event, data any) (Transition, error) {
	stateName, eventName := sm.currentState.Name(), event.Name()

	candidates := sm.transitions[stateName][eventName]
	if len(candidates) == 0 {
		return Transition{}, NewErrNoTransitionAvailable(stateName, eventName)
	}

	for _, t := range candidates {
		if sm.guardsPass(ctx, t, event, data) {
			return t, nil
		}
	}
	return Transition{}, NewErrTransitionRejected(stateName, eventName)
}

func (sm *SimpleStateMachine) guardsPass(ctx context.Context, t Transition, event Event, data any) bool {
	for _, guard := range t.Guards {
		if guard != nil && !guard(ctx, sm.currentState, event, data) {
			return false
		}
	}
	return true
}

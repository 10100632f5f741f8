// Package statemachine provides a small, type-safe finite state machine.
//
// States and events are anything with a Name; StringState and StringEvent
// cover the common case. Transitions are registered with functional options
// and may carry guards, which must all pass, and actions, which run in order
// before the state changes. A failing action aborts the transition.
//
// # Usage
//
//	const (
//		Idle     = statemachine.StringState("idle")
//		Running  = statemachine.StringState("running")
//		Start    = statemachine.StringEvent("start")
//	)
//
//	sm := statemachine.MustNew(Idle,
//		statemachine.WithTransition(Idle, Running, Start,
//			statemachine.WithAction(func(ctx context.Context, from, to statemachine.State, e statemachine.Event, data any) error {
//				return nil
//			}),
//		),
//	)
//	if err := sm.Fire(ctx, Start, nil); err != nil {
//		// statemachine.IsNoTransitionAvailableError(err) when Start is not valid from the current state
//	}
//
// SimpleStateMachine guards its state with a RWMutex. Guards and actions run
// while the lock is held and must not call back into the same machine.
package statemachine

package fsm

import (
	"github.com/lixenwraith/snowhop/event"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is a hierarchical finite state machine driven by ticks and events
// T is the context type passed to actions and guards (e.g., *engine.GameSession)
// Not safe for concurrent use; the owner serializes Update and HandleEvent.
type Machine[T any] struct {
	// Graph, immutable after load
	nodes          map[StateID]*Node[T]
	nameToID       map[string]StateID
	InitialStateID StateID

	// Runtime
	activeStateID StateID
	activePath    []StateID // Root -> ... -> leaf
	ticksInState  uint64

	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID
	Children int

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Evaluated in declaration order, first passing guard wins
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // 0 = Tick (auto-transition)
	Guard    GuardFunc[T]    // nil = Always true
}

// Action represents a side-effect with its config arguments
type Action[T any] struct {
	Name string
	Func ActionFunc[T]
	Args map[string]any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args map[string]any)

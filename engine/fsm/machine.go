package fsm

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/snowhop/event"
)

// ErrNotLoaded is returned by Init before a graph was loaded
var ErrNotLoaded = errors.New("fsm: no initial state loaded")

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		nameToID:  make(map[string]StateID),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running OnEnter from Root down
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok || m.InitialStateID == StateNone {
		return ErrNotLoaded
	}

	m.activeStateID = node.ID
	m.activePath = append(m.activePath[:0], node.Path...)
	m.ticksInState = 0

	for _, id := range m.activePath {
		runActions(ctx, m.nodes[id].OnEnter)
	}
	return nil
}

// Update advances one tick: leaf OnUpdate, then tick transitions bubbling up
// Returns true if a transition fired
func (m *Machine[T]) Update(ctx T) bool {
	if m.activeStateID == StateNone {
		return false
	}
	m.ticksInState++

	runActions(ctx, m.nodes[m.activeStateID].OnUpdate)

	return m.dispatch(ctx, 0)
}

// HandleEvent routes an external event from the active leaf up to Root
// Returns true if the event triggered a transition; unmatched events are ignored
func (m *Machine[T]) HandleEvent(ctx T, et event.EventType) bool {
	if m.activeStateID == StateNone || et == 0 {
		return false
	}
	return m.dispatch(ctx, et)
}

func (m *Machine[T]) dispatch(ctx T, et event.EventType) bool {
	for currID := m.activeStateID; currID != StateNone; {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != et {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition exits up to the lowest common ancestor and enters down to the target
// A self transition exits and re-enters the leaf
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	currentPath := m.activePath
	targetPath := targetNode.Path

	lcaIndex := -1
	for i := 0; i < len(currentPath) && i < len(targetPath); i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}
	if targetID == m.activeStateID {
		lcaIndex = len(targetPath) - 2
	}

	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		runActions(ctx, m.nodes[currentPath[i]].OnExit)
	}
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		runActions(ctx, m.nodes[targetPath[i]].OnEnter)
	}

	m.activeStateID = targetID
	m.activePath = append(m.activePath[:0], targetPath...)
	m.ticksInState = 0
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, a := range actions {
		a.Func(ctx, a.Args)
	}
}

// Reset exits the whole active path and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		runActions(ctx, m.nodes[m.activePath[i]].OnExit)
	}
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx)
}

// ActiveStateID returns the current leaf, StateNone before Init
func (m *Machine[T]) ActiveStateID() StateID {
	return m.activeStateID
}

// ActiveStateName returns the current leaf name, empty before Init
func (m *Machine[T]) ActiveStateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// InState reports whether name is the active leaf or one of its ancestors
func (m *Machine[T]) InState(name string) bool {
	id, ok := m.nameToID[name]
	if !ok {
		return false
	}
	for _, a := range m.activePath {
		if a == id {
			return true
		}
	}
	return false
}

// TicksInState returns the number of Update calls since the last transition
func (m *Machine[T]) TicksInState() uint64 {
	return m.ticksInState
}

// StateNames returns the names of all leaf states
func (m *Machine[T]) StateNames() []string {
	names := make([]string, 0, len(m.nodes))
	for _, node := range m.nodes {
		if node.Children == 0 && node.ID != StateRoot {
			names = append(names, node.Name)
		}
	}
	return names
}

package fsm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/snowhop/event"
)

// LoadConfig parses a TOML document and replaces the Machine's graph
// Validates all references (states, guards, actions, events) and rejects unknown keys
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	md, err := toml.Decode(string(data), &config)
	if err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown FSM config keys: %s", strings.Join(keys, ", "))
	}
	return m.load(&config)
}

func (m *Machine[T]) load(config *RootConfig) error {
	m.nodes = make(map[StateID]*Node[T])
	m.nameToID = make(map[string]StateID)
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	m.InitialStateID = StateNone

	if config.States == nil {
		config.States = make(map[string]*StateConfig)
	}
	if _, ok := config.States["Root"]; !ok {
		config.States["Root"] = &StateConfig{}
	}

	// Sorted names give deterministic IDs
	stateNames := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != "Root" {
			stateNames = append(stateNames, name)
		}
	}
	sort.Strings(stateNames)

	m.AddState(StateRoot, "Root", StateNone)
	for i, name := range stateNames {
		parent := config.States[name].Parent
		if parent == "" {
			parent = "Root"
		}
		if _, ok := config.States[parent]; !ok {
			return fmt.Errorf("state '%s' references unknown parent '%s'", name, parent)
		}
		m.AddState(StateID(i+2), name, StateNone)
	}
	for _, name := range stateNames {
		parent := config.States[name].Parent
		if parent == "" {
			parent = "Root"
		}
		m.nodes[m.nameToID[name]].ParentID = m.nameToID[parent]
	}

	if err := m.CompilePaths(); err != nil {
		return err
	}

	for name, cfg := range config.States {
		node := m.nodes[m.nameToID[name]]

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' OnEnter: %w", name, err)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return fmt.Errorf("state '%s' OnUpdate: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' OnExit: %w", name, err)
		}
		if err := m.compileTransitions(node, cfg.Transitions); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	initialID, ok := m.nameToID[config.InitialState]
	if !ok || initialID == StateRoot {
		return fmt.Errorf("initial state '%s' not found", config.InitialState)
	}
	if m.nodes[initialID].Children > 0 {
		return fmt.Errorf("initial state '%s' is not a leaf", config.InitialState)
	}
	m.InitialStateID = initialID

	return nil
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", cfg.Action)
		}
		actions = append(actions, Action[T]{
			Name: cfg.Action,
			Func: fn,
			Args: cfg.Args,
		})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig) error {
	for _, cfg := range configs {
		targetID, ok := m.nameToID[cfg.Target]
		if !ok {
			return fmt.Errorf("transition references unknown target '%s'", cfg.Target)
		}
		if m.nodes[targetID].Children > 0 {
			return fmt.Errorf("transition target '%s' is not a leaf", cfg.Target)
		}

		et, ok := event.GetEventType(cfg.Trigger)
		if !ok {
			return fmt.Errorf("unknown event type '%s'", cfg.Trigger)
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			if guard, ok = m.guardReg[cfg.Guard]; !ok {
				return fmt.Errorf("unknown guard '%s'", cfg.Guard)
			}
		}

		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: targetID,
			Event:    et,
			Guard:    guard,
		})
	}
	return nil
}

package fsm

// RootConfig is the top-level TOML document
type RootConfig struct {
	InitialState string                  `toml:"initial"`
	States       map[string]*StateConfig `toml:"states"`
}

// StateConfig is a single state definition
type StateConfig struct {
	Parent      string             `toml:"parent"`
	OnEnter     []ActionConfig     `toml:"on_enter"`
	OnUpdate    []ActionConfig     `toml:"on_update"`
	OnExit      []ActionConfig     `toml:"on_exit"`
	Transitions []TransitionConfig `toml:"transitions"`
}

// TransitionConfig is a transition definition
type TransitionConfig struct {
	Trigger string `toml:"trigger"` // Event name or "Tick"
	Target  string `toml:"target"`  // Leaf state name
	Guard   string `toml:"guard"`   // Registered guard name
}

// ActionConfig is an action reference with optional arguments
type ActionConfig struct {
	Action string         `toml:"action"`
	Args   map[string]any `toml:"args"`
}

package event

import (
	"sort"
	"strings"
)

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

// RegisterType maps a config name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	// Special case for FSM "Tick"
	if strings.EqualFold(name, "Tick") {
		return 0, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if et == 0 {
		return "Tick"
	}
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

// String implements fmt.Stringer
func (et EventType) String() string {
	return GetEventName(et)
}

// Names returns every registered name in sorted order
func Names() []string {
	names := make([]string, 0, len(nameToType))
	for name := range nameToType {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterType("EventStart", EventStart)
	RegisterType("EventShowInstructions", EventShowInstructions)
	RegisterType("EventQuit", EventQuit)
	RegisterType("EventSelectLevel", EventSelectLevel)
	RegisterType("EventBack", EventBack)

	RegisterType("EventPauseToggle", EventPauseToggle)
	RegisterType("EventResume", EventResume)
	RegisterType("EventRestart", EventRestart)
	RegisterType("EventMenu", EventMenu)
	RegisterType("EventNextLevel", EventNextLevel)

	RegisterType("EventLevelComplete", EventLevelComplete)
	RegisterType("EventPlayerOutOfLives", EventPlayerOutOfLives)
}

package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Parse decodes and validates a TOML level manifest
// Unknown keys are rejected so typos in hand-authored data do not silently vanish
func Parse(data []byte) (*LevelSet, error) {
	var set LevelSet
	md, err := toml.Decode(string(data), &set)
	if err != nil {
		return nil, fmt.Errorf("decode level manifest: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		verr := &ValidationError{}
		for _, k := range undecoded {
			verr.add("unknown key %q", k.String())
		}
		return nil, verr
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// LoadFile reads and parses a manifest from disk
func LoadFile(path string) (*LevelSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level manifest: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Load uses customPath when set, otherwise the embedded manifest
func Load(customPath, embedded string) (*LevelSet, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}
	set, err := Parse([]byte(embedded))
	if err != nil {
		return nil, fmt.Errorf("embedded levels: %w", err)
	}
	return set, nil
}

// Names returns level names in play order
func (s *LevelSet) Names() []string {
	names := make([]string, len(s.Levels))
	for i, l := range s.Levels {
		names[i] = l.Name
	}
	return names
}

// Level returns the level at index, false when out of range
func (s *LevelSet) Level(index int) (*Level, bool) {
	if index < 0 || index >= len(s.Levels) {
		return nil, false
	}
	return &s.Levels[index], true
}

// Len returns the number of levels
func (s *LevelSet) Len() int {
	return len(s.Levels)
}

// String summarizes the set for logs
func (s *LevelSet) String() string {
	return fmt.Sprintf("%d levels [%s]", len(s.Levels), strings.Join(s.Names(), ", "))
}
